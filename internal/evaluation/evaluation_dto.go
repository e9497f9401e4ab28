package evaluation

import "github.com/shopspring/decimal"

// CreateEvaluationRequest is filed by the evaluator; all seven scores are required.
type CreateEvaluationRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required,max=10"`

	WorkQualityScore       *float64 `json:"work_quality_score" binding:"required,halfstep"`
	WorkQualityComment     *string  `json:"work_quality_comment" binding:"omitempty,max=1000"`
	ProductivityScore      *float64 `json:"productivity_score" binding:"required,halfstep"`
	ProductivityComment    *string  `json:"productivity_comment" binding:"omitempty,max=1000"`
	CommunicationScore     *float64 `json:"communication_score" binding:"required,halfstep"`
	CommunicationComment   *string  `json:"communication_comment" binding:"omitempty,max=1000"`
	TeamworkScore          *float64 `json:"teamwork_score" binding:"required,halfstep"`
	TeamworkComment        *string  `json:"teamwork_comment" binding:"omitempty,max=1000"`
	PunctualityScore       *float64 `json:"punctuality_score" binding:"required,halfstep"`
	PunctualityComment     *string  `json:"punctuality_comment" binding:"omitempty,max=1000"`
	InitiativeScore        *float64 `json:"initiative_score" binding:"required,halfstep"`
	InitiativeComment      *string  `json:"initiative_comment" binding:"omitempty,max=1000"`
	CustomerServiceScore   *float64 `json:"customer_service_score" binding:"required,halfstep"`
	CustomerServiceComment *string  `json:"customer_service_comment" binding:"omitempty,max=1000"`

	OverallComment *string `json:"overall_comment" binding:"omitempty,max=2000"`
}

// UpdateEvaluationRequest is a partial update; nil fields are left unchanged.
type UpdateEvaluationRequest struct {
	WorkQualityScore       *float64 `json:"work_quality_score" binding:"omitempty,halfstep"`
	WorkQualityComment     *string  `json:"work_quality_comment" binding:"omitempty,max=1000"`
	ProductivityScore      *float64 `json:"productivity_score" binding:"omitempty,halfstep"`
	ProductivityComment    *string  `json:"productivity_comment" binding:"omitempty,max=1000"`
	CommunicationScore     *float64 `json:"communication_score" binding:"omitempty,halfstep"`
	CommunicationComment   *string  `json:"communication_comment" binding:"omitempty,max=1000"`
	TeamworkScore          *float64 `json:"teamwork_score" binding:"omitempty,halfstep"`
	TeamworkComment        *string  `json:"teamwork_comment" binding:"omitempty,max=1000"`
	PunctualityScore       *float64 `json:"punctuality_score" binding:"omitempty,halfstep"`
	PunctualityComment     *string  `json:"punctuality_comment" binding:"omitempty,max=1000"`
	InitiativeScore        *float64 `json:"initiative_score" binding:"omitempty,halfstep"`
	InitiativeComment      *string  `json:"initiative_comment" binding:"omitempty,max=1000"`
	CustomerServiceScore   *float64 `json:"customer_service_score" binding:"omitempty,halfstep"`
	CustomerServiceComment *string  `json:"customer_service_comment" binding:"omitempty,max=1000"`

	OverallComment *string `json:"overall_comment" binding:"omitempty,max=2000"`
}

type AcknowledgeEvaluationRequest struct {
	EmployeeComment *string `json:"employee_comment" binding:"omitempty,max=2000"`
}

type ListFilter struct {
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	EvaluatorID string `form:"evaluator_id" binding:"omitempty,uuid"`
	Period      string `form:"period" binding:"omitempty,max=10"`
	Status      string `form:"status"`
}

type CategoryResponse struct {
	Score   float64 `json:"score"`
	Comment *string `json:"comment,omitempty"`
}

type EvaluationResponse struct {
	ID              string                      `json:"id"`
	CompanyID       string                      `json:"company_id"`
	EmployeeID      string                      `json:"employee_id"`
	EmployeeName    string                      `json:"employee_name,omitempty"`
	EvaluatorID     string                      `json:"evaluator_id"`
	EvaluatorName   string                      `json:"evaluator_name,omitempty"`
	Period          string                      `json:"period"`
	Categories      map[string]CategoryResponse `json:"categories"`
	OverallScore    decimal.Decimal             `json:"overall_score"`
	OverallComment  *string                     `json:"overall_comment,omitempty"`
	EmployeeComment *string                     `json:"employee_comment,omitempty"`
	Status          string                      `json:"status"`
	ReviewedBy      *string                     `json:"reviewed_by,omitempty"`
	ApprovedBy      *string                     `json:"approved_by,omitempty"`
	CompletedAt     *string                     `json:"completed_at,omitempty"`
	ReviewedAt      *string                     `json:"reviewed_at,omitempty"`
	ApprovedAt      *string                     `json:"approved_at,omitempty"`
	AcknowledgedAt  *string                     `json:"acknowledged_at,omitempty"`
	CreatedAt       string                      `json:"created_at"`
}
