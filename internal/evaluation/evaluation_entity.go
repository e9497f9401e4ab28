package evaluation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusCompleted = "COMPLETED"
	StatusReviewed  = "REVIEWED"
	StatusApproved  = "APPROVED"
)

type Evaluation struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_evaluation_employee_evaluator_period,priority:1"`
	EvaluatorID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_evaluation_employee_evaluator_period,priority:2"`
	Period      string            `gorm:"type:varchar(10);not null;uniqueIndex:uq_evaluation_employee_evaluator_period,priority:3"`
	Employee    *EvaluationPerson `gorm:"foreignKey:EmployeeID;references:ID"`
	Evaluator   *EvaluationPerson `gorm:"foreignKey:EvaluatorID;references:ID"`

	WorkQualityScore       float64 `gorm:"type:numeric(2,1);not null"`
	WorkQualityComment     *string `gorm:"type:text"`
	ProductivityScore      float64 `gorm:"type:numeric(2,1);not null"`
	ProductivityComment    *string `gorm:"type:text"`
	CommunicationScore     float64 `gorm:"type:numeric(2,1);not null"`
	CommunicationComment   *string `gorm:"type:text"`
	TeamworkScore          float64 `gorm:"type:numeric(2,1);not null"`
	TeamworkComment        *string `gorm:"type:text"`
	PunctualityScore       float64 `gorm:"type:numeric(2,1);not null"`
	PunctualityComment     *string `gorm:"type:text"`
	InitiativeScore        float64 `gorm:"type:numeric(2,1);not null"`
	InitiativeComment      *string `gorm:"type:text"`
	CustomerServiceScore   float64 `gorm:"type:numeric(2,1);not null"`
	CustomerServiceComment *string `gorm:"type:text"`

	OverallScore    decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	OverallComment  *string         `gorm:"type:text"`
	EmployeeComment *string         `gorm:"type:text"`

	Status         string     `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	CompletedAt    *time.Time
	ReviewedAt     *time.Time
	ApprovedAt     *time.Time
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type EvaluationPerson struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EvaluationPerson) TableName() string {
	return "employees"
}

func (e Evaluation) scores() Scores {
	return Scores{
		WorkQuality:     e.WorkQualityScore,
		Productivity:    e.ProductivityScore,
		Communication:   e.CommunicationScore,
		Teamwork:        e.TeamworkScore,
		Punctuality:     e.PunctualityScore,
		Initiative:      e.InitiativeScore,
		CustomerService: e.CustomerServiceScore,
	}
}

func (e *Evaluation) setScores(s Scores) {
	e.WorkQualityScore = s.WorkQuality
	e.ProductivityScore = s.Productivity
	e.CommunicationScore = s.Communication
	e.TeamworkScore = s.Teamwork
	e.PunctualityScore = s.Punctuality
	e.InitiativeScore = s.Initiative
	e.CustomerServiceScore = s.CustomerService
}
