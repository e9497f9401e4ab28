package amenity

type CreateAmenityRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"omitempty,max=20"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
	Description string `json:"description"`
}

type UpdateAmenityRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"omitempty,max=20"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
	Description string `json:"description"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
