package property

type CreatePropertyRequest struct {
	Code         string `json:"code" binding:"required,alphanum,max=20"`
	Name         string `json:"name" binding:"required,max=150"`
	PropertyType string `json:"property_type" binding:"omitempty,max=20"`
	StarRating   int    `json:"star_rating" binding:"required,min=1,max=5"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required,max=100"`
	Country      string `json:"country" binding:"required,iso3166_1_alpha2"`
	Phone        string `json:"phone" binding:"omitempty,max=30"`
	Email        string `json:"email" binding:"omitempty,email"`
	CheckInTime  string `json:"check_in_time" binding:"omitempty,datetime=15:04"`
	CheckOutTime string `json:"check_out_time" binding:"omitempty,datetime=15:04"`
	Timezone     string `json:"timezone" binding:"omitempty,max=64"`
}

type UpdatePropertyRequest struct {
	Name         string `json:"name" binding:"required,max=150"`
	PropertyType string `json:"property_type" binding:"omitempty,max=20"`
	StarRating   int    `json:"star_rating" binding:"required,min=1,max=5"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required,max=100"`
	Country      string `json:"country" binding:"required,iso3166_1_alpha2"`
	Phone        string `json:"phone" binding:"omitempty,max=30"`
	Email        string `json:"email" binding:"omitempty,email"`
	CheckInTime  string `json:"check_in_time" binding:"required,datetime=15:04"`
	CheckOutTime string `json:"check_out_time" binding:"required,datetime=15:04"`
	Timezone     string `json:"timezone" binding:"required,max=64"`
	IsActive     *bool  `json:"is_active"`
}

type PropertyResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	PropertyType string `json:"property_type"`
	StarRating   int    `json:"star_rating"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Timezone     string `json:"timezone"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
