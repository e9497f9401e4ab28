package roomtype

import "github.com/shopspring/decimal"

type CreateRoomTypeRequest struct {
	PropertyID   string          `json:"property_id" binding:"required,uuid"`
	Code         string          `json:"code" binding:"required,alphanum,max=20"`
	Name         string          `json:"name" binding:"required,max=100"`
	Description  string          `json:"description"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	Currency     string          `json:"currency" binding:"omitempty,iso4217"`
	MaxOccupancy int             `json:"max_occupancy" binding:"required,min=1,max=20"`
	BedType      string          `json:"bed_type" binding:"omitempty,max=30"`
	SizeSqm      *float64        `json:"size_sqm" binding:"omitempty,gt=0"`
	AmenityIDs   []string        `json:"amenity_ids" binding:"omitempty,dive,uuid"`
}

type UpdateRoomTypeRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Description  string          `json:"description"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	Currency     string          `json:"currency" binding:"omitempty,iso4217"`
	MaxOccupancy int             `json:"max_occupancy" binding:"required,min=1,max=20"`
	BedType      string          `json:"bed_type" binding:"omitempty,max=30"`
	SizeSqm      *float64        `json:"size_sqm" binding:"omitempty,gt=0"`
}

type SetAmenitiesRequest struct {
	AmenityIDs []string `json:"amenity_ids" binding:"omitempty,dive,uuid"`
}

type ListFilter struct {
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
}

type RoomTypeResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	PropertyID   string          `json:"property_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	Currency     string          `json:"currency"`
	MaxOccupancy int             `json:"max_occupancy"`
	BedType      string          `json:"bed_type,omitempty"`
	SizeSqm      *float64        `json:"size_sqm,omitempty"`
	AmenityIDs   []string        `json:"amenity_ids"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
