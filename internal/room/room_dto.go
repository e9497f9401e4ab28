package room

type CreateRoomRequest struct {
	PropertyID string  `json:"property_id" binding:"required,uuid"`
	RoomTypeID string  `json:"room_type_id" binding:"required,uuid"`
	RoomNumber string  `json:"room_number" binding:"required,alphanum,max=10"`
	Floor      *int    `json:"floor" binding:"required,min=-5,max=200"`
	IsSmoking  bool    `json:"is_smoking"`
	Notes      *string `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateRoomRequest struct {
	RoomTypeID string  `json:"room_type_id" binding:"required,uuid"`
	RoomNumber string  `json:"room_number" binding:"required,alphanum,max=10"`
	Floor      *int    `json:"floor" binding:"required,min=-5,max=200"`
	IsSmoking  bool    `json:"is_smoking"`
	Notes      *string `json:"notes" binding:"omitempty,max=1000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type ListFilter struct {
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	Status     string `form:"status"`
	Floor      *int   `form:"floor"`
}

type RoomResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	PropertyID      string  `json:"property_id"`
	RoomTypeID      string  `json:"room_type_id"`
	RoomNumber      string  `json:"room_number"`
	Floor           int     `json:"floor"`
	Status          string  `json:"status"`
	IsSmoking       bool    `json:"is_smoking"`
	Notes           *string `json:"notes,omitempty"`
	StatusChangedAt *string `json:"status_changed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type StatusHistoryResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Reason     string `json:"reason,omitempty"`
	ChangedBy  string `json:"changed_by"`
	ChangedAt  string `json:"changed_at"`
}

type StatusSummaryResponse struct {
	PropertyID string           `json:"property_id,omitempty"`
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
}
