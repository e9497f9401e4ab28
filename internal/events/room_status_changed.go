package events

import "time"

const (
	RoomStatusChangedTopic     = "hotel.inventory.room.status.v1"
	RoomStatusChangedEventType = "room_status_changed"
)

// RoomStatusChangedEvent lets housekeeping and front desk systems follow
// room availability.
type RoomStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RoomID     string    `json:"room_id"`
	PropertyID string    `json:"property_id"`
	CompanyID  string    `json:"company_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
