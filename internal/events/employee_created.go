package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmployeeCreatedTopic     = "hotel.hr.employee.lifecycle.v1"
	EmployeeCreatedEventType = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType      string          `json:"event_type"`
	EmployeeID     string          `json:"employee_id"`
	CompanyID      string          `json:"company_id"`
	StartingSalary decimal.Decimal `json:"starting_salary"`
	HireDate       string          `json:"hire_date"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
