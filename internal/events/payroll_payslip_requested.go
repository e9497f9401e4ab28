package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PayrollPayslipRequestedTopic     = "hotel.hr.payroll.payslip.requested.v1"
	PayrollPayslipRequestedEventType = "payroll_payslip_requested"
)

// PayrollPayslipRequestedEvent is emitted when a payroll is processed. The
// consumer renders the payslip PDF; period and net pay let it label the
// file without another lookup.
type PayrollPayslipRequestedEvent struct {
	EventType   string          `json:"event_type"`
	PayrollID   string          `json:"payroll_id"`
	CompanyID   string          `json:"company_id"`
	EmployeeID  string          `json:"employee_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	NetPay      decimal.Decimal `json:"net_pay"`
	RequestedBy string          `json:"requested_by"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
