package attendance

type ClockInRequest struct {
	Source string  `json:"source" binding:"omitempty,max=30"`
	Notes  *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type ListFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       *string `json:"clock_out,omitempty"`
	Status         string  `json:"status"`
	Source         string  `json:"source"`
	Notes          *string `json:"notes,omitempty"`
}

type MonthlySummary struct {
	EmployeeID  string `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	DaysInMonth int    `json:"days_in_month"`
	WorkingDays int    `json:"working_days"`
	LateDays    int    `json:"late_days"`
}
