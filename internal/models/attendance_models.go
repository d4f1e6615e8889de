package models

const (
	// DateLayout is the wire and storage format of attendance dates.
	DateLayout = "2006-01-02"

	// SentinelBoatID is stored as boat_id on records of absent employees,
	// who have no boat selected.
	SentinelBoatID int64 = 1
)

// AttendanceRecord is one employee's entry for one day.
// A record with Present=false and a non-zero ExtraAmount is an "extra"
// payment rather than an attendance mark.
type AttendanceRecord struct {
	ID             int64   `json:"id" db:"id"`
	Date           string  `json:"date" db:"date"` // YYYY-MM-DD
	EmployeeID     int64   `json:"employee_id" db:"employee_id"`
	BoatID         int64   `json:"boat_id" db:"boat_id"`
	OvertimeBoatID *int64  `json:"overtime_boat_id,omitempty" db:"overtime_boat_id"`
	Present        bool    `json:"present" db:"present"`
	IsHalfDay      bool    `json:"is_half_day" db:"is_half_day"`
	OvertimeHours  float64 `json:"overtime_hours" db:"overtime_hours"`
	ExtraAmount    float64 `json:"extra_amount" db:"extra_amount"`
	ExtraReason    *string `json:"extra_reason,omitempty" db:"extra_reason"`
}

// IsExtra reports whether the record carries an ad-hoc payment.
func (r AttendanceRecord) IsExtra() bool {
	return !r.Present && r.ExtraAmount != 0
}

// AttendanceDetail is a record joined with the wage terms of its employee
// and the names of its boats, as read for cost reports.
type AttendanceDetail struct {
	AttendanceRecord
	EmployeeName     string  `json:"employee_name"`
	DailyWage        float64 `json:"daily_wage"`
	OvertimeRate     float64 `json:"overtime_rate"`
	BankDailyAmount  float64 `json:"bank_daily_amount"`
	BoatName         string  `json:"boat_name"`
	OvertimeBoatName *string `json:"overtime_boat_name,omitempty"`
}

// AttendanceFilter narrows a date-range read.
type AttendanceFilter struct {
	Start      string
	End        string
	BoatID     *int64
	EmployeeID *int64
}

// AttendancePayload is the body of POST /attendance/ as sent by the client.
type AttendancePayload struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	EmployeeID    int64   `json:"employee_id" validate:"required,gt=0"`
	BoatID        int64   `json:"boat_id" validate:"required,gt=0"`
	Present       bool    `json:"present"`
	OvertimeHours float64 `json:"overtime_hours" validate:"gte=0"`
	ExtraAmount   float64 `json:"extra_amount"`
	ExtraReason   string  `json:"extra_reason"`
}

// AttendanceBatch is the body of POST /attendance/batch.
type AttendanceBatch struct {
	Records []AttendancePayload `json:"records"`
}
