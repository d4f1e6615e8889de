package attendance

import (
	"errors"
	"fmt"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

var (
	ErrUnknownEmployee = errors.New("employee is not on the roster")
	ErrUnknownBoat     = errors.New("boat is not on the roster")
	ErrNegativeHours   = errors.New("overtime hours must not be negative")
)

// BoatOption is one entry of the boat selector.
type BoatOption struct {
	ID   int64
	Name string
}

// Row is the renderable state of one employee on the day.
type Row struct {
	EmployeeID    int64
	EmployeeName  string
	Present       bool
	BoatID        *int64
	OvertimeHours float64

	// WasPresent is set when the loaded records marked this employee present.
	WasPresent bool
}

// HasBoat reports whether a real boat is selected.
func (r Row) HasBoat() bool {
	return r.BoatID != nil && *r.BoatID > 0 && *r.BoatID != models.SentinelBoatID
}

// BuildRows maps the roster and the day's records to one row per employee,
// in roster order. Extra-payment records do not affect the rows.
func BuildRows(employees []models.Employee, records []models.AttendanceRecord) []Row {
	byEmployee := make(map[int64]models.AttendanceRecord, len(records))
	for _, rec := range records {
		if rec.IsExtra() {
			continue
		}
		byEmployee[rec.EmployeeID] = rec
	}

	rows := make([]Row, 0, len(employees))
	for _, emp := range employees {
		row := Row{EmployeeID: emp.ID, EmployeeName: emp.Name}
		if rec, ok := byEmployee[emp.ID]; ok && rec.Present {
			boatID := rec.BoatID
			row.Present = true
			row.WasPresent = true
			row.BoatID = &boatID
			row.OvertimeHours = rec.OvertimeHours
		}
		rows = append(rows, row)
	}
	return rows
}

// BoatOptions lists the selectable boats, leaving out the absent placeholder.
func BoatOptions(boats []models.Boat) []BoatOption {
	opts := make([]BoatOption, 0, len(boats))
	for _, b := range boats {
		if b.ID == models.SentinelBoatID {
			continue
		}
		opts = append(opts, BoatOption{ID: b.ID, Name: b.Name})
	}
	return opts
}

// DayView is a loaded day: its rows, the boat selector and the lock state.
type DayView struct {
	Date        string
	Rows        []Row
	Boats       []BoatOption
	RecordCount int
	Form        *Form
}

func (v *DayView) row(employeeID int64) (*Row, error) {
	if !v.Form.Editable() {
		return nil, ErrFormLocked
	}
	for i := range v.Rows {
		if v.Rows[i].EmployeeID == employeeID {
			return &v.Rows[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEmployee, employeeID)
}

func (v *DayView) SetPresent(employeeID int64, present bool) error {
	row, err := v.row(employeeID)
	if err != nil {
		return err
	}
	row.Present = present
	return nil
}

func (v *DayView) SelectBoat(employeeID, boatID int64) error {
	row, err := v.row(employeeID)
	if err != nil {
		return err
	}
	found := false
	for _, b := range v.Boats {
		if b.ID == boatID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %d", ErrUnknownBoat, boatID)
	}
	row.BoatID = &boatID
	return nil
}

func (v *DayView) SetOvertime(employeeID int64, hours float64) error {
	if hours < 0 {
		return ErrNegativeHours
	}
	row, err := v.row(employeeID)
	if err != nil {
		return err
	}
	row.OvertimeHours = hours
	return nil
}

// Present returns the rows currently marked present.
func (v *DayView) Present() []Row {
	var out []Row
	for _, r := range v.Rows {
		if r.Present {
			out = append(out, r)
		}
	}
	return out
}
