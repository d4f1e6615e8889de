package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

var (
	ErrDateRequired = errors.New("date is required")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
)

// Backend is the part of the REST API the attendance workflow uses.
type Backend interface {
	ListBoats(ctx context.Context) ([]models.Boat, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	AttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	CreateAttendance(ctx context.Context, payload models.AttendancePayload) (*models.AttendanceRecord, error)
	CreateAttendanceBatch(ctx context.Context, payloads []models.AttendancePayload) ([]models.AttendanceRecord, error)
}

// Loader fetches a day and turns it into a DayView.
type Loader struct {
	backend  Backend
	state    *State
	notifier Notifier
}

func NewLoader(backend Backend, state *State, notifier Notifier) *Loader {
	return &Loader{backend: backend, state: state, notifier: notifier}
}

// RefreshRoster refetches boats and employees into the shared state.
func (l *Loader) RefreshRoster(ctx context.Context) error {
	boats, err := l.backend.ListBoats(ctx)
	if err != nil {
		utils.LogError(err, "RefreshRoster: failed to fetch boats")
		l.notifier.Alert(MsgConnectionFailed)
		return fmt.Errorf("fetch boats: %w", err)
	}
	employees, err := l.backend.ListEmployees(ctx)
	if err != nil {
		utils.LogError(err, "RefreshRoster: failed to fetch employees")
		l.notifier.Alert(MsgConnectionFailed)
		return fmt.Errorf("fetch employees: %w", err)
	}
	l.state.Replace(employees, boats)
	return nil
}

// LoadDay refreshes the roster and builds the view for date. The form is
// locked when the backend already holds records for that day.
func (l *Loader) LoadDay(ctx context.Context, date string) (*DayView, error) {
	if date == "" {
		l.notifier.Alert(MsgDateRequired)
		return nil, ErrDateRequired
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		l.notifier.Alert(MsgDateRequired)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if err := l.RefreshRoster(ctx); err != nil {
		return nil, err
	}

	records, err := l.backend.AttendanceByDate(ctx, date)
	if err != nil {
		utils.LogError(err, "LoadDay: failed to fetch attendance", map[string]interface{}{"date": date})
		l.notifier.Alert(MsgConnectionFailed)
		return nil, fmt.Errorf("fetch attendance for %s: %w", date, err)
	}

	view := &DayView{
		Date:        date,
		Rows:        BuildRows(l.state.Employees(), records),
		Boats:       BoatOptions(l.state.Boats()),
		RecordCount: len(records),
		Form:        &Form{},
	}
	view.Form.Load(len(records))

	utils.LogDebug("LoadDay: day loaded", map[string]interface{}{
		"date":    date,
		"records": len(records),
		"state":   view.Form.State().String(),
	})
	return view, nil
}
