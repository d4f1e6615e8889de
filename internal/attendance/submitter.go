package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

var (
	ErrFormLocked     = errors.New("the day is locked; unlock it before editing")
	ErrBoatRequired   = errors.New("every present employee needs a boat")
	ErrInvalidPayload = errors.New("invalid attendance payload")
	ErrUnknownMode    = errors.New("unknown submit mode")
)

// Mode selects how a day is sent to the backend.
type Mode string

const (
	// ModePerRow posts one record at a time; a failed row does not stop the rest.
	ModePerRow Mode = "per_row"
	// ModeBatch posts all records in one call that the backend applies atomically.
	ModeBatch Mode = "batch"
)

// ParseMode maps a config value to a Mode. Empty means ModePerRow.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePerRow:
		return ModePerRow, nil
	case ModeBatch:
		return ModeBatch, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// RowFailure is a row the backend rejected.
type RowFailure struct {
	EmployeeID int64
	Err        error
}

// SubmitResult describes one save of a day.
type SubmitResult struct {
	BatchID string
	Sent    int
	Saved   int
	Failed  []RowFailure
	// View is the reloaded day, nil when the reload failed.
	View *DayView
}

// Submitter validates a DayView and sends it to the backend.
type Submitter struct {
	backend  Backend
	loader   *Loader
	notifier Notifier
	mode     Mode
	validate *validator.Validate
}

func NewSubmitter(backend Backend, loader *Loader, notifier Notifier, mode Mode) *Submitter {
	if mode == "" {
		mode = ModePerRow
	}
	return &Submitter{
		backend:  backend,
		loader:   loader,
		notifier: notifier,
		mode:     mode,
		validate: validator.New(),
	}
}

// Payloads builds the records to send for view. Present rows without a boat
// fail the whole day. Rows that were present when loaded and are now
// unchecked produce a clearing record on the placeholder boat.
func Payloads(view *DayView) ([]models.AttendancePayload, error) {
	for _, row := range view.Rows {
		if row.Present && !row.HasBoat() {
			return nil, fmt.Errorf("%w: %s", ErrBoatRequired, row.EmployeeName)
		}
	}

	var payloads []models.AttendancePayload
	for _, row := range view.Rows {
		switch {
		case row.Present:
			payloads = append(payloads, models.AttendancePayload{
				Date:          view.Date,
				EmployeeID:    row.EmployeeID,
				BoatID:        *row.BoatID,
				Present:       true,
				OvertimeHours: row.OvertimeHours,
			})
		case row.WasPresent:
			payloads = append(payloads, models.AttendancePayload{
				Date:       view.Date,
				EmployeeID: row.EmployeeID,
				BoatID:     models.SentinelBoatID,
			})
		}
	}
	return payloads, nil
}

// Submit saves the day and reloads it. Nothing is sent when the date is
// missing, the form is locked or a present row has no boat.
func (s *Submitter) Submit(ctx context.Context, view *DayView) (*SubmitResult, error) {
	if view == nil || view.Date == "" {
		s.notifier.Alert(MsgDateRequired)
		return nil, ErrDateRequired
	}
	if !view.Form.Editable() {
		return nil, ErrFormLocked
	}

	payloads, err := Payloads(view)
	if err != nil {
		s.notifier.Alert(MsgBoatRequired)
		return nil, err
	}
	for _, p := range payloads {
		if err := s.validate.Struct(p); err != nil {
			s.notifier.Alert(MsgSaveFailed)
			return nil, fmt.Errorf("%w: employee %d: %v", ErrInvalidPayload, p.EmployeeID, err)
		}
	}

	result := &SubmitResult{BatchID: uuid.NewString(), Sent: len(payloads)}
	fields := map[string]interface{}{
		"batch_id": result.BatchID,
		"date":     view.Date,
		"rows":     len(payloads),
		"mode":     string(s.mode),
	}
	utils.LogInfo("Submit: saving attendance", fields)

	switch s.mode {
	case ModeBatch:
		if err := s.sendBatch(ctx, payloads, result); err != nil {
			s.notifier.Alert(MsgSaveFailed)
			return result, err
		}
	default:
		s.sendPerRow(ctx, payloads, result)
	}

	s.notifier.Alert(MsgSaved)

	reloaded, err := s.loader.LoadDay(ctx, view.Date)
	if err != nil {
		return result, fmt.Errorf("reload %s: %w", view.Date, err)
	}
	result.View = reloaded
	return result, nil
}

func (s *Submitter) sendPerRow(ctx context.Context, payloads []models.AttendancePayload, result *SubmitResult) {
	for _, p := range payloads {
		if _, err := s.backend.CreateAttendance(ctx, p); err != nil {
			utils.LogError(err, "Submit: failed to save row", map[string]interface{}{
				"batch_id":    result.BatchID,
				"employee_id": p.EmployeeID,
			})
			result.Failed = append(result.Failed, RowFailure{EmployeeID: p.EmployeeID, Err: err})
			continue
		}
		result.Saved++
	}
}

func (s *Submitter) sendBatch(ctx context.Context, payloads []models.AttendancePayload, result *SubmitResult) error {
	if len(payloads) == 0 {
		return nil
	}
	if _, err := s.backend.CreateAttendanceBatch(ctx, payloads); err != nil {
		utils.LogError(err, "Submit: batch rejected", map[string]interface{}{"batch_id": result.BatchID})
		return fmt.Errorf("save batch: %w", err)
	}
	result.Saved = len(payloads)
	return nil
}
