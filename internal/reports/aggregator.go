// Package reports queries the backend for date-range aggregates: expenses,
// payroll and per-boat analysis. The backend owns all wage arithmetic.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

var (
	ErrRangeRequired = errors.New("start and end dates are required")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrEmployeeID    = errors.New("employee is required")
	ErrZeroExtra     = errors.New("extra amount must not be zero")
)

const (
	MsgRangeRequired = "Παρακαλώ επιλέξτε ημερομηνίες έναρξης και λήξης"
	MsgEmployeeReq   = "Παρακαλώ επιλέξτε εργαζόμενο"
	MsgAmountReq     = "Παρακαλώ συμπληρώστε ποσό"
	MsgFetchFailed   = "Αποτυχία φόρτωσης δεδομένων"
	MsgExtraFailed   = "Αποτυχία καταχώρησης έκτακτης πληρωμής"
)

// Backend is the part of the REST API the aggregators use.
type Backend interface {
	Expenses(ctx context.Context, r models.DateRange, boatID, employeeID *int64) (*models.ExpensesResponse, error)
	Payroll(ctx context.Context, r models.DateRange) (*models.PayrollReport, error)
	BoatAnalysis(ctx context.Context, boatID int64, r models.DateRange) (*models.BoatAnalysisResponse, error)
	CreateAttendance(ctx context.Context, payload models.AttendancePayload) (*models.AttendanceRecord, error)
	PayrollPDFURL(r models.DateRange) string
	PayrollPDF(ctx context.Context, r models.DateRange) ([]byte, error)
	PayrollXLSX(ctx context.Context, r models.DateRange) ([]byte, error)
}

// Notifier shows a blocking alert to the operator.
type Notifier interface {
	Alert(message string)
}

// ExpenseFilter narrows the expense report. Nil fields do not filter.
type ExpenseFilter struct {
	BoatID     *int64
	EmployeeID *int64
}

type Aggregator struct {
	backend  Backend
	notifier Notifier
}

func NewAggregator(backend Backend, notifier Notifier) *Aggregator {
	return &Aggregator{backend: backend, notifier: notifier}
}

func (a *Aggregator) checkRange(r models.DateRange) error {
	if r.Start == "" || r.End == "" {
		a.notifier.Alert(MsgRangeRequired)
		return ErrRangeRequired
	}
	start, err := time.Parse(models.DateLayout, r.Start)
	if err != nil {
		a.notifier.Alert(MsgRangeRequired)
		return fmt.Errorf("%w: start %q", ErrInvalidRange, r.Start)
	}
	end, err := time.Parse(models.DateLayout, r.End)
	if err != nil {
		a.notifier.Alert(MsgRangeRequired)
		return fmt.Errorf("%w: end %q", ErrInvalidRange, r.End)
	}
	if end.Before(start) {
		a.notifier.Alert(MsgRangeRequired)
		return fmt.Errorf("%w: %s is after %s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (a *Aggregator) failed(err error, msg, alert string) error {
	utils.LogError(err, msg)
	a.notifier.Alert(alert)
	return err
}

func (a *Aggregator) Expenses(ctx context.Context, r models.DateRange, filter ExpenseFilter) (*models.ExpensesResponse, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	resp, err := a.backend.Expenses(ctx, r, filter.BoatID, filter.EmployeeID)
	if err != nil {
		return nil, a.failed(err, "Expenses: request failed", MsgFetchFailed)
	}
	return resp, nil
}

func (a *Aggregator) Payroll(ctx context.Context, r models.DateRange) (*models.PayrollReport, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	report, err := a.backend.Payroll(ctx, r)
	if err != nil {
		return nil, a.failed(err, "Payroll: request failed", MsgFetchFailed)
	}
	return report, nil
}

func (a *Aggregator) BoatAnalysis(ctx context.Context, boatID int64, r models.DateRange) (*models.BoatAnalysisResponse, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	resp, err := a.backend.BoatAnalysis(ctx, boatID, r)
	if err != nil {
		return nil, a.failed(err, "BoatAnalysis: request failed", MsgFetchFailed)
	}
	return resp, nil
}

// AddExtra records an extra payment for the employee on the last day of the
// range and returns the recomputed payroll.
func (a *Aggregator) AddExtra(ctx context.Context, r models.DateRange, employeeID int64, amount float64, reason string) (*models.PayrollReport, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	if employeeID <= 0 {
		a.notifier.Alert(MsgEmployeeReq)
		return nil, ErrEmployeeID
	}
	if amount == 0 {
		a.notifier.Alert(MsgAmountReq)
		return nil, ErrZeroExtra
	}

	payload := models.AttendancePayload{
		Date:          r.End,
		EmployeeID:    employeeID,
		BoatID:        models.SentinelBoatID,
		Present:       false,
		OvertimeHours: 0,
		ExtraAmount:   amount,
		ExtraReason:   reason,
	}
	if _, err := a.backend.CreateAttendance(ctx, payload); err != nil {
		return nil, a.failed(err, "AddExtra: request failed", MsgExtraFailed)
	}
	utils.LogInfo("AddExtra: extra payment recorded", map[string]interface{}{
		"employee_id": employeeID,
		"date":        r.End,
		"amount":      amount,
	})
	return a.Payroll(ctx, r)
}

// PayrollPDFURL returns the address of the rendered payroll PDF.
func (a *Aggregator) PayrollPDFURL(r models.DateRange) (string, error) {
	if err := a.checkRange(r); err != nil {
		return "", err
	}
	return a.backend.PayrollPDFURL(r), nil
}

func (a *Aggregator) DownloadPayrollPDF(ctx context.Context, r models.DateRange) ([]byte, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	data, err := a.backend.PayrollPDF(ctx, r)
	if err != nil {
		return nil, a.failed(err, "DownloadPayrollPDF: request failed", MsgFetchFailed)
	}
	return data, nil
}

func (a *Aggregator) DownloadPayrollXLSX(ctx context.Context, r models.DateRange) ([]byte, error) {
	if err := a.checkRange(r); err != nil {
		return nil, err
	}
	data, err := a.backend.PayrollXLSX(ctx, r)
	if err != nil {
		return nil, a.failed(err, "DownloadPayrollXLSX: request failed", MsgFetchFailed)
	}
	return data, nil
}
