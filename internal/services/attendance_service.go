package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

// --- Custom Service Errors for Attendance ---
var (
	ErrAttendanceValidation = errors.New("attendance data validation error")
	ErrAttendanceDateFormat = errors.New("invalid date format, please use YYYY-MM-DD")
	ErrAttendanceReference  = errors.New("attendance references an unknown employee or boat")
	ErrEmptyBatch           = errors.New("attendance batch is empty")
)

// --- Attendance DTOs ---
type CreateAttendanceRequest struct {
	Date           string  `json:"date" binding:"required"`
	EmployeeID     int64   `json:"employee_id" binding:"required"`
	BoatID         int64   `json:"boat_id"`
	OvertimeBoatID *int64  `json:"overtime_boat_id"`
	Present        bool    `json:"present"`
	IsHalfDay      bool    `json:"is_half_day"`
	OvertimeHours  float64 `json:"overtime_hours"`
	ExtraAmount    float64 `json:"extra_amount"`
	ExtraReason    *string `json:"extra_reason"`
}

// BatchAttendanceRequest carries a whole day (or several) for one transaction.
type BatchAttendanceRequest struct {
	Records []CreateAttendanceRequest `json:"records" binding:"required"`
}

// --- AttendanceService Interface ---
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*models.AttendanceRecord, error)
	CreateAttendanceBatch(ctx context.Context, req BatchAttendanceRequest) ([]models.AttendanceRecord, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	transactor     repositories.Transactor
	db             *sql.DB
}

// NewAttendanceService creates a new instance of AttendanceService.
func NewAttendanceService(repo repositories.AttendanceRepository, transactor repositories.Transactor, db *sql.DB) AttendanceService {
	return &attendanceService{attendanceRepo: repo, transactor: transactor, db: db}
}

func parseDay(value string) (string, error) {
	value = strings.TrimSpace(value)
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrAttendanceDateFormat, value)
	}
	return day.Format(models.DateLayout), nil
}

// toRecord validates a request and applies the storage defaults.
func toRecord(req CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employee_id must be positive", ErrAttendanceValidation)
	}
	if req.OvertimeHours < 0 {
		return nil, fmt.Errorf("%w: overtime_hours cannot be negative", ErrAttendanceValidation)
	}

	rec := &models.AttendanceRecord{
		Date:           date,
		EmployeeID:     req.EmployeeID,
		BoatID:         req.BoatID,
		OvertimeBoatID: req.OvertimeBoatID,
		Present:        req.Present,
		IsHalfDay:      req.IsHalfDay,
		OvertimeHours:  req.OvertimeHours,
		ExtraAmount:    req.ExtraAmount,
		ExtraReason:    utils.NewNullString(utils.StringValue(req.ExtraReason)),
	}

	if rec.Present {
		if rec.BoatID <= 0 {
			return nil, fmt.Errorf("%w: a present employee needs a boat", ErrAttendanceValidation)
		}
	} else {
		if rec.BoatID <= 0 {
			rec.BoatID = models.SentinelBoatID
		}
		// Absent days carry no hours.
		rec.IsHalfDay = false
		rec.OvertimeHours = 0
		rec.OvertimeBoatID = nil
	}
	if rec.OvertimeBoatID != nil && *rec.OvertimeBoatID <= 0 {
		rec.OvertimeBoatID = nil
	}
	return rec, nil
}

func (s *attendanceService) save(ctx context.Context, executor repositories.SQLExecutor, rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	saved, err := s.attendanceRepo.SaveAttendance(ctx, executor, rec)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return nil, fmt.Errorf("%w: employee %d, boat %d", ErrAttendanceReference, rec.EmployeeID, rec.BoatID)
		}
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return saved, nil
}

func (s *attendanceService) CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	rec, err := toRecord(req)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, s.db, rec)
}

// CreateAttendanceBatch validates every record first and then saves them all
// in one transaction; any failure leaves the database untouched.
func (s *attendanceService) CreateAttendanceBatch(ctx context.Context, req BatchAttendanceRequest) ([]models.AttendanceRecord, error) {
	if len(req.Records) == 0 {
		return nil, ErrEmptyBatch
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Records))
	for i, r := range req.Records {
		rec, err := toRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	saved := make([]models.AttendanceRecord, 0, len(records))
	err := s.transactor.InTx(ctx, func(executor repositories.SQLExecutor) error {
		for _, rec := range records {
			out, err := s.save(ctx, executor, rec)
			if err != nil {
				return err
			}
			saved = append(saved, *out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *attendanceService) GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.GetAttendanceByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for %s: %w", day, err)
	}
	return records, nil
}
