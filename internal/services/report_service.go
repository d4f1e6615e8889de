package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

// --- Custom Service Errors for Reports ---
var (
	ErrInvalidDateRange = errors.New("invalid date range, start and end must be YYYY-MM-DD with start <= end")
)

// ExpenseFilter narrows an expense report.
type ExpenseFilter struct {
	BoatID     *int64
	EmployeeID *int64
}

// --- ReportService Interface ---
type ReportService interface {
	GetExpenses(ctx context.Context, dateRange models.DateRange, filter ExpenseFilter) (*models.ExpensesResponse, error)
	GetPayroll(ctx context.Context, dateRange models.DateRange) (*models.PayrollReport, error)
	GetBoatAnalysis(ctx context.Context, boatID int64, dateRange models.DateRange) (*models.BoatAnalysisResponse, error)
}

type reportService struct {
	attendanceRepo repositories.AttendanceRepository
	boatRepo       repositories.BoatRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(attendanceRepo repositories.AttendanceRepository, boatRepo repositories.BoatRepository) ReportService {
	return &reportService{attendanceRepo: attendanceRepo, boatRepo: boatRepo}
}

// ValidateDateRange normalises both ends and checks their order.
func ValidateDateRange(dateRange models.DateRange) (models.DateRange, error) {
	start, err := time.Parse(models.DateLayout, dateRange.Start)
	if err != nil {
		return dateRange, fmt.Errorf("%w: start %q", ErrInvalidDateRange, dateRange.Start)
	}
	end, err := time.Parse(models.DateLayout, dateRange.End)
	if err != nil {
		return dateRange, fmt.Errorf("%w: end %q", ErrInvalidDateRange, dateRange.End)
	}
	if end.Before(start) {
		return dateRange, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, dateRange.Start, dateRange.End)
	}
	return models.DateRange{Start: start.Format(models.DateLayout), End: end.Format(models.DateLayout)}, nil
}

// --- Wage arithmetic ---

// recordCost splits one record into its daily, overtime and extra parts.
// Only present records earn a wage or overtime.
type recordCost struct {
	Daily    float64
	Overtime float64
	Extra    float64
}

func (c recordCost) Total() float64 {
	return c.Daily + c.Overtime + c.Extra
}

func costOf(d models.AttendanceDetail) recordCost {
	var c recordCost
	if d.Present {
		c.Daily = d.DailyWage
		if d.IsHalfDay {
			c.Daily = d.DailyWage / 2
		}
		c.Overtime = d.OvertimeHours * d.OvertimeRate
	}
	c.Extra = d.ExtraAmount
	return c
}

// costOnBoat keeps the parts of a record's cost credited to boatID: the day
// and any extra go to the day's boat, overtime to the overtime boat if set.
func costOnBoat(d models.AttendanceDetail, boatID int64) recordCost {
	full := costOf(d)
	var c recordCost
	if d.BoatID == boatID {
		c.Daily = full.Daily
		c.Extra = full.Extra
	}
	overtimeBoat := d.BoatID
	if d.OvertimeBoatID != nil {
		overtimeBoat = *d.OvertimeBoatID
	}
	if overtimeBoat == boatID {
		c.Overtime = full.Overtime
	}
	return c
}

func countsAsCost(d models.AttendanceDetail) bool {
	return d.Present || d.ExtraAmount != 0
}

func (s *reportService) GetExpenses(ctx context.Context, dateRange models.DateRange, filter ExpenseFilter) (*models.ExpensesResponse, error) {
	dateRange, err := ValidateDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	details, err := s.attendanceRepo.GetAttendanceDetails(ctx, models.AttendanceFilter{
		Start: dateRange.Start, End: dateRange.End, BoatID: filter.BoatID, EmployeeID: filter.EmployeeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance for expenses: %w", err)
	}

	resp := &models.ExpensesResponse{StartDate: dateRange.Start, EndDate: dateRange.End, Results: []models.ExpenseItem{}}
	var total float64
	for _, d := range details {
		if !countsAsCost(d) {
			continue
		}
		c := costOf(d)
		if filter.BoatID != nil {
			c = costOnBoat(d, *filter.BoatID)
			if c.Total() == 0 {
				continue
			}
		}
		boatID, boatName := d.BoatID, d.BoatName
		if filter.BoatID != nil && d.BoatID != *filter.BoatID {
			// only the overtime is credited to the filtered boat
			boatID = *filter.BoatID
			boatName = utils.StringValue(d.OvertimeBoatName)
		}
		item := models.ExpenseItem{
			Date:         d.Date,
			EmployeeID:   d.EmployeeID,
			EmployeeName: d.EmployeeName,
			BoatID:       boatID,
			BoatName:     boatName,
			DailyCost:    utils.RoundCents(c.Daily),
			OvertimeCost: utils.RoundCents(c.Overtime),
			ExtraCost:    utils.RoundCents(c.Extra),
			ExtraReason:  d.ExtraReason,
			TotalCost:    utils.RoundCents(c.Total()),
		}
		total += item.TotalCost
		resp.Results = append(resp.Results, item)
	}
	resp.TotalSum = utils.RoundCents(total)
	return resp, nil
}

func (s *reportService) GetBoatAnalysis(ctx context.Context, boatID int64, dateRange models.DateRange) (*models.BoatAnalysisResponse, error) {
	dateRange, err := ValidateDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	boat, err := s.boatRepo.GetBoatByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat for analysis: %w", err)
	}

	details, err := s.attendanceRepo.GetAttendanceDetails(ctx, models.AttendanceFilter{
		Start: dateRange.Start, End: dateRange.End, BoatID: &boatID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance for boat analysis: %w", err)
	}

	resp := &models.BoatAnalysisResponse{
		BoatID:       boat.ID,
		BoatName:     boat.Name,
		StartDate:    dateRange.Start,
		EndDate:      dateRange.End,
		AnalysisData: []models.AnalysisItem{},
	}
	var total float64
	for _, d := range details {
		if !d.Present {
			continue
		}
		c := costOnBoat(d, boatID)
		if c.Daily == 0 && c.Overtime == 0 {
			continue
		}
		item := models.AnalysisItem{
			Date:         d.Date,
			EmployeeName: d.EmployeeName,
			DailyCost:    utils.RoundCents(c.Daily),
			OvertimeCost: utils.RoundCents(c.Overtime),
			TotalCost:    utils.RoundCents(c.Daily + c.Overtime),
		}
		total += item.TotalCost
		resp.AnalysisData = append(resp.AnalysisData, item)
	}
	resp.TotalCost = utils.RoundCents(total)
	return resp, nil
}

func (s *reportService) GetPayroll(ctx context.Context, dateRange models.DateRange) (*models.PayrollReport, error) {
	dateRange, err := ValidateDateRange(dateRange)
	if err != nil {
		return nil, err
	}

	details, err := s.attendanceRepo.GetAttendanceDetails(ctx, models.AttendanceFilter{Start: dateRange.Start, End: dateRange.End})
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance for payroll: %w", err)
	}

	report := BuildPayroll(dateRange, details)
	return report, nil
}

// BuildPayroll aggregates detail rows into one payment per employee.
// The bank part is bank_daily_amount per day worked (half on half days),
// capped at the grand total; the rest is paid in cash.
func BuildPayroll(dateRange models.DateRange, details []models.AttendanceDetail) *models.PayrollReport {
	type acc struct {
		item     models.PaymentItem
		bankDays float64
		bankRate float64
	}
	byEmployee := map[int64]*acc{}

	for _, d := range details {
		if !countsAsCost(d) {
			continue
		}
		a, ok := byEmployee[d.EmployeeID]
		if !ok {
			a = &acc{
				item:     models.PaymentItem{EmployeeID: d.EmployeeID, EmployeeName: d.EmployeeName},
				bankRate: d.BankDailyAmount,
			}
			byEmployee[d.EmployeeID] = a
		}

		c := costOf(d)
		if d.Present {
			a.item.DaysWorked++
			if d.IsHalfDay {
				a.item.HalfDays++
				a.bankDays += 0.5
			} else {
				a.bankDays++
			}
		}
		a.item.TotalWage += c.Daily
		a.item.TotalOvertime += c.Overtime
		a.item.TotalExtra += c.Extra
	}

	report := &models.PayrollReport{StartDate: dateRange.Start, EndDate: dateRange.End, Payments: []models.PaymentItem{}}
	for _, a := range byEmployee {
		item := a.item
		item.TotalWage = utils.RoundCents(item.TotalWage)
		item.TotalOvertime = utils.RoundCents(item.TotalOvertime)
		item.TotalExtra = utils.RoundCents(item.TotalExtra)
		item.GrandTotal = utils.RoundCents(item.TotalWage + item.TotalOvertime + item.TotalExtra)

		bank := math.Max(0, a.bankRate*a.bankDays)
		item.BankPay = utils.RoundCents(math.Min(bank, math.Max(0, item.GrandTotal)))
		item.CashPay = utils.RoundCents(item.GrandTotal - item.BankPay)

		report.TotalBank += item.BankPay
		report.TotalCash += item.CashPay
		report.GrandTotal += item.GrandTotal
		report.Payments = append(report.Payments, item)
	}

	sort.Slice(report.Payments, func(i, j int) bool {
		if report.Payments[i].EmployeeName == report.Payments[j].EmployeeName {
			return report.Payments[i].EmployeeID < report.Payments[j].EmployeeID
		}
		return report.Payments[i].EmployeeName < report.Payments[j].EmployeeName
	})
	report.TotalBank = utils.RoundCents(report.TotalBank)
	report.TotalCash = utils.RoundCents(report.TotalCash)
	report.GrandTotal = utils.RoundCents(report.GrandTotal)
	return report
}
