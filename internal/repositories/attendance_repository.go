package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

// AttendanceRepository defines the interface for attendance database operations.
type AttendanceRepository interface {
	// SaveAttendance upserts the attendance mark of (date, employee); extra
	// payments are always inserted as new rows.
	SaveAttendance(ctx context.Context, executor SQLExecutor, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
	GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	GetAttendanceDetails(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error)
}

type attendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new instance of AttendanceRepository.
func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) SaveAttendance(ctx context.Context, executor SQLExecutor, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	query := `INSERT INTO attendance (date, employee_id, boat_id, overtime_boat_id, present, is_half_day,
	                                  overtime_hours, extra_amount, extra_reason)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (date, employee_id) WHERE present OR extra_amount = 0
	          DO UPDATE SET boat_id = EXCLUDED.boat_id,
	                        overtime_boat_id = EXCLUDED.overtime_boat_id,
	                        present = EXCLUDED.present,
	                        is_half_day = EXCLUDED.is_half_day,
	                        overtime_hours = EXCLUDED.overtime_hours,
	                        extra_amount = EXCLUDED.extra_amount,
	                        extra_reason = EXCLUDED.extra_reason
	          RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		record.Date, record.EmployeeID, record.BoatID, record.OvertimeBoatID, record.Present, record.IsHalfDay,
		record.OvertimeHours, record.ExtraAmount, record.ExtraReason,
	).Scan(&record.ID)
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("saving attendance of employee %d on %s", record.EmployeeID, record.Date))
	}
	return record, nil
}

const attendanceColumns = `a.id, a.date, a.employee_id, a.boat_id, a.overtime_boat_id, a.present, a.is_half_day,
	a.overtime_hours, a.extra_amount, a.extra_reason`

func scanAttendance(row scanner, extra ...interface{}) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	var day time.Time
	var overtimeBoatID sql.NullInt64
	var reason sql.NullString

	dest := []interface{}{
		&rec.ID, &day, &rec.EmployeeID, &rec.BoatID, &overtimeBoatID, &rec.Present, &rec.IsHalfDay,
		&rec.OvertimeHours, &rec.ExtraAmount, &reason,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	rec.Date = day.Format(models.DateLayout)
	if overtimeBoatID.Valid {
		rec.OvertimeBoatID = &overtimeBoatID.Int64
	}
	if reason.Valid {
		rec.ExtraReason = &reason.String
	}
	return &rec, nil
}

func (r *attendanceRepository) GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance a WHERE a.date = $1 ORDER BY a.employee_id ASC, a.id ASC`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: querying attendance for %s: %v", ErrDatabaseError, date, err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning attendance: %v", ErrDatabaseError, err)
		}
		records = append(records, *rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating attendance rows: %v", ErrDatabaseError, err)
	}
	return records, nil
}

// GetAttendanceDetails reads every record in [Start, End] joined with wage
// terms and boat names. A boat filter matches either the day's boat or the
// boat credited with the overtime.
func (r *attendanceRepository) GetAttendanceDetails(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + attendanceColumns + `,
	    e.name, e.daily_wage, e.overtime_rate, e.bank_daily_amount,
	    b.name, ob.name
	  FROM attendance a
	  JOIN employees e ON a.employee_id = e.id
	  JOIN boats b ON a.boat_id = b.id
	  LEFT JOIN boats ob ON a.overtime_boat_id = ob.id`)

	conditions := []string{"a.date BETWEEN $1 AND $2"}
	args := []interface{}{filter.Start, filter.End}
	argCount := 3

	if filter.BoatID != nil {
		conditions = append(conditions, fmt.Sprintf("(a.boat_id = $%d OR a.overtime_boat_id = $%d)", argCount, argCount))
		args = append(args, *filter.BoatID)
		argCount++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argCount))
		args = append(args, *filter.EmployeeID)
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	queryBuilder.WriteString(" ORDER BY a.date ASC, e.name ASC, a.id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying attendance details: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	details := []models.AttendanceDetail{}
	for rows.Next() {
		var d models.AttendanceDetail
		var overtimeBoatName sql.NullString
		rec, err := scanAttendance(rows,
			&d.EmployeeName, &d.DailyWage, &d.OvertimeRate, &d.BankDailyAmount,
			&d.BoatName, &overtimeBoatName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning attendance detail: %v", ErrDatabaseError, err)
		}
		d.AttendanceRecord = *rec
		if overtimeBoatName.Valid {
			d.OvertimeBoatName = &overtimeBoatName.String
		}
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating attendance detail rows: %v", ErrDatabaseError, err)
	}
	return details, nil
}
