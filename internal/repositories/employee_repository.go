package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

// EmployeeRepository defines the interface for employee database operations.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, executor SQLExecutor, employee *models.Employee) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, executor SQLExecutor, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, executor SQLExecutor, id int64) error
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, daily_wage, overtime_rate, bank_daily_amount, created_at, updated_at`

func scanEmployee(row scanner) (*models.Employee, error) {
	var e models.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.DailyWage, &e.OvertimeRate, &e.BankDailyAmount, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, executor SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	query := `INSERT INTO employees (name, daily_wage, overtime_rate, bank_daily_amount, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`

	currentTime := time.Now()
	employee.CreatedAt = currentTime
	employee.UpdatedAt = currentTime

	err := executor.QueryRowContext(ctx, query,
		employee.Name, employee.DailyWage, employee.OvertimeRate, employee.BankDailyAmount,
		employee.CreatedAt, employee.UpdatedAt,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return nil, translatePQError(err, "creating employee")
	}
	return employee, nil
}

func (r *employeeRepository) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("getting employee by ID %d", id))
	}
	return employee, nil
}

// GetEmployees returns the whole roster ordered by name.
func (r *employeeRepository) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying employees: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning employee: %v", ErrDatabaseError, err)
		}
		employees = append(employees, *employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating employee rows: %v", ErrDatabaseError, err)
	}
	return employees, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, executor SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	query := `UPDATE employees SET
	            name = $1, daily_wage = $2, overtime_rate = $3, bank_daily_amount = $4, updated_at = $5
	          WHERE id = $6
	          RETURNING created_at, updated_at`

	employee.UpdatedAt = time.Now()
	err := executor.QueryRowContext(ctx, query,
		employee.Name, employee.DailyWage, employee.OvertimeRate, employee.BankDailyAmount,
		employee.UpdatedAt, employee.ID,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return nil, translatePQError(err, fmt.Sprintf("updating employee ID %d", employee.ID))
	}
	return employee, nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, executor SQLExecutor, id int64) error {
	action := fmt.Sprintf("deleting employee ID %d", id)
	result, err := executor.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return translatePQError(err, action)
	}
	return checkAffected(result, action)
}
