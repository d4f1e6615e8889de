package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
)

// --- Custom Service Errors for Employees ---
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeValidation = errors.New("employee data validation error")
	ErrEmployeeInUse      = errors.New("employee cannot be deleted as they have attendance records")
)

// --- Employee DTOs ---
type CreateEmployeeRequest struct {
	Name            string  `json:"name" binding:"required"`
	DailyWage       float64 `json:"daily_wage"`
	OvertimeRate    float64 `json:"overtime_rate"`
	BankDailyAmount float64 `json:"bank_daily_amount"`
}

// UpdateEmployeeRequest replaces the editable fields; nil keeps the stored value.
type UpdateEmployeeRequest struct {
	Name            *string  `json:"name"`
	DailyWage       *float64 `json:"daily_wage"`
	OvertimeRate    *float64 `json:"overtime_rate"`
	BankDailyAmount *float64 `json:"bank_daily_amount"`
}

// --- EmployeeService Interface ---
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID int64) (*models.Employee, error)
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	db           *sql.DB
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository, db *sql.DB) EmployeeService {
	return &employeeService{employeeRepo: repo, db: db}
}

func validateEmployee(e *models.Employee) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrEmployeeValidation)
	}
	if e.DailyWage < 0 {
		return fmt.Errorf("%w: daily wage cannot be negative", ErrEmployeeValidation)
	}
	if e.OvertimeRate < 0 {
		return fmt.Errorf("%w: overtime rate cannot be negative", ErrEmployeeValidation)
	}
	if e.BankDailyAmount < 0 {
		return fmt.Errorf("%w: bank daily amount cannot be negative", ErrEmployeeValidation)
	}
	return nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		Name:            req.Name,
		DailyWage:       req.DailyWage,
		OvertimeRate:    req.OvertimeRate,
		BankDailyAmount: req.BankDailyAmount,
	}
	if err := validateEmployee(employee); err != nil {
		return nil, err
	}

	created, err := s.employeeRepo.CreateEmployee(ctx, s.db, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee in repository: %w", err)
	}
	return created, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepo.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.DailyWage != nil {
		employee.DailyWage = *req.DailyWage
	}
	if req.OvertimeRate != nil {
		employee.OvertimeRate = *req.OvertimeRate
	}
	if req.BankDailyAmount != nil {
		employee.BankDailyAmount = *req.BankDailyAmount
	}
	if err := validateEmployee(employee); err != nil {
		return nil, err
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, s.db, employee)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	err := s.employeeRepo.DeleteEmployee(ctx, s.db, employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		if errors.Is(err, repositories.ErrForeignKey) {
			return ErrEmployeeInUse
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
