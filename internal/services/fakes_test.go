package services

import (
	"context"
	"fmt"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
)

type fakeAttendanceRepo struct {
	saved   []models.AttendanceRecord
	failFor map[int64]error
	byDate  map[string][]models.AttendanceRecord
	details []models.AttendanceDetail
	filter  models.AttendanceFilter
}

func (r *fakeAttendanceRepo) SaveAttendance(ctx context.Context, executor repositories.SQLExecutor, rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if err := r.failFor[rec.EmployeeID]; err != nil {
		return nil, err
	}
	rec.ID = int64(len(r.saved) + 1)
	r.saved = append(r.saved, *rec)
	return rec, nil
}

func (r *fakeAttendanceRepo) GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	return r.byDate[date], nil
}

func (r *fakeAttendanceRepo) GetAttendanceDetails(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	r.filter = filter
	return r.details, nil
}

type fakeTransactor struct {
	calls      int
	rolledBack bool
}

func (t *fakeTransactor) InTx(ctx context.Context, fn func(executor repositories.SQLExecutor) error) error {
	t.calls++
	if err := fn(nil); err != nil {
		t.rolledBack = true
		return err
	}
	return nil
}

type fakeBoatRepo struct {
	boats     map[int64]models.Boat
	createErr error
	deleteErr error
}

func (r *fakeBoatRepo) CreateBoat(ctx context.Context, executor repositories.SQLExecutor, boat *models.Boat) (*models.Boat, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	boat.ID = int64(len(r.boats) + 1)
	r.boats[boat.ID] = *boat
	return boat, nil
}

func (r *fakeBoatRepo) GetBoatByID(ctx context.Context, id int64) (*models.Boat, error) {
	b, ok := r.boats[id]
	if !ok {
		return nil, fmt.Errorf("%w: boat %d", repositories.ErrNotFound, id)
	}
	return &b, nil
}

func (r *fakeBoatRepo) GetBoats(ctx context.Context) ([]models.Boat, error) {
	out := make([]models.Boat, 0, len(r.boats))
	for _, b := range r.boats {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBoatRepo) UpdateBoat(ctx context.Context, executor repositories.SQLExecutor, boat *models.Boat) (*models.Boat, error) {
	if _, ok := r.boats[boat.ID]; !ok {
		return nil, fmt.Errorf("%w: boat %d", repositories.ErrNotFound, boat.ID)
	}
	r.boats[boat.ID] = *boat
	return boat, nil
}

func (r *fakeBoatRepo) DeleteBoat(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.boats, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int64]models.Employee
	deleteErr error
}

func (r *fakeEmployeeRepo) CreateEmployee(ctx context.Context, executor repositories.SQLExecutor, e *models.Employee) (*models.Employee, error) {
	e.ID = int64(len(r.employees) + 1)
	r.employees[e.ID] = *e
	return e, nil
}

func (r *fakeEmployeeRepo) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("%w: employee %d", repositories.ErrNotFound, id)
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateEmployee(ctx context.Context, executor repositories.SQLExecutor, e *models.Employee) (*models.Employee, error) {
	r.employees[e.ID] = *e
	return e, nil
}

func (r *fakeEmployeeRepo) DeleteEmployee(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.employees[id]; !ok {
		return fmt.Errorf("%w: employee %d", repositories.ErrNotFound, id)
	}
	delete(r.employees, id)
	return nil
}
