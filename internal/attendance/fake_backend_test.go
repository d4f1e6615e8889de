package attendance

import (
	"context"
	"sync"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

type fakeBackend struct {
	mu sync.Mutex

	boats     []models.Boat
	employees []models.Employee
	records   map[string][]models.AttendanceRecord

	calls   int
	posted  []models.AttendancePayload
	batches [][]models.AttendancePayload

	listErr       error
	attendanceErr error
	batchErr      error
	failFor       map[int64]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		boats: []models.Boat{
			{ID: models.SentinelBoatID, Name: "-"},
			{ID: 2, Name: "Αγία Ειρήνη"},
			{ID: 3, Name: "Ποσειδών"},
		},
		employees: []models.Employee{
			{ID: 10, Name: "Γιώργος"},
			{ID: 11, Name: "Νίκος"},
			{ID: 12, Name: "Κώστας"},
		},
		records: map[string][]models.AttendanceRecord{},
		failFor: map[int64]error{},
	}
}

func (f *fakeBackend) ListBoats(ctx context.Context) ([]models.Boat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.boats, nil
}

func (f *fakeBackend) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

func (f *fakeBackend) AttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.attendanceErr != nil {
		return nil, f.attendanceErr
	}
	return f.records[date], nil
}

func (f *fakeBackend) store(p models.AttendancePayload) models.AttendanceRecord {
	rec := models.AttendanceRecord{
		ID:            int64(len(f.posted)),
		Date:          p.Date,
		EmployeeID:    p.EmployeeID,
		BoatID:        p.BoatID,
		Present:       p.Present,
		OvertimeHours: p.OvertimeHours,
		ExtraAmount:   p.ExtraAmount,
	}
	day := f.records[p.Date]
	for i := range day {
		if day[i].EmployeeID == p.EmployeeID && !day[i].IsExtra() {
			day[i] = rec
			return rec
		}
	}
	f.records[p.Date] = append(day, rec)
	return rec
}

func (f *fakeBackend) CreateAttendance(ctx context.Context, p models.AttendancePayload) (*models.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.posted = append(f.posted, p)
	if err := f.failFor[p.EmployeeID]; err != nil {
		return nil, err
	}
	rec := f.store(p)
	return &rec, nil
}

func (f *fakeBackend) CreateAttendanceBatch(ctx context.Context, payloads []models.AttendancePayload) ([]models.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.batches = append(f.batches, payloads)
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make([]models.AttendanceRecord, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, f.store(p))
	}
	return out, nil
}

func (f *fakeBackend) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = 0
	f.posted = nil
	f.batches = nil
}

type alertRecorder struct {
	messages []string
}

func (r *alertRecorder) Alert(message string) {
	r.messages = append(r.messages, message)
}
