package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Fakes ---

type fakeEmployeeService struct {
	employees map[int64]models.Employee
	deleteErr error
}

func (s *fakeEmployeeService) CreateEmployee(ctx context.Context, req services.CreateEmployeeRequest) (*models.Employee, error) {
	if req.DailyWage < 0 {
		return nil, services.ErrEmployeeValidation
	}
	e := models.Employee{ID: 5, Name: req.Name, DailyWage: req.DailyWage}
	return &e, nil
}

func (s *fakeEmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, services.ErrEmployeeNotFound
	}
	return &e, nil
}

func (s *fakeEmployeeService) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	out := []models.Employee{}
	for _, e := range s.employees {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeEmployeeService) UpdateEmployee(ctx context.Context, id int64, req services.UpdateEmployeeRequest) (*models.Employee, error) {
	return s.GetEmployeeByID(ctx, id)
}

func (s *fakeEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.deleteErr
}

type fakeBoatService struct {
	createErr error
	updateErr error
	deleteErr error
}

func (s *fakeBoatService) CreateBoat(ctx context.Context, req services.BoatRequest) (*models.Boat, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Boat{ID: 3, Name: req.Name}, nil
}

func (s *fakeBoatService) GetBoatByID(ctx context.Context, id int64) (*models.Boat, error) {
	if id == models.SentinelBoatID {
		return &models.Boat{ID: id, Name: "-"}, nil
	}
	return nil, services.ErrBoatNotFound
}

func (s *fakeBoatService) GetBoats(ctx context.Context) ([]models.Boat, error) {
	return []models.Boat{{ID: 1, Name: "-"}}, nil
}

func (s *fakeBoatService) UpdateBoat(ctx context.Context, id int64, req services.BoatRequest) (*models.Boat, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Boat{ID: id, Name: req.Name}, nil
}

func (s *fakeBoatService) DeleteBoat(ctx context.Context, id int64) error {
	return s.deleteErr
}

type fakeAttendanceService struct {
	last  services.CreateAttendanceRequest
	batch services.BatchAttendanceRequest
	err   error
}

func (s *fakeAttendanceService) CreateAttendance(ctx context.Context, req services.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AttendanceRecord{ID: 1, Date: req.Date, EmployeeID: req.EmployeeID, BoatID: req.BoatID, Present: req.Present}, nil
}

func (s *fakeAttendanceService) CreateAttendanceBatch(ctx context.Context, req services.BatchAttendanceRequest) ([]models.AttendanceRecord, error) {
	s.batch = req
	if s.err != nil {
		return nil, s.err
	}
	return make([]models.AttendanceRecord, len(req.Records)), nil
}

func (s *fakeAttendanceService) GetAttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	if date == "bad" {
		return nil, services.ErrAttendanceDateFormat
	}
	return []models.AttendanceRecord{}, nil
}

type fakeReportService struct {
	filter services.ExpenseFilter
	err    error
}

func (s *fakeReportService) GetExpenses(ctx context.Context, r models.DateRange, f services.ExpenseFilter) (*models.ExpensesResponse, error) {
	s.filter = f
	if s.err != nil {
		return nil, s.err
	}
	return &models.ExpensesResponse{StartDate: r.Start, EndDate: r.End, Results: []models.ExpenseItem{}}, nil
}

func (s *fakeReportService) GetPayroll(ctx context.Context, r models.DateRange) (*models.PayrollReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.PayrollReport{StartDate: r.Start, EndDate: r.End, Payments: []models.PaymentItem{
		{EmployeeID: 1, EmployeeName: "Nikos", DaysWorked: 1, TotalWage: 80, GrandTotal: 80, BankPay: 50, CashPay: 30},
	}, GrandTotal: 80, TotalBank: 50, TotalCash: 30}, nil
}

func (s *fakeReportService) GetBoatAnalysis(ctx context.Context, boatID int64, r models.DateRange) (*models.BoatAnalysisResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BoatAnalysisResponse{BoatID: boatID, BoatName: "X"}, nil
}

func newEngine(es services.EmployeeService, bs services.BoatService, as services.AttendanceService, rs services.ReportService) *gin.Engine {
	engine := gin.New()
	eh := NewEmployeeHandler(es)
	bh := NewBoatHandler(bs)
	ah := NewAttendanceHandler(as)
	rh := NewReportHandler(rs, services.NewExportService(""))

	engine.POST("/employees/", eh.CreateEmployee)
	engine.GET("/employees/", eh.GetEmployees)
	engine.GET("/employees/:id", eh.GetEmployeeByID)
	engine.PUT("/employees/:id", eh.UpdateEmployee)
	engine.DELETE("/employees/:id", eh.DeleteEmployee)
	engine.POST("/boats/", bh.CreateBoat)
	engine.GET("/boats/:id", bh.GetBoatByID)
	engine.PUT("/boats/:id", bh.UpdateBoat)
	engine.DELETE("/boats/:id", bh.DeleteBoat)
	engine.GET("/boats/:id/analysis", rh.GetBoatAnalysis)
	engine.POST("/attendance/", ah.CreateAttendance)
	engine.POST("/attendance/batch", ah.CreateAttendanceBatch)
	engine.GET("/attendance/:date", ah.GetAttendanceByDate)
	engine.GET("/expenses/", rh.GetExpenses)
	engine.GET("/payroll/", rh.GetPayroll)
	engine.GET("/payroll/pdf", rh.GetPayrollPDF)
	engine.GET("/payroll/xlsx", rh.GetPayrollXLSX)
	return engine
}

func defaultEngine() (*fakeEmployeeService, *fakeBoatService, *fakeAttendanceService, *fakeReportService, *gin.Engine) {
	es := &fakeEmployeeService{employees: map[int64]models.Employee{7: {ID: 7, Name: "Νίκος"}}}
	bs := &fakeBoatService{}
	as := &fakeAttendanceService{}
	rs := &fakeReportService{}
	return es, bs, as, rs, newEngine(es, bs, as, rs)
}

// --- Employees ---

func TestCreateEmployeeHandler(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodPost, "/employees/", map[string]interface{}{"name": "Νίκος", "daily_wage": 80})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(engine, http.MethodPost, "/employees/", map[string]interface{}{"daily_wage": 80})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, w).Error.Code)

	w = perform(engine, http.MethodPost, "/employees/", map[string]interface{}{"name": "A", "daily_wage": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEmployeeNotFound(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/employees/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Ο εργαζόμενος δεν βρέθηκε", env.Error.Message)

	w = perform(engine, http.MethodGet, "/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEmployeeHandler(t *testing.T) {
	es, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodDelete, "/employees/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Επιτυχής διαγραφή", body["message"])
	assert.Equal(t, "Νίκος", body["name"])

	es.deleteErr = services.ErrEmployeeInUse
	w = perform(engine, http.MethodDelete, "/employees/7", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Boats ---

func TestCreateBoatConflict(t *testing.T) {
	_, bs, _, _, engine := defaultEngine()
	bs.createErr = services.ErrBoatNameExists

	w := perform(engine, http.MethodPost, "/boats/", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeEnvelope(t, w).Error.Code)
}

func TestGetBoatNotFound(t *testing.T) {
	_, _, _, _, engine := defaultEngine()
	w := perform(engine, http.MethodGet, "/boats/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Το σκάφος δεν βρέθηκε", decodeEnvelope(t, w).Error.Message)
}

func TestPlaceholderBoatConflict(t *testing.T) {
	_, bs, _, _, engine := defaultEngine()
	bs.updateErr = services.ErrBoatReserved
	bs.deleteErr = services.ErrBoatReserved

	w := perform(engine, http.MethodPut, "/boats/1", map[string]string{"name": "Άρτεμις"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeEnvelope(t, w).Error.Code)

	w = perform(engine, http.MethodDelete, "/boats/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decodeEnvelope(t, w).Error.Code)
}

// --- Attendance ---

func TestCreateAttendanceHandler(t *testing.T) {
	_, _, as, _, engine := defaultEngine()

	w := perform(engine, http.MethodPost, "/attendance/", models.AttendancePayload{
		Date: "2024-05-01", EmployeeID: 3, BoatID: 2, Present: true, OvertimeHours: 1.5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), as.last.EmployeeID)
	assert.Equal(t, 1.5, as.last.OvertimeHours)
	require.NotNil(t, as.last.ExtraReason)
	assert.Equal(t, "", *as.last.ExtraReason)
}

func TestCreateAttendanceHandlerErrors(t *testing.T) {
	_, _, as, _, engine := defaultEngine()

	w := perform(engine, http.MethodPost, "/attendance/", map[string]interface{}{"date": "2024-05-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "employee_id is required")

	as.err = services.ErrAttendanceValidation
	w = perform(engine, http.MethodPost, "/attendance/", map[string]interface{}{"date": "2024-05-01", "employee_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	as.err = services.ErrAttendanceReference
	w = perform(engine, http.MethodPost, "/attendance/", map[string]interface{}{"date": "2024-05-01", "employee_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, w).Error.Code)

	as.err = errors.New("db down")
	w = perform(engine, http.MethodPost, "/attendance/", map[string]interface{}{"date": "2024-05-01", "employee_id": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateAttendanceBatchHandler(t *testing.T) {
	_, _, as, _, engine := defaultEngine()

	w := perform(engine, http.MethodPost, "/attendance/batch", models.AttendanceBatch{Records: []models.AttendancePayload{
		{Date: "2024-05-01", EmployeeID: 1, BoatID: 2, Present: true},
		{Date: "2024-05-01", EmployeeID: 2, BoatID: 1},
	}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, as.batch.Records, 2)
}

func TestGetAttendanceByDateHandler(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/attendance/2024-05-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = perform(engine, http.MethodGet, "/attendance/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reports ---

func TestGetExpensesFilters(t *testing.T) {
	_, _, _, rs, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/expenses/?start=2024-05-01&end=2024-05-31&boat_id=2&emp_id=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, rs.filter.BoatID)
	assert.Equal(t, int64(2), *rs.filter.BoatID)
	require.NotNil(t, rs.filter.EmployeeID)
	assert.Equal(t, int64(7), *rs.filter.EmployeeID)

	w = perform(engine, http.MethodGet, "/expenses/?start=2024-05-01&end=2024-05-31&boat_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayrollInvalidRange(t *testing.T) {
	_, _, _, rs, engine := defaultEngine()
	rs.err = services.ErrInvalidDateRange

	w := perform(engine, http.MethodGet, "/payroll/?start=2024-05-31&end=2024-05-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, w).Error.Code)
}

func TestGetPayrollJSON(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/payroll/?start=2024-05-01&end=2024-05-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report models.PayrollReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Payments, 1)
	assert.Equal(t, "Nikos", report.Payments[0].EmployeeName)
	assert.Equal(t, 50.0, report.Payments[0].BankPay)
}

func TestGetPayrollPDF(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/payroll/pdf?start=2024-05-01&end=2024-05-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestGetPayrollXLSX(t *testing.T) {
	_, _, _, _, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/payroll/xlsx?start=2024-05-01&end=2024-05-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestGetBoatAnalysisHandler(t *testing.T) {
	_, _, _, rs, engine := defaultEngine()

	w := perform(engine, http.MethodGet, "/boats/2/analysis?start=2024-05-01&end=2024-05-31", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	rs.err = services.ErrBoatNotFound
	w = perform(engine, http.MethodGet, "/boats/2/analysis?start=2024-05-01&end=2024-05-31", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(engine, http.MethodGet, "/boats/0/analysis", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
