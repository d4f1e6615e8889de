// Package apiclient talks to the payroll REST backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"
)

// DefaultBaseURL is where the backend listens on the operator's machine.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client is a JSON client for the backend endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client. A zero timeout means 30 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend root without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func rangeQuery(r models.DateRange) url.Values {
	q := url.Values{}
	q.Set("start", r.Start)
	q.Set("end", r.End)
	return q
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends the request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in interface{}) ([]byte, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.sendJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	data, err := c.do(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal response: %w (body: %s)", err, string(data))
	}
	return nil
}

// --- Reference data ---

// ListBoats calls GET /boats/.
func (c *Client) ListBoats(ctx context.Context) ([]models.Boat, error) {
	var boats []models.Boat
	if err := c.getJSON(ctx, "/boats/", nil, &boats); err != nil {
		return nil, err
	}
	return boats, nil
}

// ListEmployees calls GET /employees/.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.getJSON(ctx, "/employees/", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// EmployeeInput is the editable part of an employee.
type EmployeeInput struct {
	Name            string  `json:"name"`
	DailyWage       float64 `json:"daily_wage"`
	OvertimeRate    float64 `json:"overtime_rate"`
	BankDailyAmount float64 `json:"bank_daily_amount"`
}

// CreateEmployee calls POST /employees/.
func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	var out models.Employee
	if err := c.sendJSON(ctx, http.MethodPost, "/employees/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee calls PUT /employees/{id}.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, in EmployeeInput) (*models.Employee, error) {
	var out models.Employee
	if err := c.sendJSON(ctx, http.MethodPut, "/employees/"+utils.Int64ToStr(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee calls DELETE /employees/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/employees/"+utils.Int64ToStr(id), nil, nil, nil)
}

type boatInput struct {
	Name string `json:"name"`
}

// CreateBoat calls POST /boats/.
func (c *Client) CreateBoat(ctx context.Context, name string) (*models.Boat, error) {
	var out models.Boat
	if err := c.sendJSON(ctx, http.MethodPost, "/boats/", nil, boatInput{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBoat calls PUT /boats/{id}.
func (c *Client) UpdateBoat(ctx context.Context, id int64, name string) (*models.Boat, error) {
	var out models.Boat
	if err := c.sendJSON(ctx, http.MethodPut, "/boats/"+utils.Int64ToStr(id), nil, boatInput{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBoat calls DELETE /boats/{id}.
func (c *Client) DeleteBoat(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/boats/"+utils.Int64ToStr(id), nil, nil, nil)
}

// --- Attendance ---

// AttendanceByDate calls GET /attendance/{date}.
func (c *Client) AttendanceByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := c.getJSON(ctx, "/attendance/"+url.PathEscape(date), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateAttendance calls POST /attendance/.
func (c *Client) CreateAttendance(ctx context.Context, payload models.AttendancePayload) (*models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	if err := c.sendJSON(ctx, http.MethodPost, "/attendance/", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAttendanceBatch calls POST /attendance/batch.
func (c *Client) CreateAttendanceBatch(ctx context.Context, payloads []models.AttendancePayload) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := c.sendJSON(ctx, http.MethodPost, "/attendance/batch", nil, models.AttendanceBatch{Records: payloads}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Aggregates ---

// Expenses calls GET /expenses/?start&end[&boat_id][&emp_id].
func (c *Client) Expenses(ctx context.Context, r models.DateRange, boatID, employeeID *int64) (*models.ExpensesResponse, error) {
	q := rangeQuery(r)
	if boatID != nil {
		q.Set("boat_id", utils.Int64ToStr(*boatID))
	}
	if employeeID != nil {
		q.Set("emp_id", utils.Int64ToStr(*employeeID))
	}
	var out models.ExpensesResponse
	if err := c.getJSON(ctx, "/expenses/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Payroll calls GET /payroll/?start&end.
func (c *Client) Payroll(ctx context.Context, r models.DateRange) (*models.PayrollReport, error) {
	var out models.PayrollReport
	if err := c.getJSON(ctx, "/payroll/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BoatAnalysis calls GET /boats/{id}/analysis?start&end.
func (c *Client) BoatAnalysis(ctx context.Context, boatID int64, r models.DateRange) (*models.BoatAnalysisResponse, error) {
	var out models.BoatAnalysisResponse
	path := "/boats/" + utils.Int64ToStr(boatID) + "/analysis"
	if err := c.getJSON(ctx, path, rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayrollPDFURL is the address a browser opens to view the payroll PDF.
func (c *Client) PayrollPDFURL(r models.DateRange) string {
	return c.endpoint("/payroll/pdf", rangeQuery(r))
}

// PayrollPDF downloads the rendered payroll PDF.
func (c *Client) PayrollPDF(ctx context.Context, r models.DateRange) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/payroll/pdf", rangeQuery(r), nil)
}

// PayrollXLSX downloads the payroll spreadsheet.
func (c *Client) PayrollXLSX(ctx context.Context, r models.DateRange) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/payroll/xlsx", rangeQuery(r), nil)
}
