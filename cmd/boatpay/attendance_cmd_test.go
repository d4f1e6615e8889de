package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexNT-maker/auto-payroll-system/internal/attendance"
	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
)

func TestParseMark(t *testing.T) {
	m, err := parseMark("3:2")
	require.NoError(t, err)
	assert.Equal(t, mark{EmployeeID: 3, BoatID: 2}, m)

	m, err = parseMark("4:2:1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, m.OvertimeHours)

	for _, bad := range []string{"", "3", "3:2:1:0", "x:2", "3:y", "0:2", "3:0", "3:2:-1", "3:2:abc"} {
		_, err := parseMark(bad)
		assert.Error(t, err, bad)
	}
}

func testView() *attendance.DayView {
	boat := int64(2)
	return &attendance.DayView{
		Date: "2024-05-01",
		Rows: []attendance.Row{
			{EmployeeID: 3, EmployeeName: "Nikos"},
			{EmployeeID: 4, EmployeeName: "Maria", Present: true, WasPresent: true, BoatID: &boat},
		},
		Boats: []attendance.BoatOption{{ID: 2, Name: "Poseidon"}, {ID: 5, Name: "Aris"}},
		Form:  &attendance.Form{},
	}
}

func TestApplyMarks(t *testing.T) {
	view := testView()

	err := applyMarks(view, []mark{{EmployeeID: 3, BoatID: 5, OvertimeHours: 2}}, []int64{4})
	require.NoError(t, err)

	present := view.Present()
	require.Len(t, present, 1)
	assert.Equal(t, int64(3), present[0].EmployeeID)
	assert.Equal(t, int64(5), *present[0].BoatID)
	assert.Equal(t, 2.0, present[0].OvertimeHours)
	assert.False(t, view.Rows[1].Present)
	assert.True(t, view.Rows[1].WasPresent)
}

func TestApplyMarksRejectsUnknownIDs(t *testing.T) {
	err := applyMarks(testView(), []mark{{EmployeeID: 99, BoatID: 2}}, nil)
	assert.ErrorIs(t, err, attendance.ErrUnknownEmployee)

	err = applyMarks(testView(), []mark{{EmployeeID: 3, BoatID: 7}}, nil)
	assert.ErrorIs(t, err, attendance.ErrUnknownBoat)
}

func TestApplyMarksOnLockedView(t *testing.T) {
	view := testView()
	view.Form.Load(1)

	err := applyMarks(view, []mark{{EmployeeID: 3, BoatID: 2}}, nil)
	assert.ErrorIs(t, err, attendance.ErrFormLocked)
}

// fakeServer is a minimal backend holding one day of attendance.
type fakeServer struct {
	mu      sync.Mutex
	records []models.AttendanceRecord
	posted  []models.AttendancePayload
}

func (s *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/boats/":
		_ = json.NewEncoder(w).Encode([]models.Boat{{ID: 1, Name: "-"}, {ID: 2, Name: "Poseidon"}})
	case r.Method == http.MethodGet && r.URL.Path == "/employees/":
		_ = json.NewEncoder(w).Encode([]models.Employee{{ID: 3, Name: "Nikos"}, {ID: 4, Name: "Maria"}})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/attendance/"):
		_ = json.NewEncoder(w).Encode(s.records)
	case r.Method == http.MethodPost && r.URL.Path == "/attendance/":
		var p models.AttendancePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.posted = append(s.posted, p)
		rec := models.AttendanceRecord{
			ID:            int64(len(s.posted)),
			Date:          p.Date,
			EmployeeID:    p.EmployeeID,
			BoatID:        p.BoatID,
			Present:       p.Present,
			OvertimeHours: p.OvertimeHours,
		}
		s.records = append(s.records, rec)
		_ = json.NewEncoder(w).Encode(rec)
	default:
		http.NotFound(w, r)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := rootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAttendanceSaveEndToEnd(t *testing.T) {
	backend := &fakeServer{}
	srv := httptest.NewServer(backend)
	defer srv.Close()

	out, errOut, err := runCLI(t, "--base-url", srv.URL, "--log-level", "error",
		"attendance", "save", "--date", "2024-05-01", "--present", "3:2:1.5")
	require.NoError(t, err, errOut)

	require.Len(t, backend.posted, 1)
	assert.Equal(t, models.AttendancePayload{
		Date: "2024-05-01", EmployeeID: 3, BoatID: 2, Present: true, OvertimeHours: 1.5,
	}, backend.posted[0])
	assert.Contains(t, out, "1 sent, 1 saved, 0 failed")
	assert.Contains(t, errOut, attendance.MsgSaved)
}

func TestAttendanceSaveLockedDay(t *testing.T) {
	backend := &fakeServer{records: []models.AttendanceRecord{
		{ID: 1, Date: "2024-05-01", EmployeeID: 4, BoatID: 2, Present: true},
	}}
	srv := httptest.NewServer(backend)
	defer srv.Close()

	_, _, err := runCLI(t, "--base-url", srv.URL, "--log-level", "error",
		"attendance", "save", "--date", "2024-05-01", "--present", "3:2")
	require.ErrorIs(t, err, attendance.ErrFormLocked)
	assert.Empty(t, backend.posted)

	_, errOut, err := runCLI(t, "--base-url", srv.URL, "--log-level", "error",
		"attendance", "save", "--date", "2024-05-01", "--present", "3:2", "--absent", "4", "--unlock")
	require.NoError(t, err, errOut)

	require.Len(t, backend.posted, 2)
	assert.True(t, backend.posted[0].Present)
	assert.Equal(t, int64(3), backend.posted[0].EmployeeID)
	assert.Equal(t, models.AttendancePayload{
		Date: "2024-05-01", EmployeeID: 4, BoatID: models.SentinelBoatID, Present: false,
	}, backend.posted[1])
}
