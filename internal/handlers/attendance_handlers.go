package handlers

import (
	"errors"
	"net/http"

	"github.com/AlexNT-maker/auto-payroll-system/internal/services"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler holds the attendance service.
type AttendanceHandler struct {
	attendanceService services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

func (h *AttendanceHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrAttendanceDateFormat),
		errors.Is(err, services.ErrAttendanceValidation),
		errors.Is(err, services.ErrEmptyBatch):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrAttendanceReference):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Unknown employee or boat.", err.Error()))
	default:
		utils.RespondInternal(c, fallback)
	}
}

// CreateAttendance handles POST /attendance/.
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var req services.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAttendance: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	record, err := h.attendanceService.CreateAttendance(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateAttendance: Error from attendanceService.CreateAttendance",
			map[string]interface{}{"employee_id": req.EmployeeID, "date": req.Date})
		h.respondServiceError(c, err, "Failed to save attendance.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateAttendanceBatch handles POST /attendance/batch: all records or none.
func (h *AttendanceHandler) CreateAttendanceBatch(c *gin.Context) {
	var req services.BatchAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAttendanceBatch: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	records, err := h.attendanceService.CreateAttendanceBatch(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateAttendanceBatch: Error from attendanceService.CreateAttendanceBatch",
			map[string]interface{}{"records": len(req.Records)})
		h.respondServiceError(c, err, "Failed to save attendance batch.")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetAttendanceByDate handles GET /attendance/:date.
func (h *AttendanceHandler) GetAttendanceByDate(c *gin.Context) {
	date := c.Param("date")
	records, err := h.attendanceService.GetAttendanceByDate(c.Request.Context(), date)
	if err != nil {
		utils.LogError(err, "GetAttendanceByDate: Error from attendanceService.GetAttendanceByDate", map[string]interface{}{"date": date})
		h.respondServiceError(c, err, "Failed to fetch attendance.")
		return
	}
	c.JSON(http.StatusOK, records)
}
