package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/services"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler serves the date-range aggregates and their exports.
type ReportHandler struct {
	reportService services.ReportService
	exportService services.ExportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService, es services.ExportService) *ReportHandler {
	return &ReportHandler{reportService: rs, exportService: es}
}

func (h *ReportHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrBoatNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Το σκάφος δεν βρέθηκε", err.Error()))
	default:
		utils.RespondInternal(c, fallback)
	}
}

// GetExpenses handles GET /expenses/?start&end[&boat_id][&emp_id].
func (h *ReportHandler) GetExpenses(c *gin.Context) {
	dateRange := parseDateRange(c)
	boatID, ok := parseOptionalID(c, "boat_id")
	if !ok {
		return
	}
	employeeID, ok := parseOptionalID(c, "emp_id")
	if !ok {
		return
	}

	resp, err := h.reportService.GetExpenses(c.Request.Context(), dateRange, services.ExpenseFilter{BoatID: boatID, EmployeeID: employeeID})
	if err != nil {
		utils.LogError(err, "GetExpenses: Error from reportService.GetExpenses", map[string]interface{}{"start": dateRange.Start, "end": dateRange.End})
		h.respondServiceError(c, err, "Failed to compute expenses.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPayroll handles GET /payroll/?start&end.
func (h *ReportHandler) GetPayroll(c *gin.Context) {
	report, ok := h.payroll(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetBoatAnalysis handles GET /boats/:id/analysis?start&end.
func (h *ReportHandler) GetBoatAnalysis(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id", "boat")
	if !ok {
		return
	}
	dateRange := parseDateRange(c)

	resp, err := h.reportService.GetBoatAnalysis(c.Request.Context(), boatID, dateRange)
	if err != nil {
		utils.LogError(err, "GetBoatAnalysis: Error from reportService.GetBoatAnalysis", map[string]interface{}{"boat_id": boatID})
		h.respondServiceError(c, err, "Failed to compute boat analysis.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPayrollPDF handles GET /payroll/pdf?start&end.
func (h *ReportHandler) GetPayrollPDF(c *gin.Context) {
	report, ok := h.payroll(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WritePayrollPDF(&buf, report); err != nil {
		utils.LogError(err, "GetPayrollPDF: Error rendering payroll PDF")
		utils.RespondInternal(c, "Failed to render payroll PDF.")
		return
	}
	filename := fmt.Sprintf("payroll_%s_%s.pdf", report.StartDate, report.EndDate)
	c.Header("Content-Disposition", "inline; filename="+filename)
	c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
}

// GetPayrollXLSX handles GET /payroll/xlsx?start&end.
func (h *ReportHandler) GetPayrollXLSX(c *gin.Context) {
	report, ok := h.payroll(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WritePayrollXLSX(&buf, report); err != nil {
		utils.LogError(err, "GetPayrollXLSX: Error writing payroll spreadsheet")
		utils.RespondInternal(c, "Failed to write payroll spreadsheet.")
		return
	}
	filename := fmt.Sprintf("payroll_%s_%s.xlsx", report.StartDate, report.EndDate)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func (h *ReportHandler) payroll(c *gin.Context) (*models.PayrollReport, bool) {
	dateRange := parseDateRange(c)
	report, err := h.reportService.GetPayroll(c.Request.Context(), dateRange)
	if err != nil {
		utils.LogError(err, "GetPayroll: Error from reportService.GetPayroll", map[string]interface{}{"start": dateRange.Start, "end": dateRange.End})
		h.respondServiceError(c, err, "Failed to compute payroll.")
		return nil, false
	}
	return report, true
}
