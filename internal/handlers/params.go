package handlers

import (
	"net/http"
	"strconv"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive int64 path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		details := "must be a positive integer"
		if err != nil {
			details = err.Error()
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+label+" ID format.", details))
		return 0, false
	}
	return id, true
}

// parseOptionalID reads an optional positive int64 query parameter.
func parseOptionalID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" format.", raw))
		return nil, false
	}
	return &id, true
}

// parseDateRange reads the start/end query pair shared by every report.
func parseDateRange(c *gin.Context) models.DateRange {
	return models.DateRange{Start: c.Query("start"), End: c.Query("end")}
}
