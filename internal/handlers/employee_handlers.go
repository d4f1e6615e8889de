package handlers

import (
	"errors"
	"net/http"

	"github.com/AlexNT-maker/auto-payroll-system/internal/services"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler holds the employee service.
type EmployeeHandler struct {
	employeeService services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(es services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: es}
}

func (h *EmployeeHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Ο εργαζόμενος δεν βρέθηκε", err.Error()))
	case errors.Is(err, services.ErrEmployeeValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrEmployeeInUse):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Employee has attendance records and cannot be deleted.", err.Error()))
	default:
		utils.RespondInternal(c, fallback)
	}
}

// CreateEmployee handles POST /employees/.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req services.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateEmployee: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateEmployee: Error from employeeService.CreateEmployee")
		h.respondServiceError(c, err, "Failed to create employee.")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// GetEmployees handles GET /employees/ and returns the full roster.
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetEmployees(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetEmployees: Error from employeeService.GetEmployees")
		utils.RespondInternal(c, "Failed to fetch employees.")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployeeByID handles GET /employees/:id.
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		utils.LogError(err, "GetEmployeeByID: Error from employeeService.GetEmployeeByID", map[string]interface{}{"employee_id": employeeID})
		h.respondServiceError(c, err, "Failed to fetch employee.")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee handles PUT /employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	var req services.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateEmployee: Failed to bind JSON", map[string]interface{}{"employee_id": employeeID})
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		utils.LogError(err, "UpdateEmployee: Error from employeeService.UpdateEmployee", map[string]interface{}{"employee_id": employeeID})
		h.respondServiceError(c, err, "Failed to update employee.")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employeeService.GetEmployeeByID(ctx, employeeID)
	if err == nil {
		err = h.employeeService.DeleteEmployee(ctx, employeeID)
	}
	if err != nil {
		utils.LogError(err, "DeleteEmployee: Error from employeeService.DeleteEmployee", map[string]interface{}{"employee_id": employeeID})
		h.respondServiceError(c, err, "Failed to delete employee.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Επιτυχής διαγραφή", "name": employee.Name})
}
