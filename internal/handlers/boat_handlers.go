package handlers

import (
	"errors"
	"net/http"

	"github.com/AlexNT-maker/auto-payroll-system/internal/services"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BoatHandler holds the boat service.
type BoatHandler struct {
	boatService services.BoatService
}

// NewBoatHandler creates a new BoatHandler.
func NewBoatHandler(bs services.BoatService) *BoatHandler {
	return &BoatHandler{boatService: bs}
}

func (h *BoatHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrBoatNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Το σκάφος δεν βρέθηκε", err.Error()))
	case errors.Is(err, services.ErrBoatValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrBoatNameExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Boat name already exists.", err.Error()))
	case errors.Is(err, services.ErrBoatInUse):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Boat has attendance records and cannot be deleted.", err.Error()))
	case errors.Is(err, services.ErrBoatReserved):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "The placeholder boat cannot be renamed or deleted.", err.Error()))
	default:
		utils.RespondInternal(c, fallback)
	}
}

// CreateBoat handles POST /boats/.
func (h *BoatHandler) CreateBoat(c *gin.Context) {
	var req services.BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBoat: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	boat, err := h.boatService.CreateBoat(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateBoat: Error from boatService.CreateBoat")
		h.respondServiceError(c, err, "Failed to create boat.")
		return
	}
	c.JSON(http.StatusCreated, boat)
}

// GetBoats handles GET /boats/.
func (h *BoatHandler) GetBoats(c *gin.Context) {
	boats, err := h.boatService.GetBoats(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetBoats: Error from boatService.GetBoats")
		utils.RespondInternal(c, "Failed to fetch boats.")
		return
	}
	c.JSON(http.StatusOK, boats)
}

// GetBoatByID handles GET /boats/:id.
func (h *BoatHandler) GetBoatByID(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id", "boat")
	if !ok {
		return
	}
	boat, err := h.boatService.GetBoatByID(c.Request.Context(), boatID)
	if err != nil {
		utils.LogError(err, "GetBoatByID: Error from boatService.GetBoatByID", map[string]interface{}{"boat_id": boatID})
		h.respondServiceError(c, err, "Failed to fetch boat.")
		return
	}
	c.JSON(http.StatusOK, boat)
}

// UpdateBoat handles PUT /boats/:id.
func (h *BoatHandler) UpdateBoat(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id", "boat")
	if !ok {
		return
	}

	var req services.BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBoat: Failed to bind JSON", map[string]interface{}{"boat_id": boatID})
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	boat, err := h.boatService.UpdateBoat(c.Request.Context(), boatID, req)
	if err != nil {
		utils.LogError(err, "UpdateBoat: Error from boatService.UpdateBoat", map[string]interface{}{"boat_id": boatID})
		h.respondServiceError(c, err, "Failed to update boat.")
		return
	}
	c.JSON(http.StatusOK, boat)
}

// DeleteBoat handles DELETE /boats/:id.
func (h *BoatHandler) DeleteBoat(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id", "boat")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	boat, err := h.boatService.GetBoatByID(ctx, boatID)
	if err == nil {
		err = h.boatService.DeleteBoat(ctx, boatID)
	}
	if err != nil {
		utils.LogError(err, "DeleteBoat: Error from boatService.DeleteBoat", map[string]interface{}{"boat_id": boatID})
		h.respondServiceError(c, err, "Failed to delete boat.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Επιτυχής διαγραφή", "name": boat.Name})
}
