package handlers

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetTypeAvailability returns the live available-unit count for a hotpot type
func (h *Handler) GetTypeAvailability(c *gin.Context) {
	typeID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	count, err := h.InventoryService.CountAvailable(c.Request.Context(), typeID)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.Success(c, gin.H{"hotpot_type_id": typeID, "available": count})
}

// ListUnits lists hotpot units with optional type/status filters
func (h *Handler) ListUnits(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	page, pageSize := parsePagination(c)
	filter := repository.UnitListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	if typeID, ok := parseUintQuery(c, "hotpot_type_id"); ok {
		filter.HotpotTypeID = typeID
	}
	units, total, err := h.InventoryService.ListUnits(filter)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.SuccessWithPage(c, units, response.NewPagination(page, pageSize, total))
}

// GetUnit fetches a single hotpot unit
func (h *Handler) GetUnit(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	unit, err := h.InventoryService.GetUnit(id)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.Success(c, unit)
}

type onboardUnitsRequest struct {
	HotpotTypeID uint     `json:"hotpot_type_id" binding:"required"`
	SerialNos    []string `json:"serial_nos" binding:"required"`
}

// OnboardUnits registers new physical units under a hotpot type (manager)
func (h *Handler) OnboardUnits(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	var req onboardUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if len(req.SerialNos) == 0 {
		response.BadRequest(c, "serial_nos must not be empty")
		return
	}
	units, err := h.InventoryService.OnboardUnits(req.HotpotTypeID, req.SerialNos)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.Success(c, units)
}

type sendToMaintenanceRequest struct {
	Description string `json:"description" binding:"required"`
}

// SendUnitToMaintenance pulls an available unit out of circulation
func (h *Handler) SendUnitToMaintenance(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req sendToMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	log, err := h.InventoryService.SendToMaintenance(id, req.Description)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.Success(c, log)
}

// CompleteMaintenance closes a maintenance log and returns the unit to service
func (h *Handler) CompleteMaintenance(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.InventoryService.CompleteMaintenance(id); err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.Success(c, nil)
}

// ListMaintenanceLogs lists the maintenance history of a unit
func (h *Handler) ListMaintenanceLogs(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	logs, total, err := h.InventoryService.ListMaintenanceLogs(id, page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, inventoryErrorRules)
		return
	}
	response.SuccessWithPage(c, logs, response.NewPagination(page, pageSize, total))
}
