package handlers

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/gin-gonic/gin"
)

type createReplacementRequest struct {
	HotpotUnitID uint   `json:"hotpot_unit_id" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

// CreateReplacementRequest files (or reactivates) a replacement request
func (h *Handler) CreateReplacementRequest(c *gin.Context) {
	customerID, ok := getUserID(c)
	if !ok {
		return
	}
	var req createReplacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rr, err := h.ReplacementService.CreateRequest(customerID, req.HotpotUnitID, req.Reason)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

// GetReplacementRequest fetches one replacement request
func (h *Handler) GetReplacementRequest(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	rr, err := h.ReplacementService.GetRequest(id)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

// ListReplacementRequests lists requests; customers only see their own
func (h *Handler) ListReplacementRequests(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	filter := repository.ReplacementListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	if unitID, ok := parseUintQuery(c, "hotpot_unit_id"); ok {
		filter.HotpotUnitID = unitID
	}
	role := getUserRole(c)
	switch role {
	case constants.RoleManager:
		if customerID, ok := parseUintQuery(c, "customer_id"); ok {
			filter.CustomerID = customerID
		}
	case constants.RoleStaff:
		filter.AssignedStaffID = userID
	default:
		filter.CustomerID = userID
	}
	requests, total, err := h.ReplacementService.ListRequests(filter)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.SuccessWithPage(c, requests, response.NewPagination(page, pageSize, total))
}

type reviewReplacementRequest struct {
	Approve     bool   `json:"approve"`
	ReviewNotes string `json:"review_notes"`
}

// ReviewReplacementRequest approves or rejects a pending request (manager)
func (h *Handler) ReviewReplacementRequest(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req reviewReplacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rr, err := h.ReplacementService.ReviewRequest(id, req.Approve, req.ReviewNotes)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

type assignStaffRequest struct {
	StaffID uint `json:"staff_id" binding:"required"`
}

// AssignReplacementStaff assigns a staff member to an approved request (manager)
func (h *Handler) AssignReplacementStaff(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req assignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rr, err := h.ReplacementService.AssignStaff(id, req.StaffID)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

type verifyEquipmentRequest struct {
	IsFaulty bool   `json:"is_faulty"`
	Notes    string `json:"notes"`
}

// VerifyReplacementEquipment records the assigned staff's fault verdict
func (h *Handler) VerifyReplacementEquipment(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	staffID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req verifyEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rr, err := h.ReplacementService.VerifyEquipmentFaulty(id, staffID, req.IsFaulty, req.Notes)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

type completeReplacementRequest struct {
	CompletionNotes string `json:"completion_notes"`
}

// CompleteReplacementRequest closes an in-progress request and logs maintenance
func (h *Handler) CompleteReplacementRequest(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	staffID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req completeReplacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rr, err := h.ReplacementService.CompleteRequest(id, staffID, req.CompletionNotes)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}

// CancelReplacementRequest lets the requester withdraw a pending request
func (h *Handler) CancelReplacementRequest(c *gin.Context) {
	customerID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	rr, err := h.ReplacementService.CancelRequest(id, customerID)
	if err != nil {
		respondWithMappedError(c, err, replacementErrorRules)
		return
	}
	response.Success(c, rr)
}
