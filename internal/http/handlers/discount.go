package handlers

import (
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type discountRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Percentage  int       `json:"percentage"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

func (r *discountRequest) toInput() service.CreateDiscountInput {
	return service.CreateDiscountInput{
		Title:       r.Title,
		Description: r.Description,
		Percentage:  r.Percentage,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// CreateDiscount creates a discount window (manager)
func (h *Handler) CreateDiscount(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	discount, err := h.DiscountService.CreateDiscount(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, discountErrorRules)
		return
	}
	response.Success(c, discount)
}

// GetDiscount fetches one discount
func (h *Handler) GetDiscount(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	discount, err := h.DiscountService.GetDiscount(id)
	if err != nil {
		respondWithMappedError(c, err, discountErrorRules)
		return
	}
	response.Success(c, discount)
}

// ListDiscounts lists discounts, optionally only currently active ones
func (h *Handler) ListDiscounts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := repository.DiscountListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if c.Query("active") == "true" {
		now := time.Now()
		filter.OnlyActive = true
		filter.At = &now
	}
	discounts, total, err := h.DiscountService.ListDiscounts(filter)
	if err != nil {
		respondWithMappedError(c, err, discountErrorRules)
		return
	}
	response.SuccessWithPage(c, discounts, response.NewPagination(page, pageSize, total))
}

// UpdateDiscount edits an unused discount (manager)
func (h *Handler) UpdateDiscount(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	discount, err := h.DiscountService.UpdateDiscount(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, discountErrorRules)
		return
	}
	response.Success(c, discount)
}

// DeleteDiscount removes an unused discount (manager)
func (h *Handler) DeleteDiscount(c *gin.Context) {
	if !requireRole(c, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.DiscountService.DeleteDiscount(id); err != nil {
		respondWithMappedError(c, err, discountErrorRules)
		return
	}
	response.Success(c, nil)
}
