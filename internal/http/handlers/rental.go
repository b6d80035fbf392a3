package handlers

import (
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetRental fetches a single rental detail
func (h *Handler) GetRental(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	rental, err := h.RentalService.GetRental(id)
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.Success(c, rental)
}

// ListRentals lists rental details, optionally only overdue ones
func (h *Handler) ListRentals(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	page, pageSize := parsePagination(c)
	now := time.Now()
	filter := repository.RentalListFilter{
		Page:        page,
		PageSize:    pageSize,
		OnlyOverdue: c.Query("overdue") == "true",
		AsOf:        &now,
	}
	if orderID, ok := parseUintQuery(c, "order_id"); ok {
		filter.OrderID = orderID
	}
	rentals, total, err := h.RentalService.ListRentals(filter)
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.SuccessWithPage(c, rentals, response.NewPagination(page, pageSize, total))
}

// GetRentalLateFee quotes the late fee for a hypothetical return date
func (h *Handler) GetRentalLateFee(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	at := time.Now()
	if raw := c.Query("return_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid return_date, expected RFC3339")
			return
		}
		at = parsed
	}
	fee, err := h.RentalService.CalculateLateFee(id, at)
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.Success(c, gin.H{"rental_detail_id": id, "return_date": at, "late_fee": fee})
}

type extendRentalRequest struct {
	NewExpectedReturnDate time.Time `json:"new_expected_return_date" binding:"required"`
}

// ExtendRental prolongs a rental and charges the pro-rated extension fee
func (h *Handler) ExtendRental(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req extendRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rental, err := h.RentalService.ExtendRentalPeriod(id, req.NewExpectedReturnDate)
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.Success(c, rental)
}

type updateRentalRequest struct {
	ExpectedReturnDate *time.Time `json:"expected_return_date"`
	Notes              *string    `json:"notes"`
}

// UpdateRental edits the expected return date or notes of an open rental
func (h *Handler) UpdateRental(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rental, err := h.RentalService.UpdateRentalDetail(id, service.UpdateRentalInput{
		ExpectedReturnDate: req.ExpectedReturnDate,
		Notes:              req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.Success(c, rental)
}

type recordReturnRequest struct {
	ActualReturnDate *time.Time       `json:"actual_return_date"`
	DamageFee        *decimal.Decimal `json:"damage_fee"`
}

// RecordRentalReturn stamps the actual return and computes late/damage fees
func (h *Handler) RecordRentalReturn(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req recordReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	at := time.Now()
	if req.ActualReturnDate != nil {
		at = *req.ActualReturnDate
	}
	var damageFee *models.Money
	if req.DamageFee != nil {
		fee := models.NewMoneyFromDecimal(*req.DamageFee)
		damageFee = &fee
	}
	rental, err := h.RentalService.RecordReturn(id, at, damageFee)
	if err != nil {
		respondWithMappedError(c, err, rentalErrorRules)
		return
	}
	response.Success(c, rental)
}
