package handlers

import (
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/http/response"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type orderLineRequest struct {
	IngredientID    *uint `json:"ingredient_id"`
	UtensilID       *uint `json:"utensil_id"`
	HotpotTypeID    *uint `json:"hotpot_type_id"`
	CustomizationID *uint `json:"customization_id"`
	ComboID         *uint `json:"combo_id"`

	Quantity           int             `json:"quantity"`
	Volume             decimal.Decimal `json:"volume"`
	Rent               bool            `json:"rent"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date"`
}

type createOrderRequest struct {
	Address     string             `json:"address" binding:"required"`
	Notes       string             `json:"notes"`
	DiscountID  *uint              `json:"discount_id"`
	PaymentType string             `json:"payment_type" binding:"required"`
	Lines       []orderLineRequest `json:"lines" binding:"required"`
}

// CreateOrder creates a mixed sale/rental order for the calling customer
func (h *Handler) CreateOrder(c *gin.Context) {
	customerID, ok := getUserID(c)
	if !ok {
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	lines := make([]service.CreateOrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.CreateOrderLine{
			IngredientID:       l.IngredientID,
			UtensilID:          l.UtensilID,
			HotpotTypeID:       l.HotpotTypeID,
			CustomizationID:    l.CustomizationID,
			ComboID:            l.ComboID,
			Quantity:           l.Quantity,
			Volume:             l.Volume,
			Rent:               l.Rent,
			ExpectedReturnDate: l.ExpectedReturnDate,
		})
	}
	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		CustomerID:  customerID,
		Address:     req.Address,
		Notes:       req.Notes,
		DiscountID:  req.DiscountID,
		PaymentType: req.PaymentType,
		Lines:       lines,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// GetOrder fetches one order; customers only see their own
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	role := getUserRole(c)
	if role == constants.RoleStaff || role == constants.RoleManager {
		order, err := h.OrderService.GetOrder(id)
		if err != nil {
			respondWithMappedError(c, err, orderErrorRules)
			return
		}
		response.Success(c, order)
		return
	}
	order, err := h.OrderService.GetCustomerOrder(id, userID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// ListOrders lists orders; customers are pinned to their own
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
	}
	if from, err := time.Parse(time.RFC3339, c.Query("created_from")); err == nil {
		filter.CreatedFrom = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("created_to")); err == nil {
		filter.CreatedTo = &to
	}
	role := getUserRole(c)
	if role != constants.RoleStaff && role != constants.RoleManager {
		filter.CustomerID = userID
	}
	orders, total, err := h.OrderService.ListOrders(filter)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

type updateOrderRequest struct {
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// UpdateOrder edits a pending order
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	role := getUserRole(c)
	if role != constants.RoleStaff && role != constants.RoleManager {
		if _, err := h.OrderService.GetCustomerOrder(id, userID); err != nil {
			respondWithMappedError(c, err, orderErrorRules)
			return
		}
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.UpdateOrder(id, service.UpdateOrderInput{
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// DeleteOrder removes a pending order
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	role := getUserRole(c)
	if role != constants.RoleStaff && role != constants.RoleManager {
		if _, err := h.OrderService.GetCustomerOrder(id, userID); err != nil {
			respondWithMappedError(c, err, orderErrorRules)
			return
		}
	}
	if err := h.OrderService.DeleteOrder(id); err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, nil)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus drives the order through its lifecycle (staff/manager)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// CancelOrder cancels a pending or processing order; customers may cancel
// their own, staff any.
func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	role := getUserRole(c)
	if role != constants.RoleStaff && role != constants.RoleManager {
		if _, err := h.OrderService.GetCustomerOrder(id, userID); err != nil {
			respondWithMappedError(c, err, orderErrorRules)
			return
		}
	}
	order, err := h.OrderService.CancelOrder(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// GetOrderPayment fetches the payment of an order
func (h *Handler) GetOrderPayment(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	payment, err := h.PaymentService.GetPaymentByOrder(id)
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules)
		return
	}
	response.Success(c, payment)
}

// MarkPaymentPaid settles a pending payment (staff/manager)
func (h *Handler) MarkPaymentPaid(c *gin.Context) {
	if !requireRole(c, constants.RoleStaff, constants.RoleManager) {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.PaymentService.MarkPaid(id, time.Now()); err != nil {
		respondWithMappedError(c, err, paymentErrorRules)
		return
	}
	response.Success(c, nil)
}
