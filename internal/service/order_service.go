package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService order aggregate builder and lifecycle driver
type OrderService struct {
	orderRepo         repository.OrderRepository
	unitRepo          repository.HotpotUnitRepository
	typeRepo          repository.HotpotTypeRepository
	ingredientRepo    repository.IngredientRepository
	utensilRepo       repository.UtensilRepository
	customizationRepo repository.CustomizationRepository
	comboRepo         repository.ComboRepository
	discountRepo      repository.DiscountRepository
	paymentRepo       repository.PaymentRepository
	paymentService    *PaymentService
	notifier          *NotificationService
	depositPercent    int
}

// NewOrderService creates the order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	unitRepo repository.HotpotUnitRepository,
	typeRepo repository.HotpotTypeRepository,
	ingredientRepo repository.IngredientRepository,
	utensilRepo repository.UtensilRepository,
	customizationRepo repository.CustomizationRepository,
	comboRepo repository.ComboRepository,
	discountRepo repository.DiscountRepository,
	paymentRepo repository.PaymentRepository,
	paymentService *PaymentService,
	notifier *NotificationService,
	depositPercent int,
) *OrderService {
	if depositPercent <= 0 {
		depositPercent = constants.DefaultDepositPercent
	}
	return &OrderService{
		orderRepo:         orderRepo,
		unitRepo:          unitRepo,
		typeRepo:          typeRepo,
		ingredientRepo:    ingredientRepo,
		utensilRepo:       utensilRepo,
		customizationRepo: customizationRepo,
		comboRepo:         comboRepo,
		discountRepo:      discountRepo,
		paymentRepo:       paymentRepo,
		paymentService:    paymentService,
		notifier:          notifier,
		depositPercent:    depositPercent,
	}
}

// CreateOrderLine one requested line; exactly one item reference must be set
type CreateOrderLine struct {
	IngredientID    *uint
	UtensilID       *uint
	HotpotTypeID    *uint
	CustomizationID *uint
	ComboID         *uint

	Quantity int
	Volume   decimal.Decimal // ingredient lines only, in the ingredient's unit

	Rent               bool       // utensil lines: rent instead of buy
	ExpectedReturnDate *time.Time // required for hotpot and rented-utensil lines
}

func (l CreateOrderLine) kindCount() int {
	count := 0
	for _, ref := range []*uint{l.IngredientID, l.UtensilID, l.HotpotTypeID, l.CustomizationID, l.ComboID} {
		if ref != nil && *ref > 0 {
			count++
		}
	}
	return count
}

// CreateOrderInput order creation request
type CreateOrderInput struct {
	CustomerID  uint
	Address     string
	Notes       string
	DiscountID  *uint
	PaymentType string
	Lines       []CreateOrderLine
}

// CreateOrder validates the cart, reserves stock and units, prices every line
// and persists the aggregate in one transaction. The payment record is opened
// after commit; if that fails the order is compensated back to cancelled.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.CustomerID == 0 {
		return nil, ErrUserNotFound
	}
	if len(input.Lines) == 0 {
		return nil, ErrOrderItemsEmpty
	}
	if input.PaymentType != constants.PaymentTypeCash && input.PaymentType != constants.PaymentTypeOnline {
		return nil, fmt.Errorf("%w: %s", ErrPaymentTypeInvalid, input.PaymentType)
	}
	for _, line := range input.Lines {
		if line.kindCount() != 1 {
			return nil, ErrOrderItemKindInvalid
		}
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:    generateOrderNo(),
		CustomerID: input.CustomerID,
		Address:    strings.TrimSpace(input.Address),
		Notes:      strings.TrimSpace(input.Notes),
		Status:     constants.OrderStatusPending,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, nil, nil); err != nil {
			return err
		}

		total := decimal.Zero
		deposit := decimal.Zero
		var items []models.OrderItem
		var rentals []models.RentalDetail

		for _, line := range input.Lines {
			lineItems, lineRentals, lineTotal, lineDeposit, err := s.buildLine(tx, order, line, input.CustomerID, now)
			if err != nil {
				return err
			}
			items = append(items, lineItems...)
			rentals = append(rentals, lineRentals...)
			total = total.Add(lineTotal)
			deposit = deposit.Add(lineDeposit)
		}

		if input.DiscountID != nil && *input.DiscountID > 0 {
			pct, err := s.resolveDiscount(tx, *input.DiscountID, now)
			if err != nil {
				return err
			}
			total = total.Sub(total.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)))
			order.DiscountID = input.DiscountID
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		for i := range rentals {
			rentals[i].OrderID = order.ID
		}
		if len(rentals) > 0 {
			if err := tx.Create(&rentals).Error; err != nil {
				return err
			}
		}

		order.TotalPrice = models.NewMoneyFromDecimal(total)
		order.DepositAmount = models.NewMoneyFromDecimal(deposit)
		order.Items = items
		order.Rentals = rentals
		return s.orderRepo.WithTx(tx).Update(order)
	})
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentService.CreatePaymentForOrder(order.ID, order.TotalPrice, input.PaymentType)
	if err != nil {
		logger.Errorw("order_payment_create_failed", "order_id", order.ID, "error", err)
		s.compensateFailedOrder(order.ID)
		return nil, err
	}
	order.Payment = payment

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", order.CustomerID,
		"total", order.TotalPrice,
		"deposit", order.DepositAmount,
		"rental_units", len(order.Rentals),
	)
	return order, nil
}

// buildLine prices one request line and applies its stock mutation. Hotpot
// lines reserve one serialized unit per requested quantity, so each unit gets
// its own rental row.
func (s *OrderService) buildLine(tx *gorm.DB, order *models.Order, line CreateOrderLine, customerID uint, now time.Time) ([]models.OrderItem, []models.RentalDetail, decimal.Decimal, decimal.Decimal, error) {
	zero := decimal.Zero
	switch {
	case line.IngredientID != nil:
		item, total, err := s.buildIngredientLine(tx, line, now)
		if err != nil {
			return nil, nil, zero, zero, err
		}
		return []models.OrderItem{*item}, nil, total, zero, nil
	case line.UtensilID != nil:
		return s.buildUtensilLine(tx, line, now)
	case line.HotpotTypeID != nil:
		return s.buildHotpotLine(tx, order, line, now)
	case line.CustomizationID != nil:
		item, total, err := s.buildCustomizationLine(tx, line, customerID)
		if err != nil {
			return nil, nil, zero, zero, err
		}
		return []models.OrderItem{*item}, nil, total, zero, nil
	case line.ComboID != nil:
		item, total, err := s.buildComboLine(tx, line)
		if err != nil {
			return nil, nil, zero, zero, err
		}
		return []models.OrderItem{*item}, nil, total, zero, nil
	}
	return nil, nil, zero, zero, ErrOrderItemKindInvalid
}

func (s *OrderService) buildIngredientLine(tx *gorm.DB, line CreateOrderLine, now time.Time) (*models.OrderItem, decimal.Decimal, error) {
	if line.Volume.Sign() <= 0 {
		return nil, decimal.Zero, ErrOrderQuantityInvalid
	}
	repo := s.ingredientRepo.WithTx(tx)
	ing, err := repo.GetByID(*line.IngredientID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if ing == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: ingredient %d", ErrItemNotFound, *line.IngredientID)
	}
	if !ing.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: ingredient %d", ErrItemInactive, ing.ID)
	}
	price, err := repo.LatestPrice(ing.ID, now)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if price == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: ingredient %d has no price", ErrItemNotFound, ing.ID)
	}
	affected, err := repo.DecrementQuantity(ing.ID, line.Volume)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if affected == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: ingredient %d", ErrStockInsufficient, ing.ID)
	}
	total := price.Price.Mul(line.Volume)
	return &models.OrderItem{
		IngredientID: &ing.ID,
		Name:         ing.Name,
		Volume:       line.Volume,
		UnitPrice:    price.Price,
		TotalPrice:   models.NewMoneyFromDecimal(total),
	}, total, nil
}

func (s *OrderService) buildUtensilLine(tx *gorm.DB, line CreateOrderLine, now time.Time) ([]models.OrderItem, []models.RentalDetail, decimal.Decimal, decimal.Decimal, error) {
	zero := decimal.Zero
	if line.Quantity <= 0 {
		return nil, nil, zero, zero, ErrOrderQuantityInvalid
	}
	repo := s.utensilRepo.WithTx(tx)
	u, err := repo.GetByID(*line.UtensilID)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	if u == nil {
		return nil, nil, zero, zero, fmt.Errorf("%w: utensil %d", ErrItemNotFound, *line.UtensilID)
	}
	if !u.IsActive {
		return nil, nil, zero, zero, fmt.Errorf("%w: utensil %d", ErrItemInactive, u.ID)
	}
	affected, err := repo.DecrementQuantity(u.ID, line.Quantity)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	if affected == 0 {
		return nil, nil, zero, zero, fmt.Errorf("%w: utensil %d", ErrStockInsufficient, u.ID)
	}
	total := u.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

	if line.Rent {
		if line.ExpectedReturnDate == nil || !line.ExpectedReturnDate.After(now) {
			return nil, nil, zero, zero, ErrRentalDatesRequired
		}
		rental := models.RentalDetail{
			UtensilID:          &u.ID,
			Quantity:           line.Quantity,
			RentalPrice:        models.NewMoneyFromDecimal(total),
			StartDate:          now,
			ExpectedReturnDate: *line.ExpectedReturnDate,
		}
		return nil, []models.RentalDetail{rental}, total, zero, nil
	}

	item := models.OrderItem{
		UtensilID:  &u.ID,
		Name:       u.Name,
		Quantity:   line.Quantity,
		UnitPrice:  u.Price,
		TotalPrice: models.NewMoneyFromDecimal(total),
	}
	return []models.OrderItem{item}, nil, total, zero, nil
}

// buildHotpotLine reserves N distinct available units with a conditional
// update; fewer rows affected than requested means a concurrent order took
// one of the candidates, and the whole order rolls back.
func (s *OrderService) buildHotpotLine(tx *gorm.DB, order *models.Order, line CreateOrderLine, now time.Time) ([]models.OrderItem, []models.RentalDetail, decimal.Decimal, decimal.Decimal, error) {
	zero := decimal.Zero
	if line.Quantity <= 0 {
		return nil, nil, zero, zero, ErrOrderQuantityInvalid
	}
	if line.ExpectedReturnDate == nil || !line.ExpectedReturnDate.After(now) {
		return nil, nil, zero, zero, ErrRentalDatesRequired
	}
	typeRepo := s.typeRepo.WithTx(tx)
	ht, err := typeRepo.GetByID(*line.HotpotTypeID)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	if ht == nil {
		return nil, nil, zero, zero, fmt.Errorf("%w: hotpot type %d", ErrItemNotFound, *line.HotpotTypeID)
	}
	if !ht.IsActive {
		return nil, nil, zero, zero, fmt.Errorf("%w: hotpot type %d", ErrItemInactive, ht.ID)
	}

	unitRepo := s.unitRepo.WithTx(tx)
	ids, err := unitRepo.ListAvailableIDs(ht.ID, line.Quantity)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	if len(ids) < line.Quantity {
		return nil, nil, zero, zero, fmt.Errorf("%w: hotpot type %d has %d of %d", ErrUnitsInsufficient, ht.ID, len(ids), line.Quantity)
	}
	affected, err := unitRepo.Reserve(ids, order.ID, now)
	if err != nil {
		return nil, nil, zero, zero, err
	}
	if affected != int64(len(ids)) {
		return nil, nil, zero, zero, fmt.Errorf("%w: hotpot type %d lost %d units to a concurrent order", ErrUnitsInsufficient, ht.ID, len(ids)-int(affected))
	}

	depositFactor := decimal.NewFromInt(int64(s.depositPercent)).Div(decimal.NewFromInt(100))
	rentals := make([]models.RentalDetail, 0, len(ids))
	for _, id := range ids {
		unitID := id
		rentals = append(rentals, models.RentalDetail{
			HotpotUnitID:       &unitID,
			Quantity:           1,
			RentalPrice:        ht.Price,
			StartDate:          now,
			ExpectedReturnDate: *line.ExpectedReturnDate,
		})
	}
	total := ht.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	deposit := total.Mul(depositFactor)
	return nil, rentals, total, deposit, nil
}

func (s *OrderService) buildCustomizationLine(tx *gorm.DB, line CreateOrderLine, customerID uint) (*models.OrderItem, decimal.Decimal, error) {
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}
	c, err := s.customizationRepo.WithTx(tx).GetByID(*line.CustomizationID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if c == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: customization %d", ErrItemNotFound, *line.CustomizationID)
	}
	if c.CustomerID != customerID {
		return nil, decimal.Zero, ErrCustomizationNotOwned
	}
	total := c.TotalPrice.Mul(decimal.NewFromInt(int64(qty)))
	return &models.OrderItem{
		CustomizationID: &c.ID,
		Name:            c.Name,
		Quantity:        qty,
		UnitPrice:       c.TotalPrice,
		TotalPrice:      models.NewMoneyFromDecimal(total),
	}, total, nil
}

func (s *OrderService) buildComboLine(tx *gorm.DB, line CreateOrderLine) (*models.OrderItem, decimal.Decimal, error) {
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}
	combo, err := s.comboRepo.WithTx(tx).GetByID(*line.ComboID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if combo == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: combo %d", ErrItemNotFound, *line.ComboID)
	}
	if !combo.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: combo %d", ErrItemInactive, combo.ID)
	}
	total := combo.BasePrice.Mul(decimal.NewFromInt(int64(qty)))
	return &models.OrderItem{
		ComboID:    &combo.ID,
		Name:       combo.Name,
		Quantity:   qty,
		UnitPrice:  combo.BasePrice,
		TotalPrice: models.NewMoneyFromDecimal(total),
	}, total, nil
}

func (s *OrderService) resolveDiscount(tx *gorm.DB, discountID uint, now time.Time) (int, error) {
	d, err := s.discountRepo.WithTx(tx).GetByID(discountID)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, fmt.Errorf("%w: %d", ErrDiscountNotFound, discountID)
	}
	if now.Before(d.StartDate) || now.After(d.EndDate) {
		return 0, fmt.Errorf("%w: %d", ErrDiscountExpired, discountID)
	}
	count, err := s.orderRepo.WithTx(tx).CountByDiscount(discountID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("%w: %d", ErrDiscountInUse, discountID)
	}
	return d.Percentage, nil
}

// compensateFailedOrder unwinds stock and reservations when the post-commit
// payment step fails, then marks the order cancelled.
func (s *OrderService) compensateFailedOrder(orderID uint) {
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.WithTx(tx).GetByID(orderID)
		if err != nil || order == nil {
			return err
		}
		if err := s.releaseOrderResources(tx, order, time.Now()); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(orderID, constants.OrderStatusCancelled, nil)
	})
	if err != nil {
		logger.Errorw("order_compensation_failed", "order_id", orderID, "error", err)
		return
	}
	logger.Warnw("order_compensated_after_payment_failure", "order_id", orderID)
}

// GetOrder fetches a fully loaded order
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return order, nil
}

// GetCustomerOrder fetches a customer's own order
func (s *OrderService) GetCustomerOrder(id, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndCustomer(id, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return order, nil
}

// ListOrders lists orders matching the filter
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateOrderInput editable fields while an order is pending
type UpdateOrderInput struct {
	Address *string
	Notes   *string
}

// UpdateOrder edits address or notes; only pending orders may change
func (s *OrderService) UpdateOrder(id uint, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != constants.OrderStatusPending {
		return nil, fmt.Errorf("%w: status %s", ErrOrderNotPending, order.Status)
	}
	if input.Address != nil {
		order.Address = strings.TrimSpace(*input.Address)
	}
	if input.Notes != nil {
		order.Notes = strings.TrimSpace(*input.Notes)
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes a pending order, releasing everything it reserved
func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}
	if order.Status != constants.OrderStatusPending {
		return fmt.Errorf("%w: status %s", ErrOrderNotPending, order.Status)
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.releaseOrderResources(tx, order, time.Now()); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Delete(order.ID)
	})
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("HP%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(n.String())
	}
	return b.String()
}
