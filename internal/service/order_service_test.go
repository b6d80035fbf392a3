package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"github.com/shopspring/decimal"
)

func TestCreateOrderReservesUnitsAndDeposit(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "charcoal", 150000, 3)
	ing := seedIngredient(t, env.db, "beef", "50.000", 20000)
	returnDate := time.Now().Add(72 * time.Hour)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{HotpotTypeID: &ht.ID, Quantity: 2, ExpectedReturnDate: &returnDate},
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("2.5")},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 2 x 150000 rental + 2.5 x 20000 ingredient
	if !moneyEquals(order.TotalPrice, 350000) {
		t.Fatalf("total want 350000, got %s", order.TotalPrice)
	}
	// 70% of the 300000 rental portion
	if !moneyEquals(order.DepositAmount, 210000) {
		t.Fatalf("deposit want 210000, got %s", order.DepositAmount)
	}
	if len(order.Rentals) != 2 {
		t.Fatalf("rental rows want 2, got %d", len(order.Rentals))
	}
	for _, rd := range order.Rentals {
		if rd.HotpotUnitID == nil {
			t.Fatalf("rental row missing unit reference")
		}
	}

	counts := unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusInUse] != 2 || counts[constants.UnitStatusAvailable] != 1 {
		t.Fatalf("unit statuses want 2 in_use / 1 available, got %v", counts)
	}

	var stock models.Ingredient
	if err := env.db.First(&stock, ing.ID).Error; err != nil {
		t.Fatalf("load ingredient failed: %v", err)
	}
	if !stock.Quantity.Equal(decimal.RequireFromString("47.5")) {
		t.Fatalf("ingredient stock want 47.5, got %s", stock.Quantity)
	}

	if order.Payment == nil || order.Payment.Status != constants.PaymentStatusPending {
		t.Fatalf("expected a pending payment record, got %+v", order.Payment)
	}
	if !moneyEquals(order.Payment.Amount, 350000) {
		t.Fatalf("payment amount want 350000, got %s", order.Payment.Amount)
	}
}

func TestCreateOrderInsufficientUnitsRollsBack(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "mini", 60000, 1)
	ing := seedIngredient(t, env.db, "tofu", "10.000", 8000)
	returnDate := time.Now().Add(48 * time.Hour)

	_, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("3")},
			{HotpotTypeID: &ht.ID, Quantity: 2, ExpectedReturnDate: &returnDate},
		},
	})
	if !errors.Is(err, ErrUnitsInsufficient) {
		t.Fatalf("want ErrUnitsInsufficient, got %v", err)
	}

	// the whole transaction rolled back, including the ingredient decrement
	var stock models.Ingredient
	if err := env.db.First(&stock, ing.ID).Error; err != nil {
		t.Fatalf("load ingredient failed: %v", err)
	}
	if !stock.Quantity.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("ingredient stock want 10, got %s", stock.Quantity)
	}
	counts := unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusAvailable] != 1 {
		t.Fatalf("unit should stay available, got %v", counts)
	}
	var orderCount int64
	env.db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("no order row should survive, got %d", orderCount)
	}
}

func TestCreateOrderRejectsAmbiguousLine(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "electric", 100000, 2)
	ing := seedIngredient(t, env.db, "broth", "20.000", 15000)

	_, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{HotpotTypeID: &ht.ID, IngredientID: &ing.ID, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrOrderItemKindInvalid) {
		t.Fatalf("want ErrOrderItemKindInvalid, got %v", err)
	}

	_, err = env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines:       nil,
	})
	if !errors.Is(err, ErrOrderItemsEmpty) {
		t.Fatalf("want ErrOrderItemsEmpty, got %v", err)
	}
}

func TestCreateOrderHotpotLineNeedsReturnDate(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "clay", 90000, 2)

	_, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{HotpotTypeID: &ht.ID, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrRentalDatesRequired) {
		t.Fatalf("want ErrRentalDatesRequired, got %v", err)
	}
}

func TestCancelOrderRestoresResources(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "copper", 120000, 3)
	ing := seedIngredient(t, env.db, "mushroom", "30.000", 12000)
	utensil := seedUtensil(t, env.db, "ladle", 40, 15000)
	returnDate := time.Now().Add(72 * time.Hour)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{HotpotTypeID: &ht.ID, Quantity: 3, ExpectedReturnDate: &returnDate},
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("4")},
			{UtensilID: &utensil.ID, Quantity: 5, Rent: true, ExpectedReturnDate: &returnDate},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cancelled, err := env.orders.CancelOrder(order.ID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled, got %s", cancelled.Status)
	}

	counts := unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusAvailable] != 3 {
		t.Fatalf("all 3 units should return to available, got %v", counts)
	}
	var stock models.Ingredient
	if err := env.db.First(&stock, ing.ID).Error; err != nil {
		t.Fatalf("load ingredient failed: %v", err)
	}
	if !stock.Quantity.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("ingredient stock want 30 back, got %s", stock.Quantity)
	}
	var tool models.Utensil
	if err := env.db.First(&tool, utensil.ID).Error; err != nil {
		t.Fatalf("load utensil failed: %v", err)
	}
	if tool.Quantity != 40 {
		t.Fatalf("utensil stock want 40 back, got %d", tool.Quantity)
	}
	var payment models.Payment
	if err := env.db.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		t.Fatalf("load payment failed: %v", err)
	}
	if payment.Status != constants.PaymentStatusCancelled {
		t.Fatalf("payment want cancelled, got %s", payment.Status)
	}
}

func TestUpdateOrderPendingOnly(t *testing.T) {
	env := setupServiceTest(t)
	ing := seedIngredient(t, env.db, "noodles", "20.000", 5000)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "old address",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("1")},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	newAddr := "new address"
	updated, err := env.orders.UpdateOrder(order.ID, UpdateOrderInput{Address: &newAddr})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if updated.Address != "new address" {
		t.Fatalf("address want updated, got %q", updated.Address)
	}

	if _, err := env.orders.UpdateOrderStatus(order.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("move to processing failed: %v", err)
	}
	if _, err := env.orders.UpdateOrder(order.ID, UpdateOrderInput{Address: &newAddr}); !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("want ErrOrderNotPending, got %v", err)
	}
	if err := env.orders.DeleteOrder(order.ID); !errors.Is(err, ErrOrderNotPending) {
		t.Fatalf("delete want ErrOrderNotPending, got %v", err)
	}
}

func TestCreateOrderWithDiscount(t *testing.T) {
	env := setupServiceTest(t)
	ing := seedIngredient(t, env.db, "lamb", "20.000", 50000)
	now := time.Now()
	discount := &models.Discount{
		Title:      "test promo",
		Percentage: 10,
		StartDate:  now.Add(-time.Hour),
		EndDate:    now.Add(time.Hour),
	}
	if err := env.db.Create(discount).Error; err != nil {
		t.Fatalf("seed discount failed: %v", err)
	}

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		DiscountID:  &discount.ID,
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("2")},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	// 2 x 50000 minus 10%
	if !moneyEquals(order.TotalPrice, 90000) {
		t.Fatalf("discounted total want 90000, got %s", order.TotalPrice)
	}

	// a second order cannot reuse the attached discount
	_, err = env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  2,
		Address:     "34 Broth Avenue",
		DiscountID:  &discount.ID,
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimal.RequireFromString("1")},
		},
	})
	if !errors.Is(err, ErrDiscountInUse) {
		t.Fatalf("want ErrDiscountInUse, got %v", err)
	}
}
