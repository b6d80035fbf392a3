package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusProcessing, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusProcessing, constants.OrderStatusShipping, true},
		{constants.OrderStatusProcessing, constants.OrderStatusCancelled, true},
		{constants.OrderStatusShipping, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipping, constants.OrderStatusCancelled, false},
		{constants.OrderStatusDelivered, constants.OrderStatusReturning, true},
		{constants.OrderStatusReturning, constants.OrderStatusCompleted, true},
		{constants.OrderStatusCompleted, constants.OrderStatusPending, false},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) want %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTransitionEffectsCoverAllowedPairs(t *testing.T) {
	// every effect entry must be an allowed transition
	for pair := range transitionEffects {
		if !CanTransition(pair.from, pair.to) {
			t.Fatalf("effect registered for disallowed transition %s -> %s", pair.from, pair.to)
		}
	}
	// both cancellation sources release resources
	for _, from := range []string{constants.OrderStatusPending, constants.OrderStatusProcessing} {
		if _, ok := transitionEffects[transition{from, constants.OrderStatusCancelled}]; !ok {
			t.Fatalf("cancellation from %s has no compensation effect", from)
		}
	}
}

func TestOrderLifecycleToCompleted(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "divided", 150000, 2)
	returnDate := time.Now().Add(96 * time.Hour)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{HotpotTypeID: &ht.ID, Quantity: 2, ExpectedReturnDate: &returnDate},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	for _, target := range []string{
		constants.OrderStatusProcessing,
		constants.OrderStatusShipping,
		constants.OrderStatusDelivered,
	} {
		if _, err := env.orders.UpdateOrderStatus(order.ID, target); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}
	counts := unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusInUse] != 2 {
		t.Fatalf("delivered order should keep units in_use, got %v", counts)
	}

	if _, err := env.orders.UpdateOrderStatus(order.ID, constants.OrderStatusReturning); err != nil {
		t.Fatalf("transition to returning failed: %v", err)
	}
	counts = unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusMaintenance] != 2 {
		t.Fatalf("returning order should park units in maintenance, got %v", counts)
	}

	final, err := env.orders.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("transition to completed failed: %v", err)
	}
	if final.Status != constants.OrderStatusCompleted {
		t.Fatalf("status want completed, got %s", final.Status)
	}

	counts = unitStatuses(t, env.db, ht.ID)
	if counts[constants.UnitStatusAvailable] != 2 {
		t.Fatalf("completed return should free all units, got %v", counts)
	}
	var units []models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).Find(&units).Error; err != nil {
		t.Fatalf("load units failed: %v", err)
	}
	for _, u := range units {
		if u.OrderID != nil {
			t.Fatalf("unit %d should drop its order reference", u.ID)
		}
	}
	var serviced models.HotpotType
	if err := env.db.First(&serviced, ht.ID).Error; err != nil {
		t.Fatalf("load type failed: %v", err)
	}
	if serviced.LastMaintainedAt == nil {
		t.Fatalf("completed return should stamp last_maintained_at")
	}
}

func TestInvalidTransitionLeavesOrderUntouched(t *testing.T) {
	env := setupServiceTest(t)
	ing := seedIngredient(t, env.db, "corn", "10.000", 6000)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimalOne()},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	_, err = env.orders.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered)
	if !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("want ErrStatusTransitionInvalid, got %v", err)
	}

	reloaded, err := env.orders.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("status must stay pending, got %s", reloaded.Status)
	}
}

func TestCancelTerminalOrderRejected(t *testing.T) {
	env := setupServiceTest(t)
	ing := seedIngredient(t, env.db, "bokchoy", "10.000", 4000)

	order, err := env.orders.CreateOrder(CreateOrderInput{
		CustomerID:  1,
		Address:     "12 Hotpot Street",
		PaymentType: constants.PaymentTypeCash,
		Lines: []CreateOrderLine{
			{IngredientID: &ing.ID, Volume: decimalOne()},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := env.orders.CancelOrder(order.ID); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if _, err := env.orders.CancelOrder(order.ID); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("second cancel want ErrStatusTransitionInvalid, got %v", err)
	}
}
