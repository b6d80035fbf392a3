package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/cache"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipping:  true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusDelivered: true,
	},
	constants.OrderStatusDelivered: {
		constants.OrderStatusReturning: true,
	},
	constants.OrderStatusReturning: {
		constants.OrderStatusCompleted: true,
	},
}

// transitionEffect inventory/payment side effect run inside the transition transaction
type transitionEffect func(s *OrderService, tx *gorm.DB, order *models.Order, now time.Time) error

type transition struct {
	from string
	to   string
}

// transitionEffects keyed by (from, to); pairs absent here are status-only writes
var transitionEffects = map[transition]transitionEffect{
	{constants.OrderStatusPending, constants.OrderStatusCancelled}:    (*OrderService).releaseOrderResources,
	{constants.OrderStatusProcessing, constants.OrderStatusCancelled}: (*OrderService).releaseOrderResources,
	{constants.OrderStatusShipping, constants.OrderStatusDelivered}:   (*OrderService).markUnitsInUse,
	{constants.OrderStatusDelivered, constants.OrderStatusReturning}:  (*OrderService).markUnitsMaintenance,
	{constants.OrderStatusReturning, constants.OrderStatusCompleted}:  (*OrderService).completeOrderReturn,
}

// CanTransition reports whether a transition is in the allowed table
func CanTransition(from, to string) bool {
	return allowedTransitions[from][to]
}

// UpdateOrderStatus validates the transition and executes its side effects in
// the same transaction that records the new status.
func (s *OrderService) UpdateOrderStatus(orderID uint, target string) (*models.Order, error) {
	order, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(order.Status, target) {
		return nil, fmt.Errorf("%w from %s to %s", ErrStatusTransitionInvalid, order.Status, target)
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if effect, ok := transitionEffects[transition{order.Status, target}]; ok {
			if err := effect(s, tx, order, now); err != nil {
				return err
			}
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(order.ID, target, map[string]interface{}{
			"updated_at": now,
		})
	})
	if err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = target
	s.invalidateAvailability(order)
	logger.Infow("order_status_changed", "order_id", order.ID, "from", previous, "to", target)
	s.notifier.NotifyUser(order.CustomerID, constants.NotificationTypeOrderStatus,
		"Order status updated",
		fmt.Sprintf("Order %s is now %s", order.OrderNo, target),
		models.JSON{"order_id": order.ID, "order_no": order.OrderNo, "status": target},
	)
	return s.GetOrder(order.ID)
}

// CancelOrder shorthand for the cancellation transition
func (s *OrderService) CancelOrder(orderID uint) (*models.Order, error) {
	return s.UpdateOrderStatus(orderID, constants.OrderStatusCancelled)
}

// releaseOrderResources compensation for cancellation: ingredient volumes go
// back to stock, rented utensil quantities go back, reserved units return to
// available, and a still-pending payment is cancelled.
func (s *OrderService) releaseOrderResources(tx *gorm.DB, order *models.Order, now time.Time) error {
	ingredientRepo := s.ingredientRepo.WithTx(tx)
	for _, item := range order.Items {
		if item.IngredientID != nil && item.Volume.Sign() > 0 {
			if err := ingredientRepo.IncrementQuantity(*item.IngredientID, item.Volume); err != nil {
				return err
			}
		}
	}

	utensilRepo := s.utensilRepo.WithTx(tx)
	for _, rental := range order.Rentals {
		if rental.UtensilID != nil {
			if err := utensilRepo.IncrementQuantity(*rental.UtensilID, rental.Quantity); err != nil {
				return err
			}
		}
	}

	if _, err := s.unitRepo.WithTx(tx).ReleaseByOrder(order.ID); err != nil {
		return err
	}

	payment, err := s.paymentRepo.WithTx(tx).GetByOrderID(order.ID)
	if err != nil {
		return err
	}
	if payment != nil && payment.Status == constants.PaymentStatusPending {
		if _, err := s.paymentRepo.WithTx(tx).UpdateStatus(payment.ID, constants.PaymentStatusPending, constants.PaymentStatusCancelled, nil); err != nil {
			return err
		}
	}
	return nil
}

// markUnitsInUse the units physically leave with the customer on delivery
func (s *OrderService) markUnitsInUse(tx *gorm.DB, order *models.Order, now time.Time) error {
	return s.setOrderUnitsStatus(tx, order, constants.UnitStatusInUse)
}

// markUnitsMaintenance returned units wait for inspection before going back to the pool
func (s *OrderService) markUnitsMaintenance(tx *gorm.DB, order *models.Order, now time.Time) error {
	return s.setOrderUnitsStatus(tx, order, constants.UnitStatusMaintenance)
}

func (s *OrderService) setOrderUnitsStatus(tx *gorm.DB, order *models.Order, status string) error {
	unitRepo := s.unitRepo.WithTx(tx)
	for _, rental := range order.Rentals {
		if rental.HotpotUnitID == nil {
			continue
		}
		if _, err := unitRepo.SetStatus(*rental.HotpotUnitID, "", status, nil); err != nil {
			return err
		}
	}
	return nil
}

// completeOrderReturn end of the rental: units become available again and the
// owning type's last-maintained stamp records the post-return service point.
func (s *OrderService) completeOrderReturn(tx *gorm.DB, order *models.Order, now time.Time) error {
	unitRepo := s.unitRepo.WithTx(tx)
	typeRepo := s.typeRepo.WithTx(tx)
	touched := map[uint]bool{}
	for _, rental := range order.Rentals {
		if rental.HotpotUnitID == nil {
			continue
		}
		unit, err := unitRepo.GetByID(*rental.HotpotUnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("%w: %d", ErrUnitNotFound, *rental.HotpotUnitID)
		}
		if _, err := unitRepo.SetStatus(unit.ID, "", constants.UnitStatusAvailable, map[string]interface{}{
			"order_id": nil,
		}); err != nil {
			return err
		}
		if !touched[unit.HotpotTypeID] {
			if err := typeRepo.TouchLastMaintained(unit.HotpotTypeID, now); err != nil {
				return err
			}
			touched[unit.HotpotTypeID] = true
		}
	}
	return nil
}

// invalidateAvailability drops cached availability counts for every hotpot
// type touched by this order; a cache miss is always safe.
func (s *OrderService) invalidateAvailability(order *models.Order) {
	if !cache.Enabled() {
		return
	}
	ctx := context.Background()
	touched := map[uint]bool{}
	for _, rental := range order.Rentals {
		if rental.HotpotUnitID == nil {
			continue
		}
		unit, err := s.unitRepo.GetByID(*rental.HotpotUnitID)
		if err != nil || unit == nil {
			continue
		}
		if touched[unit.HotpotTypeID] {
			continue
		}
		touched[unit.HotpotTypeID] = true
		if err := cache.DelAvailability(ctx, unit.HotpotTypeID); err != nil {
			logger.Warnw("availability_cache_invalidate_failed", "hotpot_type_id", unit.HotpotTypeID, "error", err)
		}
	}
}
