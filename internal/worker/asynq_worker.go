package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/provider"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer asynchronous task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskNotificationDispatch, c.handleNotificationDispatch)
	mux.HandleFunc(queue.TaskRentalOverdueRemind, c.handleRentalOverdueRemind)
}

// handleNotificationDispatch marks a persisted notification delivered. Actual
// push delivery sits behind an external gateway; this stamps the hand-off.
func (c *Consumer) handleNotificationDispatch(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.NotificationDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_notification_unmarshal_failed", "error", err)
		return err
	}
	if payload.NotificationID == 0 {
		return nil
	}
	n, err := c.NotificationRepo.GetByID(payload.NotificationID)
	if err != nil {
		logger.Warnw("worker_notification_fetch_failed", "notification_id", payload.NotificationID, "error", err)
		return err
	}
	if n == nil {
		logger.Debugw("worker_notification_skip_not_found", "notification_id", payload.NotificationID)
		return nil
	}
	if n.SentAt != nil {
		return nil
	}
	if err := c.NotificationRepo.MarkSent(n.ID, time.Now()); err != nil {
		logger.Warnw("worker_notification_mark_sent_failed", "notification_id", n.ID, "error", err)
		return err
	}
	logger.Infow("worker_notification_dispatched", "notification_id", n.ID, "type", n.Type)
	return nil
}

// handleRentalOverdueRemind notifies the customer that a rental is overdue
// and what the late fee currently stands at.
func (c *Consumer) handleRentalOverdueRemind(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.RentalOverdueRemindPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_overdue_remind_unmarshal_failed", "error", err)
		return err
	}
	if payload.RentalDetailID == 0 {
		return nil
	}
	rd, err := c.RentalRepo.GetByID(payload.RentalDetailID)
	if err != nil {
		logger.Warnw("worker_overdue_remind_fetch_failed", "rental_detail_id", payload.RentalDetailID, "error", err)
		return err
	}
	if rd == nil || rd.ActualReturnDate != nil {
		return nil
	}
	order, err := c.OrderRepo.GetByID(rd.OrderID)
	if err != nil {
		logger.Warnw("worker_overdue_remind_fetch_order_failed", "order_id", rd.OrderID, "error", err)
		return err
	}
	if order == nil {
		return nil
	}

	fee, err := c.RentalService.CalculateLateFee(rd.ID, time.Now())
	if err != nil {
		logger.Warnw("worker_overdue_remind_fee_failed", "rental_detail_id", rd.ID, "error", err)
		return err
	}
	c.NotificationService.NotifyUser(order.CustomerID, constants.NotificationTypeRentalOverdue,
		"Rental overdue",
		fmt.Sprintf("Rental on order %s was due %s; current late fee %s",
			order.OrderNo, rd.ExpectedReturnDate.Format("2006-01-02"), fee.StringFixed(2)),
		models.JSON{
			"order_id":         order.ID,
			"rental_detail_id": rd.ID,
			"days_late":        payload.DaysLate,
			"late_fee":         fee.StringFixed(2),
		},
	)
	return nil
}
