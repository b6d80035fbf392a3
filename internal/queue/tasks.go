package queue

import (
	"encoding/json"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskNotificationDispatch delivers a persisted notification
	TaskNotificationDispatch = constants.TaskNotificationDispatch
	// TaskRentalOverdueRemind reminds a customer about an overdue rental
	TaskRentalOverdueRemind = constants.TaskRentalOverdueRemind
)

// NotificationDispatchPayload notification delivery task payload
type NotificationDispatchPayload struct {
	NotificationID uint `json:"notification_id"`
}

// RentalOverdueRemindPayload overdue reminder task payload
type RentalOverdueRemindPayload struct {
	RentalDetailID uint `json:"rental_detail_id"`
	OrderID        uint `json:"order_id"`
	DaysLate       int  `json:"days_late"`
}

// NewNotificationDispatchTask creates a notification delivery task
func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificationDispatch, body), nil
}

// NewRentalOverdueRemindTask creates an overdue reminder task
func NewRentalOverdueRemindTask(payload RentalOverdueRemindPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRentalOverdueRemind, body), nil
}
