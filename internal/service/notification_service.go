package service

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/queue"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
)

// NotificationService persists notifications and hands delivery to the queue.
// Delivery is fire-and-forget: a failure here never fails the calling operation.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	queueClient      *queue.Client
}

// NewNotificationService creates the notification service
func NewNotificationService(notificationRepo repository.NotificationRepository, queueClient *queue.Client) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		queueClient:      queueClient,
	}
}

// NotifyUser records a notification for one user and enqueues its delivery
func (s *NotificationService) NotifyUser(userID uint, notifType, title, body string, data models.JSON) {
	if s == nil || s.notificationRepo == nil || userID == 0 {
		return
	}
	n := &models.Notification{
		UserID: &userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	s.dispatch(n)
}

// NotifyRole records a notification for a whole role and enqueues its delivery
func (s *NotificationService) NotifyRole(role, notifType, title, body string, data models.JSON) {
	if s == nil || s.notificationRepo == nil || role == "" {
		return
	}
	n := &models.Notification{
		TargetRole: role,
		Type:       notifType,
		Title:      title,
		Body:       body,
		Data:       data,
	}
	s.dispatch(n)
}

func (s *NotificationService) dispatch(n *models.Notification) {
	if err := s.notificationRepo.Create(n); err != nil {
		logger.Errorw("notification_persist_failed", "type", n.Type, "title", n.Title, "error", err)
		return
	}
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueNotificationDispatch(queue.NotificationDispatchPayload{
		NotificationID: n.ID,
	})
	if err != nil {
		logger.Warnw("notification_enqueue_failed", "notification_id", n.ID, "error", err)
	}
}

// ListNotifications lists notifications for a user or role
func (s *NotificationService) ListNotifications(filter repository.NotificationListFilter) ([]models.Notification, int64, error) {
	return s.notificationRepo.List(filter)
}

// MarkRead flags a notification as read for its owner
func (s *NotificationService) MarkRead(id, userID uint) error {
	affected, err := s.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
