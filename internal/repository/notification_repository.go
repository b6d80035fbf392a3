package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository notification data access interface
type NotificationRepository interface {
	Create(n *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	List(filter NotificationListFilter) ([]models.Notification, int64, error)
	MarkSent(id uint, at time.Time) error
	MarkRead(id, userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormNotificationRepository
}

// GormNotificationRepository GORM implementation
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates the notification repository
func NewNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// WithTx binds a transaction
func (r *GormNotificationRepository) WithTx(tx *gorm.DB) *GormNotificationRepository {
	if tx == nil {
		return r
	}
	return &GormNotificationRepository{db: tx}
}

// Create creates a notification
func (r *GormNotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// GetByID fetches a notification by ID
func (r *GormNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// List lists notifications matching the filter
func (r *GormNotificationRepository) List(filter NotificationListFilter) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{})
	if filter.UserID > 0 {
		if filter.Role != "" {
			query = query.Where("user_id = ? OR target_role = ?", filter.UserID, filter.Role)
		} else {
			query = query.Where("user_id = ?", filter.UserID)
		}
	} else if filter.Role != "" {
		query = query.Where("target_role = ?", filter.Role)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.OnlyUnread {
		query = query.Where("is_read = ?", false)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Notification
	if err := applyPagination(query.Order("created_at DESC"), filter.Page, filter.PageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// MarkSent stamps the worker dispatch time
func (r *GormNotificationRepository) MarkSent(id uint, at time.Time) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).
		Update("sent_at", at).Error
}

// MarkRead flags a user's notification as read
func (r *GormNotificationRepository) MarkRead(id, userID uint) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND (user_id = ? OR user_id IS NULL)", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
