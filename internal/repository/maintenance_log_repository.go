package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// MaintenanceLogRepository maintenance log data access interface
type MaintenanceLogRepository interface {
	Create(ml *models.MaintenanceLog) error
	GetByID(id uint) (*models.MaintenanceLog, error)
	ListByUnit(hotpotUnitID uint, page, pageSize int) ([]models.MaintenanceLog, int64, error)
	MarkCompleted(id uint, resolvedAt time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormMaintenanceLogRepository
}

// GormMaintenanceLogRepository GORM implementation
type GormMaintenanceLogRepository struct {
	db *gorm.DB
}

// NewMaintenanceLogRepository creates the maintenance log repository
func NewMaintenanceLogRepository(db *gorm.DB) *GormMaintenanceLogRepository {
	return &GormMaintenanceLogRepository{db: db}
}

// WithTx binds a transaction
func (r *GormMaintenanceLogRepository) WithTx(tx *gorm.DB) *GormMaintenanceLogRepository {
	if tx == nil {
		return r
	}
	return &GormMaintenanceLogRepository{db: tx}
}

// Create creates a maintenance log
func (r *GormMaintenanceLogRepository) Create(ml *models.MaintenanceLog) error {
	return r.db.Create(ml).Error
}

// GetByID fetches a maintenance log by ID
func (r *GormMaintenanceLogRepository) GetByID(id uint) (*models.MaintenanceLog, error) {
	var ml models.MaintenanceLog
	if err := r.db.First(&ml, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ml, nil
}

// ListByUnit lists maintenance logs of a unit, newest first
func (r *GormMaintenanceLogRepository) ListByUnit(hotpotUnitID uint, page, pageSize int) ([]models.MaintenanceLog, int64, error) {
	query := r.db.Model(&models.MaintenanceLog{})
	if hotpotUnitID > 0 {
		query = query.Where("hotpot_unit_id = ?", hotpotUnitID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.MaintenanceLog
	if err := applyPagination(query.Order("created_at DESC"), page, pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// MarkCompleted closes a pending log
func (r *GormMaintenanceLogRepository) MarkCompleted(id uint, resolvedAt time.Time) (int64, error) {
	result := r.db.Model(&models.MaintenanceLog{}).
		Where("id = ? AND status = ?", id, constants.MaintenanceLogStatusPending).
		Updates(map[string]interface{}{
			"status":      constants.MaintenanceLogStatusCompleted,
			"resolved_at": resolvedAt,
		})
	return result.RowsAffected, result.Error
}
