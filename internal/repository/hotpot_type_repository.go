package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// HotpotTypeRepository hotpot type data access interface
type HotpotTypeRepository interface {
	Create(ht *models.HotpotType) error
	GetByID(id uint) (*models.HotpotType, error)
	List(page, pageSize int, onlyActive bool) ([]models.HotpotType, int64, error)
	Update(ht *models.HotpotType) error
	TouchLastMaintained(id uint, at time.Time) error
	WithTx(tx *gorm.DB) *GormHotpotTypeRepository
}

// GormHotpotTypeRepository GORM implementation
type GormHotpotTypeRepository struct {
	db *gorm.DB
}

// NewHotpotTypeRepository creates the hotpot type repository
func NewHotpotTypeRepository(db *gorm.DB) *GormHotpotTypeRepository {
	return &GormHotpotTypeRepository{db: db}
}

// WithTx binds a transaction
func (r *GormHotpotTypeRepository) WithTx(tx *gorm.DB) *GormHotpotTypeRepository {
	if tx == nil {
		return r
	}
	return &GormHotpotTypeRepository{db: tx}
}

// Create creates a hotpot type
func (r *GormHotpotTypeRepository) Create(ht *models.HotpotType) error {
	return r.db.Create(ht).Error
}

// GetByID fetches a hotpot type by ID
func (r *GormHotpotTypeRepository) GetByID(id uint) (*models.HotpotType, error) {
	var ht models.HotpotType
	if err := r.db.First(&ht, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ht, nil
}

// List lists hotpot types
func (r *GormHotpotTypeRepository) List(page, pageSize int, onlyActive bool) ([]models.HotpotType, int64, error) {
	query := r.db.Model(&models.HotpotType{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var types []models.HotpotType
	if err := applyPagination(query.Order("id ASC"), page, pageSize).Find(&types).Error; err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

// Update saves the hotpot type row
func (r *GormHotpotTypeRepository) Update(ht *models.HotpotType) error {
	return r.db.Save(ht).Error
}

// TouchLastMaintained stamps the post-return service time
func (r *GormHotpotTypeRepository) TouchLastMaintained(id uint, at time.Time) error {
	return r.db.Model(&models.HotpotType{}).Where("id = ?", id).
		Update("last_maintained_at", at).Error
}
