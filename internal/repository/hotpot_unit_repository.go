package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// HotpotUnitRepository serialized hotpot unit data access interface
type HotpotUnitRepository interface {
	Create(unit *models.HotpotUnit) error
	CreateBatch(units []models.HotpotUnit) error
	GetByID(id uint) (*models.HotpotUnit, error)
	GetBySerialNo(serialNo string) (*models.HotpotUnit, error)
	List(filter UnitListFilter) ([]models.HotpotUnit, int64, error)
	ListAvailableIDs(hotpotTypeID uint, limit int) ([]uint, error)
	ListByOrder(orderID uint) ([]models.HotpotUnit, error)
	CountAvailable(hotpotTypeID uint) (int64, error)
	Reserve(ids []uint, orderID uint, reservedAt time.Time) (int64, error)
	ReleaseByOrder(orderID uint) (int64, error)
	SetStatus(id uint, from, to string, updates map[string]interface{}) (int64, error)
	Update(unit *models.HotpotUnit) error
	WithTx(tx *gorm.DB) *GormHotpotUnitRepository
}

// GormHotpotUnitRepository GORM implementation
type GormHotpotUnitRepository struct {
	db *gorm.DB
}

// NewHotpotUnitRepository creates the hotpot unit repository
func NewHotpotUnitRepository(db *gorm.DB) *GormHotpotUnitRepository {
	return &GormHotpotUnitRepository{db: db}
}

// WithTx binds a transaction
func (r *GormHotpotUnitRepository) WithTx(tx *gorm.DB) *GormHotpotUnitRepository {
	if tx == nil {
		return r
	}
	return &GormHotpotUnitRepository{db: tx}
}

// Create registers a new unit
func (r *GormHotpotUnitRepository) Create(unit *models.HotpotUnit) error {
	return r.db.Create(unit).Error
}

// CreateBatch registers a batch of units
func (r *GormHotpotUnitRepository) CreateBatch(units []models.HotpotUnit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.Create(&units).Error
}

// GetByID fetches a unit by ID
func (r *GormHotpotUnitRepository) GetByID(id uint) (*models.HotpotUnit, error) {
	var unit models.HotpotUnit
	if err := r.db.Preload("HotpotType").First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

// GetBySerialNo fetches a unit by serial number
func (r *GormHotpotUnitRepository) GetBySerialNo(serialNo string) (*models.HotpotUnit, error) {
	var unit models.HotpotUnit
	if err := r.db.Where("serial_no = ?", serialNo).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

// List lists units matching the filter
func (r *GormHotpotUnitRepository) List(filter UnitListFilter) ([]models.HotpotUnit, int64, error) {
	query := r.db.Model(&models.HotpotUnit{})
	if filter.HotpotTypeID > 0 {
		query = query.Where("hotpot_type_id = ?", filter.HotpotTypeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("serial_no LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []models.HotpotUnit
	query = query.Preload("HotpotType").Order("id ASC")
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

// ListAvailableIDs picks candidate available unit IDs of a type, oldest first
func (r *GormHotpotUnitRepository) ListAvailableIDs(hotpotTypeID uint, limit int) ([]uint, error) {
	var ids []uint
	query := r.db.Model(&models.HotpotUnit{}).
		Where("hotpot_type_id = ? AND status = ?", hotpotTypeID, constants.UnitStatusAvailable).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListByOrder lists units currently held by an order
func (r *GormHotpotUnitRepository) ListByOrder(orderID uint) ([]models.HotpotUnit, error) {
	var units []models.HotpotUnit
	if err := r.db.Where("order_id = ?", orderID).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// CountAvailable counts available units of a type
func (r *GormHotpotUnitRepository) CountAvailable(hotpotTypeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.HotpotUnit{}).
		Where("hotpot_type_id = ? AND status = ?", hotpotTypeID, constants.UnitStatusAvailable).
		Count(&count).Error
	return count, err
}

// Reserve flips candidate units to in_use; the caller must verify RowsAffected
// matches the requested count, anything less means another order won the race.
func (r *GormHotpotUnitRepository) Reserve(ids []uint, orderID uint, reservedAt time.Time) (int64, error) {
	if len(ids) == 0 || orderID == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.HotpotUnit{}).
		Where("id IN ? AND status = ?", ids, constants.UnitStatusAvailable).
		Updates(map[string]interface{}{
			"status":     constants.UnitStatusInUse,
			"order_id":   orderID,
			"updated_at": reservedAt,
		})
	return result.RowsAffected, result.Error
}

// ReleaseByOrder returns an order's in_use units to available
func (r *GormHotpotUnitRepository) ReleaseByOrder(orderID uint) (int64, error) {
	if orderID == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.HotpotUnit{}).
		Where("order_id = ? AND status = ?", orderID, constants.UnitStatusInUse).
		Updates(map[string]interface{}{
			"status":   constants.UnitStatusAvailable,
			"order_id": nil,
		})
	return result.RowsAffected, result.Error
}

// SetStatus conditionally moves a unit between statuses
func (r *GormHotpotUnitRepository) SetStatus(id uint, from, to string, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to
	query := r.db.Model(&models.HotpotUnit{}).Where("id = ?", id)
	if from != "" {
		query = query.Where("status = ?", from)
	}
	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}

// Update saves the unit row
func (r *GormHotpotUnitRepository) Update(unit *models.HotpotUnit) error {
	return r.db.Save(unit).Error
}
