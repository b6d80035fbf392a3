package repository

import (
	"errors"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// ReplacementRepository replacement request data access interface
type ReplacementRepository interface {
	Create(rr *models.ReplacementRequest) error
	GetByID(id uint) (*models.ReplacementRequest, error)
	FindActiveByUnit(hotpotUnitID uint) (*models.ReplacementRequest, error)
	FindClosedByCustomerAndUnit(customerID, hotpotUnitID uint) (*models.ReplacementRequest, error)
	List(filter ReplacementListFilter) ([]models.ReplacementRequest, int64, error)
	Update(rr *models.ReplacementRequest) error
	WithTx(tx *gorm.DB) *GormReplacementRepository
}

// activeReplacementStatuses statuses that block a second request for the same unit
var activeReplacementStatuses = []string{
	constants.ReplacementStatusPending,
	constants.ReplacementStatusApproved,
	constants.ReplacementStatusInProgress,
}

// GormReplacementRepository GORM implementation
type GormReplacementRepository struct {
	db *gorm.DB
}

// NewReplacementRepository creates the replacement repository
func NewReplacementRepository(db *gorm.DB) *GormReplacementRepository {
	return &GormReplacementRepository{db: db}
}

// WithTx binds a transaction
func (r *GormReplacementRepository) WithTx(tx *gorm.DB) *GormReplacementRepository {
	if tx == nil {
		return r
	}
	return &GormReplacementRepository{db: tx}
}

// Create creates a replacement request
func (r *GormReplacementRepository) Create(rr *models.ReplacementRequest) error {
	return r.db.Create(rr).Error
}

// GetByID fetches a replacement request by ID
func (r *GormReplacementRepository) GetByID(id uint) (*models.ReplacementRequest, error) {
	var rr models.ReplacementRequest
	if err := r.db.Preload("HotpotUnit").First(&rr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rr, nil
}

// FindActiveByUnit finds an open request for a unit, if any
func (r *GormReplacementRepository) FindActiveByUnit(hotpotUnitID uint) (*models.ReplacementRequest, error) {
	var rr models.ReplacementRequest
	err := r.db.Where("hotpot_unit_id = ? AND status IN ?", hotpotUnitID, activeReplacementStatuses).
		First(&rr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rr, nil
}

// FindClosedByCustomerAndUnit finds the most recent closed request a customer
// filed for a unit, so it can be reopened instead of duplicated.
func (r *GormReplacementRepository) FindClosedByCustomerAndUnit(customerID, hotpotUnitID uint) (*models.ReplacementRequest, error) {
	var rr models.ReplacementRequest
	err := r.db.Where("customer_id = ? AND hotpot_unit_id = ? AND status IN ?",
		customerID, hotpotUnitID,
		[]string{constants.ReplacementStatusRejected, constants.ReplacementStatusCancelled}).
		Order("updated_at DESC").
		First(&rr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rr, nil
}

// List lists replacement requests matching the filter
func (r *GormReplacementRepository) List(filter ReplacementListFilter) ([]models.ReplacementRequest, int64, error) {
	query := r.db.Model(&models.ReplacementRequest{})
	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.AssignedStaffID > 0 {
		query = query.Where("assigned_staff_id = ?", filter.AssignedStaffID)
	}
	if filter.HotpotUnitID > 0 {
		query = query.Where("hotpot_unit_id = ?", filter.HotpotUnitID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.ReplacementRequest
	query = query.Preload("HotpotUnit").Order("request_date DESC")
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the replacement request row
func (r *GormReplacementRepository) Update(rr *models.ReplacementRequest) error {
	return r.db.Save(rr).Error
}
