package repository

import (
	"errors"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// DiscountRepository discount data access interface
type DiscountRepository interface {
	Create(d *models.Discount) error
	GetByID(id uint) (*models.Discount, error)
	List(filter DiscountListFilter) ([]models.Discount, int64, error)
	Update(d *models.Discount) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormDiscountRepository
}

// GormDiscountRepository GORM implementation
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates the discount repository
func NewDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// WithTx binds a transaction
func (r *GormDiscountRepository) WithTx(tx *gorm.DB) *GormDiscountRepository {
	if tx == nil {
		return r
	}
	return &GormDiscountRepository{db: tx}
}

// Create creates a discount
func (r *GormDiscountRepository) Create(d *models.Discount) error {
	return r.db.Create(d).Error
}

// GetByID fetches a discount by ID
func (r *GormDiscountRepository) GetByID(id uint) (*models.Discount, error) {
	var d models.Discount
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List lists discounts matching the filter
func (r *GormDiscountRepository) List(filter DiscountListFilter) ([]models.Discount, int64, error) {
	query := r.db.Model(&models.Discount{})
	if filter.OnlyActive && filter.At != nil {
		query = query.Where("start_date <= ? AND end_date >= ?", *filter.At, *filter.At)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Discount
	if err := applyPagination(query.Order("start_date DESC"), filter.Page, filter.PageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the discount row
func (r *GormDiscountRepository) Update(d *models.Discount) error {
	return r.db.Save(d).Error
}

// Delete soft-deletes the discount
func (r *GormDiscountRepository) Delete(id uint) error {
	return r.db.Delete(&models.Discount{}, id).Error
}
