package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// RentalRepository rental detail data access interface
type RentalRepository interface {
	GetByID(id uint) (*models.RentalDetail, error)
	ListByOrder(orderID uint) ([]models.RentalDetail, error)
	List(filter RentalListFilter) ([]models.RentalDetail, int64, error)
	ListOverdue(asOf time.Time) ([]models.RentalDetail, error)
	Update(rd *models.RentalDetail) error
	WithTx(tx *gorm.DB) *GormRentalRepository
}

// GormRentalRepository GORM implementation
type GormRentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates the rental repository
func NewRentalRepository(db *gorm.DB) *GormRentalRepository {
	return &GormRentalRepository{db: db}
}

// WithTx binds a transaction
func (r *GormRentalRepository) WithTx(tx *gorm.DB) *GormRentalRepository {
	if tx == nil {
		return r
	}
	return &GormRentalRepository{db: tx}
}

// GetByID fetches a rental detail by ID
func (r *GormRentalRepository) GetByID(id uint) (*models.RentalDetail, error) {
	var rd models.RentalDetail
	if err := r.db.First(&rd, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rd, nil
}

// ListByOrder lists rental details belonging to an order
func (r *GormRentalRepository) ListByOrder(orderID uint) ([]models.RentalDetail, error) {
	var items []models.RentalDetail
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// List lists rental details matching the filter
func (r *GormRentalRepository) List(filter RentalListFilter) ([]models.RentalDetail, int64, error) {
	query := r.db.Model(&models.RentalDetail{})
	if filter.OrderID > 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.OnlyOverdue {
		asOf := time.Now()
		if filter.AsOf != nil {
			asOf = *filter.AsOf
		}
		query = query.Where("actual_return_date IS NULL AND expected_return_date < ?", asOf)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.RentalDetail
	if err := applyPagination(query.Order("expected_return_date ASC"), filter.Page, filter.PageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListOverdue lists unreturned rentals past their expected return date
func (r *GormRentalRepository) ListOverdue(asOf time.Time) ([]models.RentalDetail, error) {
	var items []models.RentalDetail
	err := r.db.Where("actual_return_date IS NULL AND expected_return_date < ?", asOf).
		Order("expected_return_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves the rental detail row
func (r *GormRentalRepository) Update(rd *models.RentalDetail) error {
	return r.db.Save(rd).Error
}
