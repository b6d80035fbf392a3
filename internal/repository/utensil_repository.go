package repository

import (
	"errors"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// UtensilRepository utensil stock data access interface
type UtensilRepository interface {
	Create(u *models.Utensil) error
	GetByID(id uint) (*models.Utensil, error)
	List(page, pageSize int, onlyActive bool) ([]models.Utensil, int64, error)
	Update(u *models.Utensil) error
	DecrementQuantity(id uint, qty int) (int64, error)
	IncrementQuantity(id uint, qty int) error
	WithTx(tx *gorm.DB) *GormUtensilRepository
}

// GormUtensilRepository GORM implementation
type GormUtensilRepository struct {
	db *gorm.DB
}

// NewUtensilRepository creates the utensil repository
func NewUtensilRepository(db *gorm.DB) *GormUtensilRepository {
	return &GormUtensilRepository{db: db}
}

// WithTx binds a transaction
func (r *GormUtensilRepository) WithTx(tx *gorm.DB) *GormUtensilRepository {
	if tx == nil {
		return r
	}
	return &GormUtensilRepository{db: tx}
}

// Create creates a utensil
func (r *GormUtensilRepository) Create(u *models.Utensil) error {
	return r.db.Create(u).Error
}

// GetByID fetches a utensil by ID
func (r *GormUtensilRepository) GetByID(id uint) (*models.Utensil, error) {
	var u models.Utensil
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// List lists utensils
func (r *GormUtensilRepository) List(page, pageSize int, onlyActive bool) ([]models.Utensil, int64, error) {
	query := r.db.Model(&models.Utensil{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Utensil
	if err := applyPagination(query.Order("id ASC"), page, pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the utensil row
func (r *GormUtensilRepository) Update(u *models.Utensil) error {
	return r.db.Save(u).Error
}

// DecrementQuantity deducts stock only when enough remains; callers check RowsAffected.
func (r *GormUtensilRepository) DecrementQuantity(id uint, qty int) (int64, error) {
	if qty <= 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Utensil{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	return result.RowsAffected, result.Error
}

// IncrementQuantity restores stock
func (r *GormUtensilRepository) IncrementQuantity(id uint, qty int) error {
	if qty <= 0 {
		return nil
	}
	return r.db.Model(&models.Utensil{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", qty)).Error
}
