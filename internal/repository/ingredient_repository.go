package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IngredientRepository ingredient stock data access interface
type IngredientRepository interface {
	Create(ing *models.Ingredient) error
	GetByID(id uint) (*models.Ingredient, error)
	List(page, pageSize int, onlyActive bool) ([]models.Ingredient, int64, error)
	Update(ing *models.Ingredient) error
	LatestPrice(ingredientID uint, at time.Time) (*models.IngredientPrice, error)
	AddPrice(price *models.IngredientPrice) error
	DecrementQuantity(id uint, amount decimal.Decimal) (int64, error)
	IncrementQuantity(id uint, amount decimal.Decimal) error
	WithTx(tx *gorm.DB) *GormIngredientRepository
}

// GormIngredientRepository GORM implementation
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates the ingredient repository
func NewIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

// WithTx binds a transaction
func (r *GormIngredientRepository) WithTx(tx *gorm.DB) *GormIngredientRepository {
	if tx == nil {
		return r
	}
	return &GormIngredientRepository{db: tx}
}

// Create creates an ingredient
func (r *GormIngredientRepository) Create(ing *models.Ingredient) error {
	return r.db.Create(ing).Error
}

// GetByID fetches an ingredient by ID
func (r *GormIngredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := r.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ing, nil
}

// List lists ingredients
func (r *GormIngredientRepository) List(page, pageSize int, onlyActive bool) ([]models.Ingredient, int64, error) {
	query := r.db.Model(&models.Ingredient{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Ingredient
	if err := applyPagination(query.Order("id ASC"), page, pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the ingredient row
func (r *GormIngredientRepository) Update(ing *models.Ingredient) error {
	return r.db.Save(ing).Error
}

// LatestPrice fetches the newest price record effective at the given time
func (r *GormIngredientRepository) LatestPrice(ingredientID uint, at time.Time) (*models.IngredientPrice, error) {
	var price models.IngredientPrice
	err := r.db.Where("ingredient_id = ? AND effective_date <= ?", ingredientID, at).
		Order("effective_date DESC").
		First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// AddPrice appends a dated price record
func (r *GormIngredientRepository) AddPrice(price *models.IngredientPrice) error {
	return r.db.Create(price).Error
}

// DecrementQuantity deducts stock only when enough remains; the caller must
// check RowsAffected to detect a lost race or insufficient quantity.
func (r *GormIngredientRepository) DecrementQuantity(id uint, amount decimal.Decimal) (int64, error) {
	if amount.Sign() <= 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Ingredient{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	return result.RowsAffected, result.Error
}

// IncrementQuantity restores stock
func (r *GormIngredientRepository) IncrementQuantity(id uint, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return nil
	}
	return r.db.Model(&models.Ingredient{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount)).Error
}
