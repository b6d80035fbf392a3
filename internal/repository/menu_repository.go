package repository

import (
	"errors"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// ComboRepository combo data access interface
type ComboRepository interface {
	Create(c *models.Combo) error
	GetByID(id uint) (*models.Combo, error)
	List(page, pageSize int, onlyActive bool) ([]models.Combo, int64, error)
	Update(c *models.Combo) error
	WithTx(tx *gorm.DB) *GormComboRepository
}

// GormComboRepository GORM implementation
type GormComboRepository struct {
	db *gorm.DB
}

// NewComboRepository creates the combo repository
func NewComboRepository(db *gorm.DB) *GormComboRepository {
	return &GormComboRepository{db: db}
}

// WithTx binds a transaction
func (r *GormComboRepository) WithTx(tx *gorm.DB) *GormComboRepository {
	if tx == nil {
		return r
	}
	return &GormComboRepository{db: tx}
}

// Create creates a combo
func (r *GormComboRepository) Create(c *models.Combo) error {
	return r.db.Create(c).Error
}

// GetByID fetches a combo by ID
func (r *GormComboRepository) GetByID(id uint) (*models.Combo, error) {
	var c models.Combo
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List lists combos
func (r *GormComboRepository) List(page, pageSize int, onlyActive bool) ([]models.Combo, int64, error) {
	query := r.db.Model(&models.Combo{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Combo
	if err := applyPagination(query.Order("id ASC"), page, pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the combo row
func (r *GormComboRepository) Update(c *models.Combo) error {
	return r.db.Save(c).Error
}

// CustomizationRepository customization data access interface
type CustomizationRepository interface {
	Create(c *models.Customization) error
	GetByID(id uint) (*models.Customization, error)
	GetByIDAndCustomer(id, customerID uint) (*models.Customization, error)
	ListByCustomer(customerID uint, page, pageSize int) ([]models.Customization, int64, error)
	Update(c *models.Customization) error
	WithTx(tx *gorm.DB) *GormCustomizationRepository
}

// GormCustomizationRepository GORM implementation
type GormCustomizationRepository struct {
	db *gorm.DB
}

// NewCustomizationRepository creates the customization repository
func NewCustomizationRepository(db *gorm.DB) *GormCustomizationRepository {
	return &GormCustomizationRepository{db: db}
}

// WithTx binds a transaction
func (r *GormCustomizationRepository) WithTx(tx *gorm.DB) *GormCustomizationRepository {
	if tx == nil {
		return r
	}
	return &GormCustomizationRepository{db: tx}
}

// Create creates a customization
func (r *GormCustomizationRepository) Create(c *models.Customization) error {
	return r.db.Create(c).Error
}

// GetByID fetches a customization by ID
func (r *GormCustomizationRepository) GetByID(id uint) (*models.Customization, error) {
	var c models.Customization
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// GetByIDAndCustomer fetches a customer's own customization
func (r *GormCustomizationRepository) GetByIDAndCustomer(id, customerID uint) (*models.Customization, error) {
	var c models.Customization
	if err := r.db.Where("id = ? AND customer_id = ?", id, customerID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListByCustomer lists a customer's customizations
func (r *GormCustomizationRepository) ListByCustomer(customerID uint, page, pageSize int) ([]models.Customization, int64, error) {
	query := r.db.Model(&models.Customization{}).Where("customer_id = ?", customerID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Customization
	if err := applyPagination(query.Order("id DESC"), page, pageSize).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves the customization row
func (r *GormCustomizationRepository) Update(c *models.Customization) error {
	return r.db.Save(c).Error
}
