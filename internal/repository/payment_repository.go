package repository

import (
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository payment data access interface
type PaymentRepository interface {
	Create(p *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) (*models.Payment, error)
	UpdateStatus(id uint, from, to string, paidAt *time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormPaymentRepository
}

// GormPaymentRepository GORM implementation
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates the payment repository
func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// WithTx binds a transaction
func (r *GormPaymentRepository) WithTx(tx *gorm.DB) *GormPaymentRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentRepository{db: tx}
}

// Create creates a payment record
func (r *GormPaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

// GetByID fetches a payment by ID
func (r *GormPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByOrderID fetches the payment of an order
func (r *GormPaymentRepository) GetByOrderID(orderID uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateStatus conditionally moves a payment between statuses
func (r *GormPaymentRepository) UpdateStatus(id uint, from, to string, paidAt *time.Time) (int64, error) {
	updates := map[string]interface{}{"status": to}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	query := r.db.Model(&models.Payment{}).Where("id = ?", id)
	if from != "" {
		query = query.Where("status = ?", from)
	}
	result := query.Updates(updates)
	return result.RowsAffected, result.Error
}
