package service

import (
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
)

// DiscountService percentage promotion management and validation
type DiscountService struct {
	discountRepo repository.DiscountRepository
	orderRepo    repository.OrderRepository
}

// NewDiscountService creates the discount service
func NewDiscountService(discountRepo repository.DiscountRepository, orderRepo repository.OrderRepository) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		orderRepo:    orderRepo,
	}
}

// CreateDiscountInput new discount fields
type CreateDiscountInput struct {
	Title       string
	Description string
	Percentage  int
	StartDate   time.Time
	EndDate     time.Time
}

// CreateDiscount creates a discount after range checks
func (s *DiscountService) CreateDiscount(input CreateDiscountInput) (*models.Discount, error) {
	if input.Percentage < 0 || input.Percentage > 100 {
		return nil, ErrDiscountPercentInvalid
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrDiscountDatesInvalid
	}
	d := &models.Discount{
		Title:       input.Title,
		Description: input.Description,
		Percentage:  input.Percentage,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.discountRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDiscount fetches a discount by ID
func (s *DiscountService) GetDiscount(id uint) (*models.Discount, error) {
	d, err := s.discountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDiscountNotFound
	}
	return d, nil
}

// ListDiscounts lists discounts
func (s *DiscountService) ListDiscounts(filter repository.DiscountListFilter) ([]models.Discount, int64, error) {
	return s.discountRepo.List(filter)
}

// IsValid reports whether a discount is usable at the given time
func (s *DiscountService) IsValid(id uint, now time.Time) (bool, error) {
	d, err := s.discountRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if d == nil {
		return false, ErrDiscountNotFound
	}
	return !now.Before(d.StartDate) && !now.After(d.EndDate), nil
}

// UpdateDiscount updates a discount; a discount already attached to an order
// is frozen and can no longer change.
func (s *DiscountService) UpdateDiscount(id uint, input CreateDiscountInput) (*models.Discount, error) {
	d, err := s.GetDiscount(id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnused(id); err != nil {
		return nil, err
	}
	if input.Percentage < 0 || input.Percentage > 100 {
		return nil, ErrDiscountPercentInvalid
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrDiscountDatesInvalid
	}
	d.Title = input.Title
	d.Description = input.Description
	d.Percentage = input.Percentage
	d.StartDate = input.StartDate
	d.EndDate = input.EndDate
	if err := s.discountRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDiscount soft-deletes an unused discount
func (s *DiscountService) DeleteDiscount(id uint) error {
	if _, err := s.GetDiscount(id); err != nil {
		return err
	}
	if err := s.ensureUnused(id); err != nil {
		return err
	}
	return s.discountRepo.Delete(id)
}

func (s *DiscountService) ensureUnused(id uint) error {
	count, err := s.orderRepo.CountByDiscount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDiscountInUse
	}
	return nil
}
