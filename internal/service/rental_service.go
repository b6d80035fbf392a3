package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RentalService rental period extension, returns and late fees
type RentalService struct {
	rentalRepo     repository.RentalRepository
	orderRepo      repository.OrderRepository
	lateFeePercent int
}

// NewRentalService creates the rental service
func NewRentalService(rentalRepo repository.RentalRepository, orderRepo repository.OrderRepository, lateFeePercent int) *RentalService {
	if lateFeePercent <= 0 {
		lateFeePercent = constants.DefaultLateFeePercent
	}
	return &RentalService{
		rentalRepo:     rentalRepo,
		orderRepo:      orderRepo,
		lateFeePercent: lateFeePercent,
	}
}

// GetRental fetches a rental detail
func (s *RentalService) GetRental(id uint) (*models.RentalDetail, error) {
	rd, err := s.rentalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rd == nil {
		return nil, fmt.Errorf("%w: %d", ErrRentalNotFound, id)
	}
	return rd, nil
}

// ListRentals lists rental details matching the filter
func (s *RentalService) ListRentals(filter repository.RentalListFilter) ([]models.RentalDetail, int64, error) {
	return s.rentalRepo.List(filter)
}

// CalculateLateFee computes the overdue penalty without side effects. Returns
// zero for an on-time or early return; otherwise whole days late times the
// configured percentage of the rental price per day.
func (s *RentalService) CalculateLateFee(id uint, actualReturnDate time.Time) (models.Money, error) {
	rd, err := s.GetRental(id)
	if err != nil {
		return models.Money{}, err
	}
	return s.lateFeeFor(rd, actualReturnDate), nil
}

func (s *RentalService) lateFeeFor(rd *models.RentalDetail, actualReturnDate time.Time) models.Money {
	if !actualReturnDate.After(rd.ExpectedReturnDate) {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	daysLate := wholeDaysBetween(rd.ExpectedReturnDate, actualReturnDate)
	if daysLate <= 0 {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	perDay := rd.RentalPrice.Mul(decimal.NewFromInt(int64(s.lateFeePercent))).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(perDay.Mul(decimal.NewFromInt(int64(daysLate))))
}

// ExtendRentalPeriod pushes the expected return date out, pro-rating the
// additional fee from the original daily rate. The rental price and the parent
// order total grow by the same amount in one transaction.
func (s *RentalService) ExtendRentalPeriod(id uint, newExpectedReturnDate time.Time) (*models.RentalDetail, error) {
	rd, err := s.GetRental(id)
	if err != nil {
		return nil, err
	}
	if rd.ActualReturnDate != nil {
		return nil, ErrRentalAlreadyReturned
	}
	if !newExpectedReturnDate.After(rd.ExpectedReturnDate) {
		return nil, fmt.Errorf("%w: new expected return date must be after %s", ErrRentalDateInvalid, rd.ExpectedReturnDate.Format(time.RFC3339))
	}
	baseDays := wholeDaysBetween(rd.StartDate, rd.ExpectedReturnDate)
	if baseDays <= 0 {
		return nil, fmt.Errorf("%w: rental period has no billable days", ErrRentalDateInvalid)
	}
	additionalDays := wholeDaysBetween(rd.ExpectedReturnDate, newExpectedReturnDate)
	if additionalDays <= 0 {
		return nil, fmt.Errorf("%w: extension must add at least one day", ErrRentalDateInvalid)
	}

	dailyRate := rd.RentalPrice.Div(decimal.NewFromInt(int64(baseDays)))
	additionalFee := dailyRate.Mul(decimal.NewFromInt(int64(additionalDays)))

	oldExpected := rd.ExpectedReturnDate
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		rentalRepo := s.rentalRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		order, err := orderRepo.GetByID(rd.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: %d", ErrOrderNotFound, rd.OrderID)
		}

		rd.ExpectedReturnDate = newExpectedReturnDate
		rd.RentalPrice = models.NewMoneyFromDecimal(rd.RentalPrice.Add(additionalFee))
		appendNote(rd, fmt.Sprintf("extended from %s to %s, +%s",
			oldExpected.Format("2006-01-02"), newExpectedReturnDate.Format("2006-01-02"), additionalFee.StringFixed(2)))
		if err := rentalRepo.Update(rd); err != nil {
			return err
		}

		order.TotalPrice = models.NewMoneyFromDecimal(order.TotalPrice.Add(additionalFee))
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("rental_extended",
		"rental_detail_id", rd.ID,
		"order_id", rd.OrderID,
		"additional_days", additionalDays,
		"additional_fee", additionalFee.StringFixed(2),
	)
	return rd, nil
}

// UpdateRentalInput partial rental edit; nil means leave unchanged, a non-nil
// empty notes string clears the field.
type UpdateRentalInput struct {
	ExpectedReturnDate *time.Time
	Notes              *string
}

// UpdateRentalDetail edits an unreturned rental
func (s *RentalService) UpdateRentalDetail(id uint, input UpdateRentalInput) (*models.RentalDetail, error) {
	rd, err := s.GetRental(id)
	if err != nil {
		return nil, err
	}
	if rd.ActualReturnDate != nil {
		return nil, ErrRentalAlreadyReturned
	}
	if input.ExpectedReturnDate != nil {
		if input.ExpectedReturnDate.Before(rd.StartDate) {
			return nil, fmt.Errorf("%w: expected return date before rental start", ErrRentalDateInvalid)
		}
		rd.ExpectedReturnDate = *input.ExpectedReturnDate
	}
	if input.Notes != nil {
		rd.Notes = *input.Notes
	}
	if err := s.rentalRepo.Update(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

// RecordReturn stamps the actual return date and settles the late fee. Late
// and damage fees are added to the parent order total in the same transaction.
func (s *RentalService) RecordReturn(id uint, actualReturnDate time.Time, damageFee *models.Money) (*models.RentalDetail, error) {
	rd, err := s.GetRental(id)
	if err != nil {
		return nil, err
	}
	if rd.ActualReturnDate != nil {
		return nil, ErrRentalAlreadyReturned
	}
	if actualReturnDate.Before(rd.StartDate) {
		return nil, fmt.Errorf("%w: return before rental start", ErrRentalDateInvalid)
	}

	rd.ActualReturnDate = &actualReturnDate
	rd.LateFee = s.lateFeeFor(rd, actualReturnDate)
	if damageFee != nil {
		rd.DamageFee = *damageFee
	}
	extraCharge := rd.LateFee.Add(rd.DamageFee.Decimal)
	appendNote(rd, fmt.Sprintf("returned %s, late fee %s", actualReturnDate.Format("2006-01-02"), rd.LateFee.StringFixed(2)))

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.rentalRepo.WithTx(tx).Update(rd); err != nil {
			return err
		}
		if extraCharge.IsZero() {
			return nil
		}
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByID(rd.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: %d", ErrOrderNotFound, rd.OrderID)
		}
		order.TotalPrice = models.NewMoneyFromDecimal(order.TotalPrice.Add(extraCharge))
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("rental_returned",
		"rental_detail_id", rd.ID,
		"order_id", rd.OrderID,
		"late_fee", rd.LateFee.StringFixed(2),
		"damage_fee", rd.DamageFee.StringFixed(2),
	)
	return rd, nil
}

// appendNote audit notes accumulate, they are never overwritten
func appendNote(rd *models.RentalDetail, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04:05"), note)
	if rd.Notes == "" {
		rd.Notes = stamped
		return
	}
	rd.Notes = rd.Notes + "\n" + stamped
}

// wholeDaysBetween floor of the day difference between two instants
func wholeDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
