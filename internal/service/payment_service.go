package service

import (
	"fmt"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService payment record lifecycle
type PaymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates the payment service
func NewPaymentService(paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// CreateCashPayment opens a pending cash payment for an order
func (s *PaymentService) CreateCashPayment(orderID uint, amount models.Money) (*models.Payment, error) {
	return s.create(orderID, amount, constants.PaymentTypeCash)
}

// CreateOnlinePaymentRecord opens a pending online payment; the payment link
// itself is produced by an external provider.
func (s *PaymentService) CreateOnlinePaymentRecord(orderID uint, amount models.Money) (*models.Payment, error) {
	return s.create(orderID, amount, constants.PaymentTypeOnline)
}

func (s *PaymentService) create(orderID uint, amount models.Money, paymentType string) (*models.Payment, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	payment := &models.Payment{
		OrderID:       orderID,
		Amount:        amount,
		Type:          paymentType,
		Status:        constants.PaymentStatusPending,
		TransactionNo: generateTransactionNo(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// CreatePaymentForOrder creates the single payment matching the requested type
func (s *PaymentService) CreatePaymentForOrder(orderID uint, amount models.Money, paymentType string) (*models.Payment, error) {
	switch paymentType {
	case constants.PaymentTypeCash:
		return s.CreateCashPayment(orderID, amount)
	case constants.PaymentTypeOnline:
		return s.CreateOnlinePaymentRecord(orderID, amount)
	default:
		return nil, fmt.Errorf("%w: %s", ErrPaymentTypeInvalid, paymentType)
	}
}

// GetPaymentByOrder fetches the payment of an order
func (s *PaymentService) GetPaymentByOrder(orderID uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// CancelPayment cancels a pending payment
func (s *PaymentService) CancelPayment(paymentID uint) error {
	return s.cancelWith(s.paymentRepo, paymentID)
}

// CancelPaymentTx cancels a pending payment inside an open transaction
func (s *PaymentService) CancelPaymentTx(tx *gorm.DB, paymentID uint) error {
	return s.cancelWith(s.paymentRepo.WithTx(tx), paymentID)
}

func (s *PaymentService) cancelWith(repo repository.PaymentRepository, paymentID uint) error {
	affected, err := repo.UpdateStatus(paymentID, constants.PaymentStatusPending, constants.PaymentStatusCancelled, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotPending
	}
	return nil
}

// MarkPaid settles a pending payment; confirmation comes from an external
// collaborator (cashier or payment provider callback).
func (s *PaymentService) MarkPaid(paymentID uint, paidAt time.Time) error {
	affected, err := s.paymentRepo.UpdateStatus(paymentID, constants.PaymentStatusPending, constants.PaymentStatusPaid, &paidAt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotPending
	}
	return nil
}

func generateTransactionNo() string {
	return fmt.Sprintf("PAY-%s", uuid.NewString())
}
