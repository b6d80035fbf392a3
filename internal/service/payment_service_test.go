package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func TestPaymentSettlementIsOneShot(t *testing.T) {
	env := setupServiceTest(t)

	payment, err := env.payments.CreateCashPayment(1, models.NewMoneyFromInt(120000))
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.Status != constants.PaymentStatusPending || payment.TransactionNo == "" {
		t.Fatalf("fresh payment malformed: %+v", payment)
	}

	paidAt := time.Now()
	if err := env.payments.MarkPaid(payment.ID, paidAt); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	var stored models.Payment
	if err := env.db.First(&stored, payment.ID).Error; err != nil {
		t.Fatalf("reload payment failed: %v", err)
	}
	if stored.Status != constants.PaymentStatusPaid || stored.PaidAt == nil {
		t.Fatalf("settlement not recorded: %+v", stored)
	}

	// a settled payment can be neither re-settled nor cancelled
	if err := env.payments.MarkPaid(payment.ID, paidAt); !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("double settle want ErrPaymentNotPending, got %v", err)
	}
	if err := env.payments.CancelPayment(payment.ID); !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("cancel settled want ErrPaymentNotPending, got %v", err)
	}
}

func TestCancelPendingPayment(t *testing.T) {
	env := setupServiceTest(t)

	payment, err := env.payments.CreateOnlinePaymentRecord(2, models.NewMoneyFromInt(50000))
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if err := env.payments.CancelPayment(payment.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	var stored models.Payment
	if err := env.db.First(&stored, payment.ID).Error; err != nil {
		t.Fatalf("reload payment failed: %v", err)
	}
	if stored.Status != constants.PaymentStatusCancelled {
		t.Fatalf("status want cancelled, got %s", stored.Status)
	}
}
