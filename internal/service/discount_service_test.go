package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func TestCreateDiscountValidation(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Now()

	if _, err := env.discounts.CreateDiscount(CreateDiscountInput{
		Title: "too much", Percentage: 120, StartDate: now, EndDate: now.Add(time.Hour),
	}); !errors.Is(err, ErrDiscountPercentInvalid) {
		t.Fatalf("want ErrDiscountPercentInvalid, got %v", err)
	}
	if _, err := env.discounts.CreateDiscount(CreateDiscountInput{
		Title: "inverted", Percentage: 10, StartDate: now.Add(time.Hour), EndDate: now,
	}); !errors.Is(err, ErrDiscountDatesInvalid) {
		t.Fatalf("want ErrDiscountDatesInvalid, got %v", err)
	}

	d, err := env.discounts.CreateDiscount(CreateDiscountInput{
		Title: "valid", Percentage: 15, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create discount failed: %v", err)
	}

	valid, err := env.discounts.IsValid(d.ID, now)
	if err != nil {
		t.Fatalf("is valid failed: %v", err)
	}
	if !valid {
		t.Fatalf("discount should be valid inside its window")
	}
	valid, err = env.discounts.IsValid(d.ID, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("is valid failed: %v", err)
	}
	if valid {
		t.Fatalf("discount should be invalid after its window")
	}
}

func TestDiscountFrozenOnceAttached(t *testing.T) {
	env := setupServiceTest(t)
	now := time.Now()

	d, err := env.discounts.CreateDiscount(CreateDiscountInput{
		Title: "opening promo", Percentage: 20, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create discount failed: %v", err)
	}

	edit := CreateDiscountInput{Title: "edited", Percentage: 25, StartDate: now, EndDate: now.Add(2 * time.Hour)}
	if _, err := env.discounts.UpdateDiscount(d.ID, edit); err != nil {
		t.Fatalf("edit before use failed: %v", err)
	}

	order := &models.Order{
		OrderNo:    "HP-discount-test",
		CustomerID: 1,
		Status:     constants.OrderStatusPending,
		DiscountID: &d.ID,
	}
	if err := env.db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	if _, err := env.discounts.UpdateDiscount(d.ID, edit); !errors.Is(err, ErrDiscountInUse) {
		t.Fatalf("edit after use want ErrDiscountInUse, got %v", err)
	}
	if err := env.discounts.DeleteDiscount(d.ID); !errors.Is(err, ErrDiscountInUse) {
		t.Fatalf("delete after use want ErrDiscountInUse, got %v", err)
	}
}
