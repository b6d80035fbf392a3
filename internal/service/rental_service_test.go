package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func seedRental(t *testing.T, env *testEnv, rentalPrice int64, start time.Time, expected time.Time) (*models.Order, *models.RentalDetail) {
	t.Helper()
	order := &models.Order{
		OrderNo:    "HP-test-" + strings.ReplaceAll(t.Name(), "/", "_"),
		CustomerID: 1,
		Address:    "12 Hotpot Street",
		Status:     constants.OrderStatusDelivered,
		TotalPrice: models.NewMoneyFromInt(rentalPrice),
	}
	if err := env.db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	rd := &models.RentalDetail{
		OrderID:            order.ID,
		HotpotUnitID:       uintPtr(1),
		Quantity:           1,
		RentalPrice:        models.NewMoneyFromInt(rentalPrice),
		StartDate:          start,
		ExpectedReturnDate: expected,
	}
	if err := env.db.Create(rd).Error; err != nil {
		t.Fatalf("seed rental failed: %v", err)
	}
	return order, rd
}

func TestCalculateLateFeeIsPure(t *testing.T) {
	env := setupServiceTest(t)
	start := time.Now().Add(-10 * 24 * time.Hour)
	expected := time.Now().Add(-3 * 24 * time.Hour)
	_, rd := seedRental(t, env, 100000, start, expected)

	// on-time and early returns cost nothing
	fee, err := env.rentals.CalculateLateFee(rd.ID, expected)
	if err != nil {
		t.Fatalf("late fee on time failed: %v", err)
	}
	if !moneyEquals(fee, 0) {
		t.Fatalf("on-time fee want 0, got %s", fee)
	}
	fee, err = env.rentals.CalculateLateFee(rd.ID, expected.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("late fee early failed: %v", err)
	}
	if !moneyEquals(fee, 0) {
		t.Fatalf("early fee want 0, got %s", fee)
	}

	// 3 whole days late at 10% of 100000 per day
	fee, err = env.rentals.CalculateLateFee(rd.ID, expected.Add(3*24*time.Hour))
	if err != nil {
		t.Fatalf("late fee overdue failed: %v", err)
	}
	if !moneyEquals(fee, 30000) {
		t.Fatalf("overdue fee want 30000, got %s", fee)
	}

	// a partial extra day does not round up
	fee, err = env.rentals.CalculateLateFee(rd.ID, expected.Add(3*24*time.Hour+6*time.Hour))
	if err != nil {
		t.Fatalf("late fee partial day failed: %v", err)
	}
	if !moneyEquals(fee, 30000) {
		t.Fatalf("partial-day fee want 30000, got %s", fee)
	}

	// the quote writes nothing back
	var stored models.RentalDetail
	if err := env.db.First(&stored, rd.ID).Error; err != nil {
		t.Fatalf("reload rental failed: %v", err)
	}
	if !moneyEquals(stored.LateFee, 0) || stored.ActualReturnDate != nil {
		t.Fatalf("quote must not mutate the rental, got %+v", stored)
	}
}

func TestExtendRentalPeriodProRatesFee(t *testing.T) {
	env := setupServiceTest(t)
	start := time.Now().Add(-2 * 24 * time.Hour)
	expected := start.Add(10 * 24 * time.Hour)
	order, rd := seedRental(t, env, 100000, start, expected)

	newExpected := expected.Add(5 * 24 * time.Hour)
	updated, err := env.rentals.ExtendRentalPeriod(rd.ID, newExpected)
	if err != nil {
		t.Fatalf("extend failed: %v", err)
	}

	// daily rate 100000 / 10 days, times 5 extra days
	if !moneyEquals(updated.RentalPrice, 150000) {
		t.Fatalf("rental price want 150000, got %s", updated.RentalPrice)
	}
	if !updated.ExpectedReturnDate.Equal(newExpected) {
		t.Fatalf("expected return date not moved")
	}
	if updated.Notes == "" {
		t.Fatalf("extension should leave an audit note")
	}

	var reloaded models.Order
	if err := env.db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if !moneyEquals(reloaded.TotalPrice, 150000) {
		t.Fatalf("order total want 150000, got %s", reloaded.TotalPrice)
	}
}

func TestExtendRentalPeriodGuards(t *testing.T) {
	env := setupServiceTest(t)
	start := time.Now().Add(-5 * 24 * time.Hour)
	expected := start.Add(10 * 24 * time.Hour)
	_, rd := seedRental(t, env, 100000, start, expected)

	if _, err := env.rentals.ExtendRentalPeriod(rd.ID, expected); !errors.Is(err, ErrRentalDateInvalid) {
		t.Fatalf("same date want ErrRentalDateInvalid, got %v", err)
	}
	if _, err := env.rentals.ExtendRentalPeriod(rd.ID, expected.Add(-24*time.Hour)); !errors.Is(err, ErrRentalDateInvalid) {
		t.Fatalf("earlier date want ErrRentalDateInvalid, got %v", err)
	}

	returned := time.Now()
	rd.ActualReturnDate = &returned
	if err := env.db.Save(rd).Error; err != nil {
		t.Fatalf("mark returned failed: %v", err)
	}
	if _, err := env.rentals.ExtendRentalPeriod(rd.ID, expected.Add(24*time.Hour)); !errors.Is(err, ErrRentalAlreadyReturned) {
		t.Fatalf("returned rental want ErrRentalAlreadyReturned, got %v", err)
	}

	if _, err := env.rentals.ExtendRentalPeriod(9999, expected.Add(24*time.Hour)); !errors.Is(err, ErrRentalNotFound) {
		t.Fatalf("missing rental want ErrRentalNotFound, got %v", err)
	}
}

func TestUpdateRentalDetail(t *testing.T) {
	env := setupServiceTest(t)
	start := time.Now().Add(-2 * 24 * time.Hour)
	expected := start.Add(10 * 24 * time.Hour)
	_, rd := seedRental(t, env, 100000, start, expected)

	rd.Notes = "handle with care"
	if err := env.db.Save(rd).Error; err != nil {
		t.Fatalf("seed notes failed: %v", err)
	}

	// a date before the rental start is rejected
	bad := start.Add(-24 * time.Hour)
	if _, err := env.rentals.UpdateRentalDetail(rd.ID, UpdateRentalInput{ExpectedReturnDate: &bad}); !errors.Is(err, ErrRentalDateInvalid) {
		t.Fatalf("date before start want ErrRentalDateInvalid, got %v", err)
	}

	// moving only the date leaves the notes alone
	moved := expected.Add(3 * 24 * time.Hour)
	updated, err := env.rentals.UpdateRentalDetail(rd.ID, UpdateRentalInput{ExpectedReturnDate: &moved})
	if err != nil {
		t.Fatalf("update date failed: %v", err)
	}
	if !updated.ExpectedReturnDate.Equal(moved) {
		t.Fatalf("expected return date not moved")
	}
	if updated.Notes != "handle with care" {
		t.Fatalf("nil notes must leave the field unchanged, got %q", updated.Notes)
	}

	// an explicit empty string clears the notes
	empty := ""
	updated, err = env.rentals.UpdateRentalDetail(rd.ID, UpdateRentalInput{Notes: &empty})
	if err != nil {
		t.Fatalf("clear notes failed: %v", err)
	}
	if updated.Notes != "" {
		t.Fatalf("empty notes must clear the field, got %q", updated.Notes)
	}
	if !updated.ExpectedReturnDate.Equal(moved) {
		t.Fatalf("notes-only edit must not touch the date")
	}

	var stored models.RentalDetail
	if err := env.db.First(&stored, rd.ID).Error; err != nil {
		t.Fatalf("reload rental failed: %v", err)
	}
	if stored.Notes != "" {
		t.Fatalf("cleared notes not persisted, got %q", stored.Notes)
	}

	// edits stop once the rental is returned
	returned := time.Now()
	stored.ActualReturnDate = &returned
	if err := env.db.Save(&stored).Error; err != nil {
		t.Fatalf("mark returned failed: %v", err)
	}
	note := "late edit"
	if _, err := env.rentals.UpdateRentalDetail(rd.ID, UpdateRentalInput{Notes: &note}); !errors.Is(err, ErrRentalAlreadyReturned) {
		t.Fatalf("returned rental want ErrRentalAlreadyReturned, got %v", err)
	}
}

func TestRecordReturnSettlesFees(t *testing.T) {
	env := setupServiceTest(t)
	start := time.Now().Add(-12 * 24 * time.Hour)
	expected := start.Add(10 * 24 * time.Hour)
	order, rd := seedRental(t, env, 100000, start, expected)

	damage := models.NewMoneyFromInt(25000)
	actual := expected.Add(2 * 24 * time.Hour)
	returned, err := env.rentals.RecordReturn(rd.ID, actual, &damage)
	if err != nil {
		t.Fatalf("record return failed: %v", err)
	}
	if returned.ActualReturnDate == nil || !returned.ActualReturnDate.Equal(actual) {
		t.Fatalf("actual return date not stamped")
	}
	// 2 days late at 10000/day plus the damage fee
	if !moneyEquals(returned.LateFee, 20000) {
		t.Fatalf("late fee want 20000, got %s", returned.LateFee)
	}
	if !moneyEquals(returned.DamageFee, 25000) {
		t.Fatalf("damage fee want 25000, got %s", returned.DamageFee)
	}

	var reloaded models.Order
	if err := env.db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if !moneyEquals(reloaded.TotalPrice, 145000) {
		t.Fatalf("order total want 145000, got %s", reloaded.TotalPrice)
	}

	if _, err := env.rentals.RecordReturn(rd.ID, actual, nil); !errors.Is(err, ErrRentalAlreadyReturned) {
		t.Fatalf("double return want ErrRentalAlreadyReturned, got %v", err)
	}
}
