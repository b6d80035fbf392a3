package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func TestCountAvailableAndOnboarding(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "starter", 50000, 2)

	count, err := env.inventory.CountAvailable(context.Background(), ht.ID)
	if err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("available want 2, got %d", count)
	}

	units, err := env.inventory.OnboardUnits(ht.ID, []string{"NEW-001", " NEW-002 ", ""})
	if err != nil {
		t.Fatalf("onboard failed: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("onboarded want 2 units, got %d", len(units))
	}

	count, err = env.inventory.CountAvailable(context.Background(), ht.ID)
	if err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("available want 4 after onboarding, got %d", count)
	}

	if _, err := env.inventory.OnboardUnits(9999, []string{"X-001"}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("unknown type want ErrItemNotFound, got %v", err)
	}
	if _, err := env.inventory.OnboardUnits(ht.ID, []string{" ", ""}); !errors.Is(err, ErrOrderQuantityInvalid) {
		t.Fatalf("blank serials want ErrOrderQuantityInvalid, got %v", err)
	}
}

func TestMaintenanceRoundTrip(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "workhorse", 80000, 1)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	log, err := env.inventory.SendToMaintenance(unit.ID, "annual descaling")
	if err != nil {
		t.Fatalf("send to maintenance failed: %v", err)
	}
	if log.Status != constants.MaintenanceLogStatusPending {
		t.Fatalf("log status want pending, got %s", log.Status)
	}

	var parked models.HotpotUnit
	if err := env.db.First(&parked, unit.ID).Error; err != nil {
		t.Fatalf("reload unit failed: %v", err)
	}
	if parked.Status != constants.UnitStatusMaintenance {
		t.Fatalf("unit want maintenance, got %s", parked.Status)
	}

	// a unit already under maintenance cannot be pulled again
	if _, err := env.inventory.SendToMaintenance(unit.ID, "again"); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("double pull want ErrStatusTransitionInvalid, got %v", err)
	}

	if err := env.inventory.CompleteMaintenance(log.ID); err != nil {
		t.Fatalf("complete maintenance failed: %v", err)
	}
	if err := env.db.First(&parked, unit.ID).Error; err != nil {
		t.Fatalf("reload unit failed: %v", err)
	}
	if parked.Status != constants.UnitStatusAvailable {
		t.Fatalf("unit want available after service, got %s", parked.Status)
	}
	var closed models.MaintenanceLog
	if err := env.db.First(&closed, log.ID).Error; err != nil {
		t.Fatalf("reload log failed: %v", err)
	}
	if closed.Status != constants.MaintenanceLogStatusCompleted || closed.ResolvedAt == nil {
		t.Fatalf("log not closed: %+v", closed)
	}
	var serviced models.HotpotType
	if err := env.db.First(&serviced, ht.ID).Error; err != nil {
		t.Fatalf("reload type failed: %v", err)
	}
	if serviced.LastMaintainedAt == nil {
		t.Fatalf("service completion should stamp last_maintained_at")
	}

	// closing the same ticket twice is rejected
	if err := env.inventory.CompleteMaintenance(log.ID); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("double close want ErrStatusTransitionInvalid, got %v", err)
	}
}
