package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUnitRepoTest(t *testing.T) (*gorm.DB, *GormHotpotUnitRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.HotpotType{}, &models.HotpotUnit{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db, NewHotpotUnitRepository(db)
}

func seedUnits(t *testing.T, db *gorm.DB, typeID uint, count int) []uint {
	t.Helper()
	ids := make([]uint, 0, count)
	for i := 1; i <= count; i++ {
		unit := &models.HotpotUnit{
			HotpotTypeID: typeID,
			SerialNo:     fmt.Sprintf("T%d-%03d", typeID, i),
			Status:       constants.UnitStatusAvailable,
		}
		if err := db.Create(unit).Error; err != nil {
			t.Fatalf("seed unit failed: %v", err)
		}
		ids = append(ids, unit.ID)
	}
	return ids
}

func TestReserveIsConditionalOnAvailability(t *testing.T) {
	db, repo := setupUnitRepoTest(t)
	ids := seedUnits(t, db, 1, 3)

	// another order grabs the middle candidate first
	if err := db.Model(&models.HotpotUnit{}).Where("id = ?", ids[1]).
		Updates(map[string]interface{}{"status": constants.UnitStatusInUse, "order_id": 77}).Error; err != nil {
		t.Fatalf("steal unit failed: %v", err)
	}

	affected, err := repo.Reserve(ids, 42, time.Now())
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected want 2 (one candidate lost), got %d", affected)
	}

	// the stolen unit keeps its original holder
	var stolen models.HotpotUnit
	if err := db.First(&stolen, ids[1]).Error; err != nil {
		t.Fatalf("reload stolen unit failed: %v", err)
	}
	if stolen.OrderID == nil || *stolen.OrderID != 77 {
		t.Fatalf("stolen unit must keep order 77, got %v", stolen.OrderID)
	}
}

func TestReserveAndReleaseRoundTrip(t *testing.T) {
	db, repo := setupUnitRepoTest(t)
	ids := seedUnits(t, db, 1, 2)

	affected, err := repo.Reserve(ids, 42, time.Now())
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected want 2, got %d", affected)
	}
	count, err := repo.CountAvailable(1)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("available want 0 after reserve, got %d", count)
	}

	released, err := repo.ReleaseByOrder(42)
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if released != 2 {
		t.Fatalf("released want 2, got %d", released)
	}
	count, err = repo.CountAvailable(1)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("available want 2 after release, got %d", count)
	}
	var freed models.HotpotUnit
	if err := db.First(&freed, ids[0]).Error; err != nil {
		t.Fatalf("reload unit failed: %v", err)
	}
	if freed.OrderID != nil {
		t.Fatalf("released unit must drop its order reference")
	}
}

func TestListAvailableIDsHonorsLimitAndOrder(t *testing.T) {
	db, repo := setupUnitRepoTest(t)
	ids := seedUnits(t, db, 1, 4)
	seedUnits(t, db, 2, 2)

	got, err := repo.ListAvailableIDs(1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 || got[0] != ids[0] || got[1] != ids[1] {
		t.Fatalf("want the two oldest ids %v, got %v", ids[:2], got)
	}

	if err := db.Model(&models.HotpotUnit{}).Where("id = ?", ids[0]).
		Update("status", constants.UnitStatusMaintenance).Error; err != nil {
		t.Fatalf("park unit failed: %v", err)
	}
	got, err = repo.ListAvailableIDs(1, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 remaining available, got %v", got)
	}
}

func TestSetStatusConditional(t *testing.T) {
	db, repo := setupUnitRepoTest(t)
	ids := seedUnits(t, db, 1, 1)

	affected, err := repo.SetStatus(ids[0], constants.UnitStatusInUse, constants.UnitStatusAvailable, nil)
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("mismatched from-status must not update, affected=%d", affected)
	}

	affected, err = repo.SetStatus(ids[0], constants.UnitStatusAvailable, constants.UnitStatusMaintenance, map[string]interface{}{
		"condition": "rusty",
	})
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1, got %d", affected)
	}
	var unit models.HotpotUnit
	if err := db.First(&unit, ids[0]).Error; err != nil {
		t.Fatalf("reload unit failed: %v", err)
	}
	if unit.Status != constants.UnitStatusMaintenance || unit.Condition != "rusty" {
		t.Fatalf("unit not updated: %+v", unit)
	}
}
