package service

import (
	"errors"
	"testing"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func TestCreateRequestRejectsDuplicateActive(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "copper", 100000, 1)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	first, err := env.replacements.CreateRequest(1, unit.ID, "burner will not ignite")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if first.Status != constants.ReplacementStatusPending {
		t.Fatalf("status want pending, got %s", first.Status)
	}

	// same unit, any customer: still active, so rejected
	if _, err := env.replacements.CreateRequest(2, unit.ID, "also broken"); !errors.Is(err, ErrReplacementDuplicate) {
		t.Fatalf("want ErrReplacementDuplicate, got %v", err)
	}

	if _, err := env.replacements.CreateRequest(1, 9999, "ghost unit"); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("want ErrUnitNotFound, got %v", err)
	}
}

func TestCreateRequestReactivatesClosedRow(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "electric", 100000, 1)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	first, err := env.replacements.CreateRequest(1, unit.ID, "leaking seal")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if _, err := env.replacements.CancelRequest(first.ID, 1); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	reopened, err := env.replacements.CreateRequest(1, unit.ID, "seal still leaking")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.ID != first.ID {
		t.Fatalf("reactivation must reuse row %d, got %d", first.ID, reopened.ID)
	}
	if reopened.Status != constants.ReplacementStatusPending {
		t.Fatalf("reopened status want pending, got %s", reopened.Status)
	}
	if reopened.Reason != "seal still leaking" {
		t.Fatalf("reason not refreshed: %q", reopened.Reason)
	}
	if reopened.AssignedStaffID != nil || reopened.ReviewDate != nil || reopened.CompletionDate != nil {
		t.Fatalf("reopened request should reset workflow fields: %+v", reopened)
	}

	var total int64
	env.db.Model(&models.ReplacementRequest{}).Count(&total)
	if total != 1 {
		t.Fatalf("only one request row expected, got %d", total)
	}
}

func TestVerifyNotFaultyClosesAsRejected(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "divided", 100000, 1)
	staff := seedUser(t, env.db, "fieldstaff", constants.RoleStaff)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	rr, err := env.replacements.CreateRequest(1, unit.ID, "does not heat")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if _, err := env.replacements.ReviewRequest(rr.ID, true, "plausible claim"); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if _, err := env.replacements.AssignStaff(rr.ID, staff.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	// wrong staff member cannot verify
	other := seedUser(t, env.db, "otherstaff", constants.RoleStaff)
	if _, err := env.replacements.VerifyEquipmentFaulty(rr.ID, other.ID, false, ""); !errors.Is(err, ErrReplacementNotAssignee) {
		t.Fatalf("want ErrReplacementNotAssignee, got %v", err)
	}

	verified, err := env.replacements.VerifyEquipmentFaulty(rr.ID, staff.ID, false, "heats fine on site")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.Status != constants.ReplacementStatusRejected {
		t.Fatalf("not-faulty verdict want rejected, got %s", verified.Status)
	}
}

func TestCompleteRequestParksUnitAndLogsMaintenance(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "premium", 200000, 1)
	staff := seedUser(t, env.db, "techstaff", constants.RoleStaff)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	rr, err := env.replacements.CreateRequest(1, unit.ID, "cracked basin")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if _, err := env.replacements.ReviewRequest(rr.ID, true, ""); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if _, err := env.replacements.AssignStaff(rr.ID, staff.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if _, err := env.replacements.VerifyEquipmentFaulty(rr.ID, staff.ID, true, "confirmed crack"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	done, err := env.replacements.CompleteRequest(rr.ID, staff.ID, "swapped with spare unit")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != constants.ReplacementStatusCompleted || done.CompletionDate == nil {
		t.Fatalf("completion not recorded: %+v", done)
	}

	var serviced models.HotpotUnit
	if err := env.db.First(&serviced, unit.ID).Error; err != nil {
		t.Fatalf("reload unit failed: %v", err)
	}
	if serviced.Status != constants.UnitStatusMaintenance {
		t.Fatalf("faulty unit want maintenance, got %s", serviced.Status)
	}
	var log models.MaintenanceLog
	if err := env.db.Where("hotpot_unit_id = ?", unit.ID).First(&log).Error; err != nil {
		t.Fatalf("maintenance log missing: %v", err)
	}
	if log.Status != constants.MaintenanceLogStatusCompleted || log.ResolvedAt == nil {
		t.Fatalf("maintenance log not closed: %+v", log)
	}

	// completed requests stop blocking new claims for the unit
	again, err := env.replacements.CreateRequest(2, unit.ID, "new problem")
	if err != nil {
		t.Fatalf("new claim after completion failed: %v", err)
	}
	if again.ID == rr.ID {
		t.Fatalf("a different customer's claim must be a new row")
	}
}

func TestWorkflowGuards(t *testing.T) {
	env := setupServiceTest(t)
	ht := seedHotpotType(t, env.db, "basic", 80000, 1)
	staff := seedUser(t, env.db, "guardstaff", constants.RoleStaff)
	customer := seedUser(t, env.db, "guardcustomer", constants.RoleCustomer)
	var unit models.HotpotUnit
	if err := env.db.Where("hotpot_type_id = ?", ht.ID).First(&unit).Error; err != nil {
		t.Fatalf("load unit failed: %v", err)
	}

	rr, err := env.replacements.CreateRequest(customer.ID, unit.ID, "wobbly stand")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}

	// assignment requires an approved request
	if _, err := env.replacements.AssignStaff(rr.ID, staff.ID); !errors.Is(err, ErrReplacementStatusInvalid) {
		t.Fatalf("assign pending want ErrReplacementStatusInvalid, got %v", err)
	}
	// only staff accounts can be assigned
	if _, err := env.replacements.ReviewRequest(rr.ID, true, ""); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if _, err := env.replacements.AssignStaff(rr.ID, customer.ID); !errors.Is(err, ErrStaffInvalid) {
		t.Fatalf("assign customer want ErrStaffInvalid, got %v", err)
	}
	// cancellation is requester-only and pending-only
	if _, err := env.replacements.CancelRequest(rr.ID, 9999); !errors.Is(err, ErrReplacementNotRequester) {
		t.Fatalf("foreign cancel want ErrReplacementNotRequester, got %v", err)
	}
	if _, err := env.replacements.CancelRequest(rr.ID, customer.ID); !errors.Is(err, ErrReplacementStatusInvalid) {
		t.Fatalf("approved cancel want ErrReplacementStatusInvalid, got %v", err)
	}
}
