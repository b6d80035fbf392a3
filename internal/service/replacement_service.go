package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"gorm.io/gorm"
)

// ReplacementService damaged-unit replacement workflow
type ReplacementService struct {
	replacementRepo repository.ReplacementRepository
	unitRepo        repository.HotpotUnitRepository
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceLogRepository
	notifier        *NotificationService
}

// NewReplacementService creates the replacement service
func NewReplacementService(
	replacementRepo repository.ReplacementRepository,
	unitRepo repository.HotpotUnitRepository,
	userRepo repository.UserRepository,
	maintenanceRepo repository.MaintenanceLogRepository,
	notifier *NotificationService,
) *ReplacementService {
	return &ReplacementService{
		replacementRepo: replacementRepo,
		unitRepo:        unitRepo,
		userRepo:        userRepo,
		maintenanceRepo: maintenanceRepo,
		notifier:        notifier,
	}
}

// GetRequest fetches a replacement request
func (s *ReplacementService) GetRequest(id uint) (*models.ReplacementRequest, error) {
	rr, err := s.replacementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, fmt.Errorf("%w: %d", ErrReplacementNotFound, id)
	}
	return rr, nil
}

// ListRequests lists replacement requests matching the filter
func (s *ReplacementService) ListRequests(filter repository.ReplacementListFilter) ([]models.ReplacementRequest, int64, error) {
	return s.replacementRepo.List(filter)
}

// CreateRequest opens a replacement claim for a unit. One active request per
// unit; a closed earlier request by the same customer for the same unit is
// reopened in place instead of inserting a duplicate row.
func (s *ReplacementService) CreateRequest(customerID, hotpotUnitID uint, reason string) (*models.ReplacementRequest, error) {
	if customerID == 0 {
		return nil, ErrUserNotFound
	}
	reason = strings.TrimSpace(reason)
	unit, err := s.unitRepo.GetByID(hotpotUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnitNotFound, hotpotUnitID)
	}

	var rr *models.ReplacementRequest
	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.replacementRepo.WithTx(tx)
		active, err := repo.FindActiveByUnit(hotpotUnitID)
		if err != nil {
			return err
		}
		if active != nil {
			return fmt.Errorf("%w: unit %d, request %d", ErrReplacementDuplicate, hotpotUnitID, active.ID)
		}

		closed, err := repo.FindClosedByCustomerAndUnit(customerID, hotpotUnitID)
		if err != nil {
			return err
		}
		if closed != nil {
			closed.Reason = reason
			closed.Status = constants.ReplacementStatusPending
			closed.AssignedStaffID = nil
			closed.ReviewNotes = ""
			closed.RequestDate = now
			closed.ReviewDate = nil
			closed.CompletionDate = nil
			rr = closed
			return repo.Update(closed)
		}

		rr = &models.ReplacementRequest{
			CustomerID:   customerID,
			HotpotUnitID: hotpotUnitID,
			Reason:       reason,
			Status:       constants.ReplacementStatusPending,
			RequestDate:  now,
		}
		return repo.Create(rr)
	})
	if err != nil {
		return nil, err
	}

	s.notifyBoth(rr, unit, "Replacement request submitted", customerID)
	return rr, nil
}

// ReviewRequest manager decision on a pending request
func (s *ReplacementService) ReviewRequest(id uint, approve bool, reviewNotes string) (*models.ReplacementRequest, error) {
	rr, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if rr.Status != constants.ReplacementStatusPending {
		return nil, fmt.Errorf("%w: review requires pending, got %s", ErrReplacementStatusInvalid, rr.Status)
	}

	now := time.Now()
	if approve {
		rr.Status = constants.ReplacementStatusApproved
	} else {
		rr.Status = constants.ReplacementStatusRejected
	}
	rr.ReviewNotes = strings.TrimSpace(reviewNotes)
	rr.ReviewDate = &now
	if err := s.replacementRepo.Update(rr); err != nil {
		return nil, err
	}

	s.notifyBoth(rr, rr.HotpotUnit, "Replacement request reviewed", 0)
	return rr, nil
}

// AssignStaff manager hands an approved request to a staff member
func (s *ReplacementService) AssignStaff(id, staffID uint) (*models.ReplacementRequest, error) {
	rr, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if rr.Status != constants.ReplacementStatusApproved {
		return nil, fmt.Errorf("%w: assignment requires approved, got %s", ErrReplacementStatusInvalid, rr.Status)
	}
	staff, err := s.userRepo.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.Role != constants.RoleStaff || !staff.IsActive {
		return nil, fmt.Errorf("%w: user %d", ErrStaffInvalid, staffID)
	}

	rr.AssignedStaffID = &staffID
	rr.Status = constants.ReplacementStatusInProgress
	if err := s.replacementRepo.Update(rr); err != nil {
		return nil, err
	}

	s.notifyBoth(rr, rr.HotpotUnit, "Replacement request assigned", staffID)
	return rr, nil
}

// VerifyEquipmentFaulty on-site check by the assigned staff member. Not faulty
// means no replacement is needed and the request closes as rejected.
func (s *ReplacementService) VerifyEquipmentFaulty(id, staffID uint, isFaulty bool, notes string) (*models.ReplacementRequest, error) {
	rr, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if rr.Status != constants.ReplacementStatusApproved && rr.Status != constants.ReplacementStatusInProgress {
		return nil, fmt.Errorf("%w: verification requires approved or in_progress, got %s", ErrReplacementStatusInvalid, rr.Status)
	}
	if rr.AssignedStaffID == nil || *rr.AssignedStaffID != staffID {
		return nil, ErrReplacementNotAssignee
	}

	if isFaulty {
		rr.Status = constants.ReplacementStatusInProgress
	} else {
		rr.Status = constants.ReplacementStatusRejected
	}
	appendReviewNote(rr, fmt.Sprintf("verification by staff %d: faulty=%t. %s", staffID, isFaulty, strings.TrimSpace(notes)))
	if err := s.replacementRepo.Update(rr); err != nil {
		return nil, err
	}

	s.notifyBoth(rr, rr.HotpotUnit, "Replacement request verified", staffID)
	return rr, nil
}

// CompleteRequest closes an in-progress replacement: the swap happened, a
// maintenance log is written for the faulty unit and it is parked under
// maintenance until serviced.
func (s *ReplacementService) CompleteRequest(id, staffID uint, completionNotes string) (*models.ReplacementRequest, error) {
	rr, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if rr.Status != constants.ReplacementStatusInProgress {
		return nil, fmt.Errorf("%w: completion requires in_progress, got %s", ErrReplacementStatusInvalid, rr.Status)
	}
	if rr.AssignedStaffID == nil || *rr.AssignedStaffID != staffID {
		return nil, ErrReplacementNotAssignee
	}

	unit, err := s.unitRepo.GetByID(rr.HotpotUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnitNotFound, rr.HotpotUnitID)
	}
	equipmentName := unit.SerialNo
	if unit.HotpotType != nil {
		equipmentName = fmt.Sprintf("%s (%s)", unit.HotpotType.Name, unit.SerialNo)
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		rr.Status = constants.ReplacementStatusCompleted
		rr.CompletionDate = &now
		appendReviewNote(rr, fmt.Sprintf("completed by staff %d. %s", staffID, strings.TrimSpace(completionNotes)))
		if err := s.replacementRepo.WithTx(tx).Update(rr); err != nil {
			return err
		}

		log := &models.MaintenanceLog{
			HotpotUnitID:  unit.ID,
			EquipmentName: equipmentName,
			Description:   fmt.Sprintf("%s; %s", rr.Reason, strings.TrimSpace(completionNotes)),
			Status:        constants.MaintenanceLogStatusCompleted,
			ResolvedAt:    &now,
		}
		if err := s.maintenanceRepo.WithTx(tx).Create(log); err != nil {
			return err
		}

		_, err := s.unitRepo.WithTx(tx).SetStatus(unit.ID, "", constants.UnitStatusMaintenance, map[string]interface{}{
			"condition": rr.Reason,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("replacement_completed", "request_id", rr.ID, "hotpot_unit_id", unit.ID, "staff_id", staffID)
	s.notifyBoth(rr, unit, "Replacement completed", staffID)
	return rr, nil
}

// CancelRequest the requester withdraws a still-pending claim
func (s *ReplacementService) CancelRequest(id, customerID uint) (*models.ReplacementRequest, error) {
	rr, err := s.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if rr.CustomerID != customerID {
		return nil, ErrReplacementNotRequester
	}
	if rr.Status != constants.ReplacementStatusPending {
		return nil, fmt.Errorf("%w: cancellation requires pending, got %s", ErrReplacementStatusInvalid, rr.Status)
	}

	rr.Status = constants.ReplacementStatusCancelled
	if err := s.replacementRepo.Update(rr); err != nil {
		return nil, err
	}

	s.notifyBoth(rr, rr.HotpotUnit, "Replacement request cancelled", customerID)
	return rr, nil
}

// notifyBoth every status change fans out to the customer and the staff role
func (s *ReplacementService) notifyBoth(rr *models.ReplacementRequest, unit *models.HotpotUnit, title string, actorID uint) {
	equipmentName := ""
	if unit != nil {
		equipmentName = unit.SerialNo
		if unit.HotpotType != nil {
			equipmentName = fmt.Sprintf("%s (%s)", unit.HotpotType.Name, unit.SerialNo)
		}
	}
	data := models.JSON{
		"request_id":     rr.ID,
		"equipment_name": equipmentName,
		"status":         rr.Status,
		"notes":          rr.ReviewNotes,
		"actor_id":       actorID,
	}
	body := fmt.Sprintf("Request #%d for %s is now %s", rr.ID, equipmentName, rr.Status)
	s.notifier.NotifyUser(rr.CustomerID, constants.NotificationTypeReplacementStatus, title, body, data)
	s.notifier.NotifyRole(constants.RoleStaff, constants.NotificationTypeReplacementStatus, title, body, data)
}

func appendReviewNote(rr *models.ReplacementRequest, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04:05"), note)
	if rr.ReviewNotes == "" {
		rr.ReviewNotes = stamped
		return
	}
	rr.ReviewNotes = rr.ReviewNotes + "\n" + stamped
}
