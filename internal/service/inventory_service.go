package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/cache"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"gorm.io/gorm"
)

// InventoryService serialized unit registry: onboarding, availability counts
// and manual status flips outside the order lifecycle.
type InventoryService struct {
	unitRepo        repository.HotpotUnitRepository
	typeRepo        repository.HotpotTypeRepository
	maintenanceRepo repository.MaintenanceLogRepository
}

// NewInventoryService creates the inventory service
func NewInventoryService(unitRepo repository.HotpotUnitRepository, typeRepo repository.HotpotTypeRepository, maintenanceRepo repository.MaintenanceLogRepository) *InventoryService {
	return &InventoryService{
		unitRepo:        unitRepo,
		typeRepo:        typeRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// CountAvailable returns the available-unit count of a type, served from the
// cache when possible; the cache is repopulated on miss.
func (s *InventoryService) CountAvailable(ctx context.Context, hotpotTypeID uint) (int64, error) {
	if cached, hit, err := cache.GetAvailability(ctx, hotpotTypeID); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("availability_cache_read_failed", "hotpot_type_id", hotpotTypeID, "error", err)
	}
	count, err := s.unitRepo.CountAvailable(hotpotTypeID)
	if err != nil {
		return 0, err
	}
	if err := cache.SetAvailability(ctx, hotpotTypeID, count); err != nil {
		logger.Warnw("availability_cache_write_failed", "hotpot_type_id", hotpotTypeID, "error", err)
	}
	return count, nil
}

// ListUnits lists units matching the filter
func (s *InventoryService) ListUnits(filter repository.UnitListFilter) ([]models.HotpotUnit, int64, error) {
	return s.unitRepo.List(filter)
}

// GetUnit fetches a unit by ID
func (s *InventoryService) GetUnit(id uint) (*models.HotpotUnit, error) {
	unit, err := s.unitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnitNotFound, id)
	}
	return unit, nil
}

// OnboardUnits registers a batch of serialized units for a type
func (s *InventoryService) OnboardUnits(hotpotTypeID uint, serialNos []string) ([]models.HotpotUnit, error) {
	ht, err := s.typeRepo.GetByID(hotpotTypeID)
	if err != nil {
		return nil, err
	}
	if ht == nil {
		return nil, fmt.Errorf("%w: hotpot type %d", ErrItemNotFound, hotpotTypeID)
	}
	units := make([]models.HotpotUnit, 0, len(serialNos))
	for _, sn := range serialNos {
		sn = strings.TrimSpace(sn)
		if sn == "" {
			continue
		}
		units = append(units, models.HotpotUnit{
			HotpotTypeID: hotpotTypeID,
			SerialNo:     sn,
			Status:       constants.UnitStatusAvailable,
		})
	}
	if len(units) == 0 {
		return nil, ErrOrderQuantityInvalid
	}
	if err := s.unitRepo.CreateBatch(units); err != nil {
		return nil, err
	}
	s.invalidate(hotpotTypeID)
	logger.Infow("units_onboarded", "hotpot_type_id", hotpotTypeID, "count", len(units))
	return units, nil
}

// SendToMaintenance pulls an available unit out of the pool for service,
// opening a maintenance log in the same transaction.
func (s *InventoryService) SendToMaintenance(unitID uint, description string) (*models.MaintenanceLog, error) {
	unit, err := s.GetUnit(unitID)
	if err != nil {
		return nil, err
	}

	var log *models.MaintenanceLog
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.unitRepo.WithTx(tx).SetStatus(unitID, constants.UnitStatusAvailable, constants.UnitStatusMaintenance, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: unit %d is not available", ErrStatusTransitionInvalid, unitID)
		}
		equipmentName := unit.SerialNo
		if unit.HotpotType != nil {
			equipmentName = fmt.Sprintf("%s (%s)", unit.HotpotType.Name, unit.SerialNo)
		}
		log = &models.MaintenanceLog{
			HotpotUnitID:  unitID,
			EquipmentName: equipmentName,
			Description:   strings.TrimSpace(description),
			Status:        constants.MaintenanceLogStatusPending,
		}
		return s.maintenanceRepo.WithTx(tx).Create(log)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(unit.HotpotTypeID)
	return log, nil
}

// CompleteMaintenance closes a maintenance log and returns its unit to the pool
func (s *InventoryService) CompleteMaintenance(logID uint) error {
	log, err := s.maintenanceRepo.GetByID(logID)
	if err != nil {
		return err
	}
	if log == nil {
		return fmt.Errorf("%w: maintenance log %d", ErrItemNotFound, logID)
	}
	unit, err := s.GetUnit(log.HotpotUnitID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.maintenanceRepo.WithTx(tx).MarkCompleted(logID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: maintenance log %d already closed", ErrStatusTransitionInvalid, logID)
		}
		if _, err := s.unitRepo.WithTx(tx).SetStatus(unit.ID, constants.UnitStatusMaintenance, constants.UnitStatusAvailable, map[string]interface{}{
			"order_id": nil,
		}); err != nil {
			return err
		}
		return s.typeRepo.WithTx(tx).TouchLastMaintained(unit.HotpotTypeID, now)
	})
	if err != nil {
		return err
	}
	s.invalidate(unit.HotpotTypeID)
	logger.Infow("maintenance_completed", "maintenance_log_id", logID, "hotpot_unit_id", unit.ID)
	return nil
}

// ListMaintenanceLogs lists maintenance logs of a unit
func (s *InventoryService) ListMaintenanceLogs(hotpotUnitID uint, page, pageSize int) ([]models.MaintenanceLog, int64, error) {
	return s.maintenanceRepo.ListByUnit(hotpotUnitID, page, pageSize)
}

func (s *InventoryService) invalidate(hotpotTypeID uint) {
	if !cache.Enabled() {
		return
	}
	if err := cache.DelAvailability(context.Background(), hotpotTypeID); err != nil {
		logger.Warnw("availability_cache_invalidate_failed", "hotpot_type_id", hotpotTypeID, "error", err)
	}
}
