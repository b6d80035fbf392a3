package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	orders       *OrderService
	rentals      *RentalService
	replacements *ReplacementService
	discounts    *DiscountService
	inventory    *InventoryService
	payments     *PaymentService
}

func setupServiceTest(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	unitRepo := repository.NewHotpotUnitRepository(db)
	typeRepo := repository.NewHotpotTypeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	utensilRepo := repository.NewUtensilRepository(db)
	customizationRepo := repository.NewCustomizationRepository(db)
	comboRepo := repository.NewComboRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	replacementRepo := repository.NewReplacementRepository(db)
	maintenanceRepo := repository.NewMaintenanceLogRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := NewNotificationService(notificationRepo, nil)
	payments := NewPaymentService(paymentRepo)
	orders := NewOrderService(
		orderRepo, unitRepo, typeRepo, ingredientRepo, utensilRepo,
		customizationRepo, comboRepo, discountRepo, paymentRepo,
		payments, notifier, constants.DefaultDepositPercent,
	)
	return &testEnv{
		db:           db,
		orders:       orders,
		rentals:      NewRentalService(rentalRepo, orderRepo, constants.DefaultLateFeePercent),
		replacements: NewReplacementService(replacementRepo, unitRepo, userRepo, maintenanceRepo, notifier),
		discounts:    NewDiscountService(discountRepo, orderRepo),
		inventory:    NewInventoryService(unitRepo, typeRepo, maintenanceRepo),
		payments:     payments,
	}
}

func seedHotpotType(t *testing.T, db *gorm.DB, name string, price int64, units int) *models.HotpotType {
	t.Helper()
	ht := &models.HotpotType{
		Name:     name,
		Price:    models.NewMoneyFromInt(price),
		IsActive: true,
	}
	if err := db.Create(ht).Error; err != nil {
		t.Fatalf("seed hotpot type failed: %v", err)
	}
	for i := 1; i <= units; i++ {
		unit := &models.HotpotUnit{
			HotpotTypeID: ht.ID,
			SerialNo:     fmt.Sprintf("%s-%03d", name, i),
			Status:       constants.UnitStatusAvailable,
		}
		if err := db.Create(unit).Error; err != nil {
			t.Fatalf("seed hotpot unit failed: %v", err)
		}
	}
	return ht
}

func seedIngredient(t *testing.T, db *gorm.DB, name, quantity string, price int64) *models.Ingredient {
	t.Helper()
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		t.Fatalf("bad quantity %q: %v", quantity, err)
	}
	ing := &models.Ingredient{
		Name:     name,
		Unit:     "kg",
		Quantity: qty,
		IsActive: true,
	}
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("seed ingredient failed: %v", err)
	}
	record := &models.IngredientPrice{
		IngredientID:  ing.ID,
		Price:         models.NewMoneyFromInt(price),
		EffectiveDate: time.Now().Add(-time.Hour),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("seed ingredient price failed: %v", err)
	}
	return ing
}

func seedUtensil(t *testing.T, db *gorm.DB, name string, quantity int, price int64) *models.Utensil {
	t.Helper()
	u := &models.Utensil{
		Name:     name,
		Quantity: quantity,
		Price:    models.NewMoneyFromInt(price),
		IsActive: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed utensil failed: %v", err)
	}
	return u
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     name,
		Email:    name + "@hotpot.local",
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return u
}

func uintPtr(v uint) *uint {
	return &v
}

func decimalOne() decimal.Decimal {
	return decimal.NewFromInt(1)
}

func unitStatuses(t *testing.T, db *gorm.DB, typeID uint) map[string]int {
	t.Helper()
	var units []models.HotpotUnit
	if err := db.Where("hotpot_type_id = ?", typeID).Find(&units).Error; err != nil {
		t.Fatalf("load units failed: %v", err)
	}
	counts := map[string]int{}
	for _, u := range units {
		counts[u.Status]++
	}
	return counts
}

func moneyEquals(m models.Money, want int64) bool {
	return m.Equal(decimal.NewFromInt(want))
}
