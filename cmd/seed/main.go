package main

import (
	"fmt"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	seedUsers(stdLog.Printf)
	seedHotpotTypes(stdLog.Printf)
	seedIngredients(stdLog.Printf)
	seedUtensils(stdLog.Printf)
	seedCombos(stdLog.Printf)
	seedDiscounts(stdLog.Printf)

	stdLog.Printf("seed finished")
}

type printfFunc func(format string, args ...interface{})

func seedUsers(printf printfFunc) {
	users := []models.User{
		{Name: "Demo Manager", Email: "manager@hotpot.local", Role: constants.RoleManager, Phone: "0900000001"},
		{Name: "Demo Staff", Email: "staff@hotpot.local", Role: constants.RoleStaff, Phone: "0900000002"},
		{Name: "Demo Customer", Email: "customer@hotpot.local", Role: constants.RoleCustomer, Phone: "0900000003"},
	}
	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			printf("user already exists: %s", u.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("hotpot123"), bcrypt.DefaultCost)
		if err != nil {
			printf("failed to hash password for %s: %v", u.Email, err)
			continue
		}
		u.Password = string(hash)
		u.IsActive = true
		if err := models.DB.Create(&u).Error; err != nil {
			printf("failed to create user %s: %v", u.Email, err)
		} else {
			printf("created user: %s (%s)", u.Email, u.Role)
		}
	}
}

func seedHotpotTypes(printf printfFunc) {
	types := []struct {
		name        string
		description string
		price       int64
		units       int
	}{
		{"Classic Charcoal Pot", "Traditional copper charcoal hotpot", 100000, 5},
		{"Electric Divided Pot", "Dual-broth electric hotpot, 2 compartments", 150000, 4},
		{"Mini Personal Pot", "Single-serving induction pot", 60000, 6},
	}
	for _, t := range types {
		var existing models.HotpotType
		if err := models.DB.Where("name = ?", t.name).First(&existing).Error; err == nil {
			printf("hotpot type already exists: %s", t.name)
			continue
		}
		ht := models.HotpotType{
			Name:        t.name,
			Description: t.description,
			Price:       models.NewMoneyFromInt(t.price),
			IsActive:    true,
		}
		if err := models.DB.Create(&ht).Error; err != nil {
			printf("failed to create hotpot type %s: %v", t.name, err)
			continue
		}
		for i := 1; i <= t.units; i++ {
			unit := models.HotpotUnit{
				HotpotTypeID: ht.ID,
				SerialNo:     fmt.Sprintf("%s-%03d", serialPrefix(ht.ID), i),
				Status:       constants.UnitStatusAvailable,
			}
			if err := models.DB.Create(&unit).Error; err != nil {
				printf("failed to create unit %s: %v", unit.SerialNo, err)
			}
		}
		printf("created hotpot type: %s with %d units", t.name, t.units)
	}
}

func serialPrefix(typeID uint) string {
	return fmt.Sprintf("HT%02d", typeID)
}

func seedIngredients(printf printfFunc) {
	now := time.Now()
	ingredients := []struct {
		name  string
		unit  string
		qty   string
		min   string
		price int64
	}{
		{"Beef Slices", "kg", "50.000", "5.000", 45000},
		{"Spicy Broth Base", "l", "80.000", "10.000", 20000},
		{"Fresh Tofu", "kg", "30.000", "3.000", 8000},
		{"Enoki Mushroom", "kg", "25.000", "2.500", 12000},
	}
	for _, item := range ingredients {
		var existing models.Ingredient
		if err := models.DB.Where("name = ?", item.name).First(&existing).Error; err == nil {
			printf("ingredient already exists: %s", item.name)
			continue
		}
		qty, _ := decimal.NewFromString(item.qty)
		min, _ := decimal.NewFromString(item.min)
		ing := models.Ingredient{
			Name:        item.name,
			Unit:        item.unit,
			Quantity:    qty,
			MinQuantity: min,
			IsActive:    true,
		}
		if err := models.DB.Create(&ing).Error; err != nil {
			printf("failed to create ingredient %s: %v", item.name, err)
			continue
		}
		price := models.IngredientPrice{
			IngredientID:  ing.ID,
			Price:         models.NewMoneyFromInt(item.price),
			EffectiveDate: now,
		}
		if err := models.DB.Create(&price).Error; err != nil {
			printf("failed to create price for %s: %v", item.name, err)
		}
		printf("created ingredient: %s", item.name)
	}
}

func seedUtensils(printf printfFunc) {
	utensils := []struct {
		name     string
		material string
		qty      int
		price    int64
	}{
		{"Long Chopsticks", "bamboo", 200, 5000},
		{"Soup Ladle", "stainless steel", 80, 15000},
		{"Wire Strainer", "stainless steel", 60, 12000},
	}
	for _, item := range utensils {
		var existing models.Utensil
		if err := models.DB.Where("name = ?", item.name).First(&existing).Error; err == nil {
			printf("utensil already exists: %s", item.name)
			continue
		}
		u := models.Utensil{
			Name:     item.name,
			Material: item.material,
			Quantity: item.qty,
			Price:    models.NewMoneyFromInt(item.price),
			IsActive: true,
		}
		if err := models.DB.Create(&u).Error; err != nil {
			printf("failed to create utensil %s: %v", item.name, err)
		} else {
			printf("created utensil: %s", item.name)
		}
	}
}

func seedCombos(printf printfFunc) {
	combos := []struct {
		name        string
		description string
		price       int64
	}{
		{"Family Feast", "Beef, tofu, mushrooms and spicy broth for four", 350000},
		{"Date Night Duo", "Dual broth with premium beef for two", 220000},
	}
	for _, item := range combos {
		var existing models.Combo
		if err := models.DB.Where("name = ?", item.name).First(&existing).Error; err == nil {
			printf("combo already exists: %s", item.name)
			continue
		}
		combo := models.Combo{
			Name:        item.name,
			Description: item.description,
			BasePrice:   models.NewMoneyFromInt(item.price),
			IsActive:    true,
		}
		if err := models.DB.Create(&combo).Error; err != nil {
			printf("failed to create combo %s: %v", item.name, err)
		} else {
			printf("created combo: %s", item.name)
		}
	}
}

func seedDiscounts(printf printfFunc) {
	now := time.Now()
	var existing models.Discount
	if err := models.DB.Where("title = ?", "Grand Opening").First(&existing).Error; err == nil {
		printf("discount already exists: Grand Opening")
		return
	}
	discount := models.Discount{
		Title:       "Grand Opening",
		Description: "10% off all orders for the opening month",
		Percentage:  10,
		StartDate:   now,
		EndDate:     now.AddDate(0, 1, 0),
	}
	if err := models.DB.Create(&discount).Error; err != nil {
		printf("failed to create discount: %v", err)
	} else {
		printf("created discount: Grand Opening")
	}
}
