package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ingredient measurable stock item sold by weight or volume
type Ingredient struct {
	ID          uint            `gorm:"primarykey" json:"id"`                                   // primary key
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`                       // ingredient name
	Description string          `gorm:"type:text" json:"description,omitempty"`                 // description
	Unit        string          `gorm:"type:varchar(32);not null" json:"unit"`                  // measurement unit (kg, l)
	Quantity    decimal.Decimal `gorm:"type:decimal(20,3);not null;default:0" json:"quantity"`  // stock on hand
	MinQuantity decimal.Decimal `gorm:"type:decimal(20,3);not null;default:0" json:"min_qty"`   // low-stock threshold
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`                 // selling switch
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`                                // creation time
	UpdatedAt   time.Time       `gorm:"index" json:"updated_at"`                                // update time
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`                                         // tombstone

	Prices []IngredientPrice `gorm:"foreignKey:IngredientID" json:"prices,omitempty"` // dated price records
}

// TableName table name
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientPrice dated price record; the latest effective one wins
type IngredientPrice struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                // primary key
	IngredientID  uint           `gorm:"index;not null" json:"ingredient_id"`                 // owning ingredient
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // price per unit
	EffectiveDate time.Time      `gorm:"index;not null" json:"effective_date"`                // effective-from date
	CreatedAt     time.Time      `json:"created_at"`                                          // creation time
	UpdatedAt     time.Time      `json:"updated_at"`                                          // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                      // tombstone
}

// TableName table name
func (IngredientPrice) TableName() string {
	return "ingredient_prices"
}
