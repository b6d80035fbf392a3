package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem sale line item, exactly one of the catalog references is set
type OrderItem struct {
	ID              uint            `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID         uint            `gorm:"index;not null" json:"order_id"`                           // owning order
	IngredientID    *uint           `gorm:"index" json:"ingredient_id,omitempty"`                     // ingredient reference
	UtensilID       *uint           `gorm:"index" json:"utensil_id,omitempty"`                        // utensil-as-sale reference
	CustomizationID *uint           `gorm:"index" json:"customization_id,omitempty"`                  // customization reference
	ComboID         *uint           `gorm:"index" json:"combo_id,omitempty"`                          // combo reference
	Name            string          `gorm:"not null" json:"name"`                                     // item name snapshot
	Quantity        int             `gorm:"not null;default:0" json:"quantity"`                       // count (non-ingredient kinds)
	Volume          decimal.Decimal `gorm:"type:decimal(20,3);not null;default:0" json:"volume"`      // weight/volume (ingredient kind)
	UnitPrice       Money           `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // price snapshot at order time
	TotalPrice      Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // line subtotal
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt       time.Time       `gorm:"index" json:"updated_at"`                                  // update time
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`                                           // tombstone
}

// TableName table name
func (OrderItem) TableName() string {
	return "order_items"
}
