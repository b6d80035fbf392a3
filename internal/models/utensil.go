package models

import (
	"time"

	"gorm.io/gorm"
)

// Utensil countable kitchen tool, sellable or rentable by quantity
type Utensil struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // primary key
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`                   // utensil name
	Description string         `gorm:"type:text" json:"description,omitempty"`             // description
	Material    string         `gorm:"type:varchar(64)" json:"material,omitempty"`         // material
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`                 // stock on hand
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // unit price
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`             // selling switch
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                            // update time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // tombstone
}

// TableName table name
func (Utensil) TableName() string {
	return "utensils"
}
