package models

import (
	"time"

	"gorm.io/gorm"
)

// Combo curated set menu sold at a fixed base price
type Combo struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                    // primary key
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`                        // combo name
	Description string         `gorm:"type:text" json:"description,omitempty"`                  // description
	BasePrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"base_price"` // fixed price
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`            // cover image
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`                  // selling switch
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                 // creation time
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                 // update time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                          // tombstone
}

// TableName table name
func (Combo) TableName() string {
	return "combos"
}
