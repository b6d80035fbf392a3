package models

import (
	"time"

	"gorm.io/gorm"
)

// Customization customer-built broth and ingredient selection
type Customization struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // primary key
	CustomerID uint           `gorm:"index;not null" json:"customer_id"`                        // owning customer
	Name       string         `gorm:"not null" json:"name"`                                     // display name
	BrothID    *uint          `gorm:"index" json:"broth_id,omitempty"`                          // selected broth ingredient
	Note       string         `gorm:"type:text" json:"note,omitempty"`                          // preparation note
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // computed price snapshot
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`                   // orderable switch
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // creation time
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                  // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // tombstone
}

// TableName table name
func (Customization) TableName() string {
	return "customizations"
}
