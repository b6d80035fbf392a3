package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount time-bounded percentage promotion
type Discount struct {
	ID          uint            `gorm:"primarykey" json:"id"`                                        // primary key
	Title       string          `gorm:"not null" json:"title"`                                       // promotion title
	Description string          `gorm:"type:text" json:"description,omitempty"`                      // description
	Percentage  int             `gorm:"not null" json:"percentage"`                                  // percent off, 1-100
	StartDate   time.Time       `gorm:"index;not null" json:"start_date"`                            // valid-from
	EndDate     time.Time       `gorm:"index;not null" json:"end_date"`                              // valid-until
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`                                     // creation time
	UpdatedAt   time.Time       `gorm:"index" json:"updated_at"`                                     // update time
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`                                              // tombstone
}

// TableName table name
func (Discount) TableName() string {
	return "discounts"
}
