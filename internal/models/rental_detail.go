package models

import (
	"time"

	"gorm.io/gorm"
)

// RentalDetail rental line item, one row per physical unit (or rented utensil batch)
type RentalDetail struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                      // primary key
	OrderID            uint           `gorm:"index;not null" json:"order_id"`                            // owning order
	HotpotUnitID       *uint          `gorm:"index" json:"hotpot_unit_id,omitempty"`                     // serialized unit reference
	UtensilID          *uint          `gorm:"index" json:"utensil_id,omitempty"`                         // rented utensil reference
	Quantity           int            `gorm:"not null;default:1" json:"quantity"`                        // utensil rental count (1 for units)
	RentalPrice        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"rental_price"` // rental price at order time
	StartDate          time.Time      `gorm:"index;not null" json:"start_date"`                          // rental start
	ExpectedReturnDate time.Time      `gorm:"index;not null" json:"expected_return_date"`                // agreed return date
	ActualReturnDate   *time.Time     `gorm:"index" json:"actual_return_date,omitempty"`                 // recorded return date
	LateFee            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"late_fee"`     // overdue penalty
	DamageFee          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"damage_fee"`   // damage penalty
	Notes              string         `gorm:"type:text" json:"notes,omitempty"`                          // append-only audit notes
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                   // creation time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                                   // update time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                            // tombstone
}

// TableName table name
func (RentalDetail) TableName() string {
	return "rental_details"
}
