package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment single payment record per order
type Payment struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                // primary key
	OrderID       uint           `gorm:"uniqueIndex;not null" json:"order_id"`                // paid order
	Amount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // amount due
	Type          string         `gorm:"index;not null" json:"type"`                          // cash / online
	Status        string         `gorm:"index;not null;default:'pending'" json:"status"`      // pending / paid / cancelled
	TransactionNo string         `gorm:"index" json:"transaction_no,omitempty"`               // external reference
	PaidAt        *time.Time     `json:"paid_at,omitempty"`                                   // settlement time
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                             // creation time
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                             // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                      // tombstone
}

// TableName table name
func (Payment) TableName() string {
	return "payments"
}
