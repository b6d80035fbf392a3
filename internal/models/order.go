package models

import (
	"time"

	"gorm.io/gorm"
)

// Order customer order
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                       // primary key
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // order number
	CustomerID    uint           `gorm:"index;not null" json:"customer_id"`                          // owning customer
	Address       string         `gorm:"type:varchar(500)" json:"address"`                           // delivery address
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`                           // free-form notes
	Status        string         `gorm:"index;not null" json:"status"`                               // order status
	TotalPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`   // discount-adjusted total
	DepositAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"deposit"`       // hotpot deposit hold
	DiscountID    *uint          `gorm:"index" json:"discount_id,omitempty"`                         // applied discount
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                    // creation time
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                    // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                             // tombstone

	Items   []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`   // sale line items
	Rentals []RentalDetail `gorm:"foreignKey:OrderID" json:"rentals,omitempty"` // rental line items
	Payment *Payment       `gorm:"foreignKey:OrderID" json:"payment,omitempty"` // payment record
}

// TableName table name
func (Order) TableName() string {
	return "orders"
}
