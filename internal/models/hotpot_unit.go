package models

import (
	"time"

	"gorm.io/gorm"
)

// HotpotUnit serialized physical hotpot unit
type HotpotUnit struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                  // primary key
	HotpotTypeID uint           `gorm:"index;not null" json:"hotpot_type_id"`                  // owning type
	SerialNo     string         `gorm:"uniqueIndex;not null" json:"serial_no"`                 // physical serial number
	Status       string         `gorm:"index;not null;default:'available'" json:"status"`      // available / in_use / maintenance
	Condition    string         `gorm:"type:varchar(255)" json:"condition,omitempty"`          // last observed condition
	OrderID      *uint          `gorm:"index" json:"order_id,omitempty"`                       // reserving order while in use
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                               // creation time
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                               // update time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                        // tombstone

	HotpotType *HotpotType `gorm:"foreignKey:HotpotTypeID" json:"hotpot_type,omitempty"` // type info
}

// TableName table name
func (HotpotUnit) TableName() string {
	return "hotpot_units"
}
