package models

import (
	"time"

	"gorm.io/gorm"
)

// HotpotType rentable hotpot product type
type HotpotType struct {
	ID               uint           `gorm:"primarykey" json:"id"`                               // primary key
	Name             string         `gorm:"uniqueIndex;not null" json:"name"`                   // product name
	Description      string         `gorm:"type:text" json:"description,omitempty"`             // description
	Price            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // rental price per unit
	IsActive         bool           `gorm:"not null;default:true" json:"is_active"`             // selling switch
	LastMaintainedAt *time.Time     `gorm:"index" json:"last_maintained_at,omitempty"`          // post-return service stamp
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                            // creation time
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                            // update time
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                     // tombstone

	Units []HotpotUnit `gorm:"foreignKey:HotpotTypeID" json:"units,omitempty"` // serialized units
}

// TableName table name
func (HotpotType) TableName() string {
	return "hotpot_types"
}
