package models

import (
	"time"

	"gorm.io/gorm"
)

// MaintenanceLog repair ticket opened when a unit enters maintenance
type MaintenanceLog struct {
	ID            uint           `gorm:"primarykey" json:"id"`                           // primary key
	HotpotUnitID  uint           `gorm:"index;not null" json:"hotpot_unit_id"`           // serviced unit
	EquipmentName string         `gorm:"not null" json:"equipment_name"`                 // unit name snapshot
	Description   string         `gorm:"type:text" json:"description"`                   // fault description
	Status        string         `gorm:"index;not null;default:'pending'" json:"status"` // pending / completed
	ResolvedAt    *time.Time     `json:"resolved_at,omitempty"`                          // completion time
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                        // creation time
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                        // update time
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                 // tombstone
}

// TableName table name
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
