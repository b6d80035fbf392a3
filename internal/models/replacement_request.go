package models

import (
	"time"

	"gorm.io/gorm"
)

// ReplacementRequest customer claim of a faulty rented unit
type ReplacementRequest struct {
	ID              uint           `gorm:"primarykey" json:"id"`                           // primary key
	CustomerID      uint           `gorm:"index;not null" json:"customer_id"`              // requesting customer
	HotpotUnitID    uint           `gorm:"index;not null" json:"hotpot_unit_id"`           // claimed unit
	AssignedStaffID *uint          `gorm:"index" json:"assigned_staff_id,omitempty"`       // handling staff, set on assignment
	Reason          string         `gorm:"type:text;not null" json:"reason"`               // reported problem
	Status          string         `gorm:"index;not null;default:'pending'" json:"status"` // workflow status
	ReviewNotes     string         `gorm:"type:text" json:"review_notes,omitempty"`        // manager decision notes
	RequestDate     time.Time      `gorm:"index;not null" json:"request_date"`             // submitted at
	ReviewDate      *time.Time     `json:"review_date,omitempty"`                          // approved / rejected at
	CompletionDate  *time.Time     `json:"completion_date,omitempty"`                      // closed at
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                        // creation time
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                        // update time
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                 // tombstone

	HotpotUnit *HotpotUnit `gorm:"foreignKey:HotpotUnitID" json:"hotpot_unit,omitempty"` // claimed unit detail
}

// TableName table name
func (ReplacementRequest) TableName() string {
	return "replacement_requests"
}
