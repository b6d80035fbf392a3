package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification persisted message for a user or a whole role
type Notification struct {
	ID         uint           `gorm:"primarykey" json:"id"`                    // primary key
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"`          // target user, nil for role broadcast
	TargetRole string         `gorm:"index" json:"target_role,omitempty"`      // target role, empty for direct
	Type       string         `gorm:"index;not null" json:"type"`              // notification kind
	Title      string         `gorm:"not null" json:"title"`                   // short headline
	Body       string         `gorm:"type:text" json:"body"`                   // message body
	Data       JSON           `gorm:"type:text" json:"data,omitempty"`         // structured payload
	IsRead     bool           `gorm:"not null;default:false" json:"is_read"`   // read flag
	SentAt     *time.Time     `json:"sent_at,omitempty"`                       // worker dispatch time
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                 // creation time
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                 // update time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                          // tombstone
}

// TableName table name
func (Notification) TableName() string {
	return "notifications"
}
