package models

import (
	"time"

	"gorm.io/gorm"
)

// User account record; role gates staff and manager operations
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`                            // primary key
	Name      string         `gorm:"not null" json:"name"`                            // display name
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`               // login email
	Password  string         `gorm:"not null" json:"-"`                               // bcrypt hash
	Phone     string         `gorm:"type:varchar(32)" json:"phone,omitempty"`         // contact phone
	Role      string         `gorm:"index;not null;default:'customer'" json:"role"`   // customer / staff / manager
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`          // account switch
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                         // creation time
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                         // update time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                  // tombstone
}

// TableName table name
func (User) TableName() string {
	return "users"
}
