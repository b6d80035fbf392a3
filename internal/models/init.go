package models

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultManager creates the bootstrap manager account on an empty users table
func InitDefaultManager(email, password string) error {
	var count int64
	DB.Model(&User{}).Where("role = ?", constants.RoleManager).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "manager@hotpot.local"
	}
	if password == "" {
		password = "manager123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager := User{
		Name:     "Manager",
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleManager,
		IsActive: true,
	}
	if err := DB.Create(&manager).Error; err != nil {
		return err
	}

	if password == "manager123" {
		logger.Warnw("default_manager_created_with_default_password", "email", email)
		logger.Warnw("default_manager_password_change_required", "email", email)
	} else {
		logger.Warnw("default_manager_created", "email", email, "password_hidden", true)
	}
	return nil
}
