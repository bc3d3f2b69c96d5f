package auth

import (
	"artgallery-api/internal/domain/users"

	"gorm.io/gorm"
)

// Authenticate looks up a user by username and verifies the password.
// A missing user and a wrong password are indistinguishable to the caller.
func Authenticate(db *gorm.DB, username, password string) (*users.User, bool) {
	var user users.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, false
	}
	return &user, true
}
