package users

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex:idx_users_username" json:"username"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	ProfileImage *string   `gorm:"size:255" json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}
