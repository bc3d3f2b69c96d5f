package galleries

import (
	"time"

	"artgallery-api/internal/domain/users"
)

type Gallery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	CoverImage  *string   `gorm:"size:255" json:"cover_image"`
	Style       *string   `gorm:"size:50" json:"style"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`

	UserID uint        `gorm:"not null;index" json:"user_id"`
	Owner  *users.User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}
