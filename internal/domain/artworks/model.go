package artworks

import (
	"time"

	"artgallery-api/internal/domain/galleries"
	"artgallery-api/internal/domain/users"
)

type Artwork struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Medium      *string   `gorm:"size:50" json:"medium"`
	Dimensions  *string   `gorm:"size:100" json:"dimensions"`
	Year        *int      `json:"year"`
	Price       *string   `gorm:"size:50" json:"price"`
	ImageURL    string    `gorm:"size:255;not null" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	GalleryID uint               `gorm:"not null;index" json:"gallery_id"`
	Gallery   *galleries.Gallery `gorm:"foreignKey:GalleryID" json:"-"`

	UserID uint        `gorm:"not null;index" json:"user_id"`
	Artist *users.User `gorm:"foreignKey:UserID" json:"artist,omitempty"`
}
