package artworks

import (
	"net/http"
	"strconv"

	"artgallery-api/internal/app/http/middleware"
	"artgallery-api/internal/domain/artworks"
	"artgallery-api/internal/domain/galleries"
	"artgallery-api/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db      *gorm.DB
	uploads *storage.Store
}

func NewHandler(db *gorm.DB, uploads *storage.Store) *Handler {
	return &Handler{db: db, uploads: uploads}
}

// Create persists an artwork in a gallery the caller owns. The gallery must
// exist and belong to the caller; both failures look like 404. The image
// file is mandatory.
func (h *Handler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	galleryID, err := strconv.Atoi(c.PostForm("gallery_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery_id"})
		return
	}

	var gallery galleries.Gallery
	if err := h.db.Where("id = ? AND user_id = ?", galleryID, user.ID).First(&gallery).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found or access denied"})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil || fh.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	var year *int
	if raw := c.PostForm("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = &y
	}

	imageURL, err := h.uploads.SaveUpload("artwork", user.ID, title, fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	artwork := artworks.Artwork{
		Title:       title,
		Description: formValue(c, "description"),
		Medium:      formValue(c, "medium"),
		Dimensions:  formValue(c, "dimensions"),
		Year:        year,
		Price:       formValue(c, "price"),
		ImageURL:    imageURL,
		GalleryID:   gallery.ID,
		UserID:      user.ID,
	}
	if err := h.db.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	artwork.Artist = user
	c.JSON(http.StatusOK, artwork)
}

func (h *Handler) GetByID(c *gin.Context) {
	var artwork artworks.Artwork
	if err := h.db.Preload("Artist").First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func formValue(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}
