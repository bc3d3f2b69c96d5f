package galleries

import (
	"net/http"

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

// GalleryDetail is the single-gallery response shape: the gallery plus its
// artworks, present even when empty.
type GalleryDetail struct {
	galleries.Gallery
	Artworks []artworks.Artwork `json:"artworks"`
}

// Create persists a gallery owned by the caller. The cover image is optional;
// when present it is stored under the uploads directory.
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

	var coverImage *string
	if fh, err := c.FormFile("cover_image"); err == nil && fh.Filename != "" {
		url, err := h.uploads.SaveUpload("gallery", user.ID, title, fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cover image"})
			return
		}
		coverImage = &url
	}

	gallery := galleries.Gallery{
		Title:       title,
		Description: formValue(c, "description"),
		Style:       formValue(c, "style"),
		CoverImage:  coverImage,
		UserID:      user.ID,
	}
	if err := h.db.Create(&gallery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gallery"})
		return
	}

	gallery.Owner = user
	c.JSON(http.StatusOK, gallery)
}

func (h *Handler) List(c *gin.Context) {
	all := make([]galleries.Gallery, 0)
	if err := h.db.Preload("Owner").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load galleries"})
		return
	}
	c.JSON(http.StatusOK, all)
}

// ListFeatured returns only galleries with the featured flag set.
func (h *Handler) ListFeatured(c *gin.Context) {
	featured := make([]galleries.Gallery, 0)
	if err := h.db.Preload("Owner").Where("is_featured = ?", true).Find(&featured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load galleries"})
		return
	}
	c.JSON(http.StatusOK, featured)
}

// GetByID returns a single gallery together with its artworks.
func (h *Handler) GetByID(c *gin.Context) {
	var gallery galleries.Gallery
	if err := h.db.Preload("Owner").First(&gallery, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery not found"})
		return
	}

	items := make([]artworks.Artwork, 0)
	if err := h.db.Preload("Artist").Where("gallery_id = ?", gallery.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, GalleryDetail{Gallery: gallery, Artworks: items})
}

// ListArtworks returns the artworks of a gallery.
func (h *Handler) ListArtworks(c *gin.Context) {
	items := make([]artworks.Artwork, 0)
	if err := h.db.Preload("Artist").Where("gallery_id = ?", c.Param("id")).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func formValue(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}
