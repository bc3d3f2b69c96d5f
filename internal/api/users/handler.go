package users

import (
	"net/http"

	"artgallery-api/internal/domain/artworks"
	"artgallery-api/internal/domain/galleries"
	"artgallery-api/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) List(c *gin.Context) {
	all := make([]users.User, 0)
	if err := h.db.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, all)
}

func (h *Handler) GetByID(c *gin.Context) {
	var user users.User
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListGalleries returns all galleries owned by the given user.
func (h *Handler) ListGalleries(c *gin.Context) {
	owned := make([]galleries.Gallery, 0)
	if err := h.db.Preload("Owner").Where("user_id = ?", c.Param("id")).Find(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load galleries"})
		return
	}
	c.JSON(http.StatusOK, owned)
}

// ListArtworks returns all artworks created by the given user.
func (h *Handler) ListArtworks(c *gin.Context) {
	created := make([]artworks.Artwork, 0)
	if err := h.db.Preload("Artist").Where("user_id = ?", c.Param("id")).Find(&created).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, created)
}
