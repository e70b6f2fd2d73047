package imagesapi

import (
	"errors"
	"net/http"

	"codedrop-app/internal/domain/media"
	"codedrop-app/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Store storage.Store
}

// Thumbnail handles GET /images/:id/thumbnail, serving the derived cover
// thumbnail shown on the redemption screen. Cover art is not gated by the
// download token.
func (h *Handler) Thumbnail(c *gin.Context) {
	var img media.Image
	err := h.DB.First(&img, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && img.ThumbnailPath == nil) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}

	reader, err := h.Store.Open(c.Request.Context(), *img.ThumbnailPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open image"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, "image/jpeg", reader, nil)
}
