package downloadapi

import (
	"errors"
	"fmt"
	"net/http"

	"codedrop-app/internal/domain/activity"
	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/download"
	"codedrop-app/internal/domain/events"
	"codedrop-app/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Store    storage.Store
	Events   *events.Dispatcher
	Activity *activity.Logger
}

// Download handles GET /download/:file_id?t=... The token check is the
// only gate: it does not re-verify the work's publish state or the code's
// remaining uses, because the session already proved a recent redemption.
func (h *Handler) Download(c *gin.Context) {
	stored, _ := sessions.Default(c).Get(download.SessionKey).(string)
	if !download.CheckToken(stored, c.Query("t")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You do not have permission to access this resource."})
		return
	}

	var file catalog.File
	err := h.DB.First(&file, "id = ?", c.Param("file_id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "The file you requested does not exist."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load file"})
		return
	}

	if err := h.Activity.Record("File Downloaded", &file, file.ID, activity.FromRequest(c.Request)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record download"})
		return
	}

	h.Events.Publish(events.Event{
		Kind:      events.KindFilePreDownload,
		SubjectID: file.ID,
		Payload:   &file,
	})

	reader, err := h.Store.Open(c.Request.Context(), file.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Filename),
	}
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, reader, extraHeaders)
}
