package adminapi

import (
	"errors"
	"io"
	"net/http"
	"path"

	"codedrop-app/database"
	"codedrop-app/internal/domain/catalog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListWorkFiles(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, work.Files)
}

// UploadFile handles POST /admin/works/:id/files (multipart: "file" +
// "description"). The content type is sniffed from the bytes, never taken
// from the client.
func UploadFile(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}

	filename := path.Base(header.Filename)
	contentType := mimetype.Detect(data).String()
	key := path.Join("files", work.ID, uuid.NewString(), filename)

	if err := Blobs.Save(c.Request.Context(), key, data, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	file := catalog.File{
		Description: c.PostForm("description"),
		WorkID:      work.ID,
		Path:        key,
		Filename:    filename,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
	if err := database.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	c.JSON(http.StatusCreated, file)
}

func DeleteFile(c *gin.Context) {
	var file catalog.File
	err := database.DB.First(&file, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load file"})
		return
	}

	if err := Blobs.Delete(c.Request.Context(), file.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	if err := database.DB.Delete(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
