package adminapi

import (
	"errors"
	"io"
	"net/http"
	"path"

	"codedrop-app/database"
	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListWorks(c *gin.Context) {
	var works []catalog.Work
	if err := database.DB.Preload("Artist").Preload("Image").
		Order("title ASC").Find(&works).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

func CreateWork(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var artist catalog.Artist
	err := database.DB.First(&artist, "id = ?", req.ArtistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	work := catalog.Work{Title: req.Title, ArtistID: artist.ID, Published: true}
	if req.Published != nil {
		work.Published = *req.Published
	}
	if err := database.DB.Create(&work).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work"})
		return
	}
	c.JSON(http.StatusCreated, work)
}

func GetWork(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, work)
}

func UpdateWork(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.ArtistID != nil {
		work.ArtistID = *req.ArtistID
	}
	if req.Published != nil {
		work.Published = *req.Published
	}

	if err := database.DB.Omit(clause.Associations).Save(work).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work"})
		return
	}
	c.JSON(http.StatusOK, work)
}

func PublishWork(c *gin.Context) {
	setPublished(c, true)
}

func UnpublishWork(c *gin.Context) {
	setPublished(c, false)
}

func setPublished(c *gin.Context, published bool) {
	work, ok := findWork(c)
	if !ok {
		return
	}
	if err := database.DB.Model(work).Update("published", published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": work.ID, "published": published})
}

// UploadWorkImage handles POST /admin/works/:id/image. The original is
// stored as-is and a 400x400 JPEG thumbnail is derived for the redemption
// screen.
func UploadWorkImage(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image upload"})
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

	thumb, err := media.MakeThumbnail(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}

	key := path.Join("images", work.ID, uuid.NewString(), path.Base(header.Filename))
	thumbKey := key + ".thumb.jpg"
	ctx := c.Request.Context()
	if err := Blobs.Save(ctx, key, data, header.Header.Get("Content-Type")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}
	if err := Blobs.Save(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store thumbnail"})
		return
	}

	img := media.Image{OriginalPath: key, ThumbnailPath: &thumbKey}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
		return tx.Model(work).Update("image_id", img.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

func DeleteWork(c *gin.Context) {
	work, ok := findWork(c)
	if !ok {
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteWorkTx(c, tx, work)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// deleteWorkTx removes a work and everything it exclusively owns: files
// (rows and blobs), batches and their codes.
func deleteWorkTx(c *gin.Context, tx *gorm.DB, work *catalog.Work) error {
	var files []catalog.File
	if err := tx.Where("work_id = ?", work.ID).Find(&files).Error; err != nil {
		return err
	}
	for _, f := range files {
		if err := Blobs.Delete(c.Request.Context(), f.Path); err != nil {
			return err
		}
	}
	if err := tx.Where("work_id = ?", work.ID).Delete(&catalog.File{}).Error; err != nil {
		return err
	}
	if err := tx.Where("batch_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).Model(&codes.Batch{}).Select("id").Where("work_id = ?", work.ID),
	).Delete(&codes.Code{}).Error; err != nil {
		return err
	}
	if err := tx.Where("work_id = ?", work.ID).Delete(&codes.Batch{}).Error; err != nil {
		return err
	}
	return tx.Delete(work).Error
}

func findWork(c *gin.Context) (*catalog.Work, bool) {
	var work catalog.Work
	err := database.DB.Preload("Artist").Preload("Image").Preload("Files").
		First(&work, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work"})
		return nil, false
	}
	return &work, true
}
