package adminapi

import (
	"errors"
	"net/http"

	"codedrop-app/database"
	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListBatches(c *gin.Context) {
	var batches []codes.Batch
	q := database.DB.Preload("Work.Artist").Order("created_at DESC")
	if workID := c.Query("work_id"); workID != "" {
		q = q.Where("work_id = ?", workID)
	}
	if err := q.Find(&batches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load batches"})
		return
	}
	c.JSON(http.StatusOK, batches)
}

// CreateBatch creates a batch and generates its codes in one transaction;
// a batch created with number_of_codes = N has exactly N codes afterwards.
func CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var work catalog.Work
	err := database.DB.First(&work, "id = ?", req.WorkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Work not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load work"})
		return
	}

	batch := codes.Batch{
		Label:         req.Label,
		WorkID:        work.ID,
		PrivateNote:   req.PrivateNote,
		PublicMessage: req.PublicMessage,
		NumberOfCodes: codes.DefaultNumberOfCodes,
		MaxUses:       codes.DefaultMaxUses,
		CreatedBy:     req.CreatedBy,
	}
	if req.NumberOfCodes != nil {
		batch.NumberOfCodes = *req.NumberOfCodes
	}
	if req.MaxUses != nil {
		batch.MaxUses = *req.MaxUses
	}

	if err := codes.CreateBatch(database.DB, &batch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create batch"})
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func GetBatch(c *gin.Context) {
	batch, ok := findBatch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, batch)
}

// UpdateBatch edits batch metadata. number_of_codes is write-once: updates
// never generate additional codes.
func UpdateBatch(c *gin.Context) {
	batch, ok := findBatch(c)
	if !ok {
		return
	}

	var req UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Label != nil {
		batch.Label = *req.Label
	}
	if req.PrivateNote != nil {
		batch.PrivateNote = *req.PrivateNote
	}
	if req.PublicMessage != nil {
		batch.PublicMessage = *req.PublicMessage
	}
	if req.MaxUses != nil {
		batch.MaxUses = *req.MaxUses
	}

	if err := database.DB.Omit(clause.Associations).Save(batch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update batch"})
		return
	}
	c.JSON(http.StatusOK, batch)
}

func DeleteBatch(c *gin.Context) {
	batch, ok := findBatch(c)
	if !ok {
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", batch.ID).Delete(&codes.Code{}).Error; err != nil {
			return err
		}
		return tx.Delete(batch).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete batch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func findBatch(c *gin.Context) (*codes.Batch, bool) {
	var batch codes.Batch
	err := database.DB.Preload("Work.Artist").First(&batch, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load batch"})
		return nil, false
	}
	return &batch, true
}
