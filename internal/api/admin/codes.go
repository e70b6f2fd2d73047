package adminapi

import (
	"errors"
	"net/http"

	"codedrop-app/database"
	"codedrop-app/internal/domain/codes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CodeView struct {
	codes.Code
	RemainingUses int    `json:"remaining_uses"`
	RedeemURI     string `json:"redeem_uri"`
}

func toCodeView(c codes.Code) CodeView {
	return CodeView{Code: c, RemainingUses: c.RemainingUses(), RedeemURI: c.RedeemURI()}
}

func ListCodes(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	var list []codes.Code
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load codes"})
		return
	}

	out := make([]CodeView, 0, len(list))
	for _, code := range list {
		out = append(out, toCodeView(code))
	}
	c.JSON(http.StatusOK, out)
}

// CreateCode adds a single code to an existing batch, outside the batch's
// original generation request.
func CreateCode(c *gin.Context) {
	var req CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var batch codes.Batch
	err := database.DB.First(&batch, "id = ?", req.BatchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load batch"})
		return
	}

	code := codes.Code{BatchID: batch.ID, MaxUses: batch.MaxUses}
	if req.MaxUses != nil {
		code.MaxUses = *req.MaxUses
	}
	if err := database.DB.Create(&code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create code"})
		return
	}
	c.JSON(http.StatusCreated, toCodeView(code))
}

// UpdateCode can only adjust max_uses. The use counter belongs to the
// redemption flow and is not writable here.
func UpdateCode(c *gin.Context) {
	var code codes.Code
	err := database.DB.First(&code, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Code not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load code"})
		return
	}

	var req UpdateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.MaxUses != nil {
		if err := database.DB.Model(&code).Update("max_uses", *req.MaxUses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update code"})
			return
		}
	}
	c.JSON(http.StatusOK, toCodeView(code))
}

func DeleteCode(c *gin.Context) {
	res := database.DB.Delete(&codes.Code{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete code"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
