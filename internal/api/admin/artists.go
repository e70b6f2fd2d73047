package adminapi

import (
	"errors"
	"net/http"

	"codedrop-app/database"
	"codedrop-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListArtists(c *gin.Context) {
	var artists []catalog.Artist
	if err := database.DB.Order("name ASC").Find(&artists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, artists)
}

func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	artist := catalog.Artist{Name: req.Name, URL: req.URL}
	if err := database.DB.Create(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func GetArtist(c *gin.Context) {
	var artist catalog.Artist
	err := database.DB.Preload("Works").First(&artist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func UpdateArtist(c *gin.Context) {
	var artist catalog.Artist
	err := database.DB.First(&artist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.URL != nil {
		artist.URL = *req.URL
	}

	if err := database.DB.Save(&artist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func DeleteArtist(c *gin.Context) {
	var artist catalog.Artist
	err := database.DB.First(&artist, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var works []catalog.Work
		if err := tx.Where("artist_id = ?", artist.ID).Find(&works).Error; err != nil {
			return err
		}
		for _, w := range works {
			if err := deleteWorkTx(c, tx, &w); err != nil {
				return err
			}
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
