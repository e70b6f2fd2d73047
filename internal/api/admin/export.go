package adminapi

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"codedrop-app/database"
	"codedrop-app/internal/domain/codes"

	"github.com/gin-gonic/gin"
)

var exportHeader = []string{
	"download_code", "artist", "title", "max_uses", "times_used",
	"last_used_date", "batch_id", "artist_id", "work_id",
}

type exportRow struct {
	DownloadCode string
	Artist       string
	Title        string
	MaxUses      int
	TimesUsed    int
	LastUsedDate *time.Time
	BatchID      string
	ArtistID     string
	WorkID       string
}

// ExportCodesCSV handles GET /admin/codes/export, optionally filtered by
// batch_id. Dates are formatted YYYY-MM-DD.
func ExportCodesCSV(c *gin.Context) {
	q := database.DB.Model(&codes.Code{}).
		Select(`codes.id AS download_code, artists.name AS artist, works.title AS title,
			codes.max_uses, codes.times_used, codes.last_used_date,
			codes.batch_id, artists.id AS artist_id, works.id AS work_id`).
		Joins("JOIN batches ON batches.id = codes.batch_id").
		Joins("JOIN works ON works.id = batches.work_id").
		Joins("JOIN artists ON artists.id = works.artist_id").
		Order("codes.created_at DESC")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("codes.batch_id = ?", batchID)
	}

	var rows []exportRow
	if err := q.Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export codes"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="download_codes.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(exportHeader); err != nil {
		return
	}
	for _, r := range rows {
		lastUsed := ""
		if r.LastUsedDate != nil {
			lastUsed = r.LastUsedDate.Format("2006-01-02")
		}
		record := []string{
			r.DownloadCode, r.Artist, r.Title,
			strconv.Itoa(r.MaxUses), strconv.Itoa(r.TimesUsed),
			lastUsed, r.BatchID, r.ArtistID, r.WorkID,
		}
		if err := w.Write(record); err != nil {
			return
		}
	}
	w.Flush()
}
