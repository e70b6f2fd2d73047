package redeemapi

import (
	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"
)

// ---------- requests

type ManualEntryRequest struct {
	Code string `json:"code" binding:"required,max=7"`
}

// ---------- responses

type ArtistDTO struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type WorkDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    ArtistDTO `json:"artist"`
	Thumbnail string    `json:"thumbnail_url,omitempty"`
}

type FileDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	DownloadURI string `json:"download_uri"`
}

// LookupResponse is the confirmation screen: what the code unlocks and how
// many uses it has left, before the user commits one.
type LookupResponse struct {
	Code          string  `json:"code"`
	Work          WorkDTO `json:"work"`
	Message       string  `json:"message_html,omitempty"`
	MaxUses       int     `json:"max_uses"`
	RemainingUses *int    `json:"remaining_uses,omitempty"` // absent when unlimited
}

type ConfirmResponse struct {
	Code    string    `json:"code"`
	Work    WorkDTO   `json:"work"`
	Message string    `json:"message_html,omitempty"`
	Token   string    `json:"token"`
	Files   []FileDTO `json:"files"`
}

func toWorkDTO(w *catalog.Work) WorkDTO {
	dto := WorkDTO{ID: w.ID, Title: w.Title}
	if w.Artist != nil {
		dto.Artist = ArtistDTO{Name: w.Artist.Name, URL: w.Artist.URL}
	}
	if w.Image != nil && w.Image.ThumbnailPath != nil {
		dto.Thumbnail = "/images/" + w.Image.ID + "/thumbnail"
	}
	return dto
}

func toLookupResponse(code *codes.Code) LookupResponse {
	resp := LookupResponse{Code: code.ID, MaxUses: code.MaxUses}
	if code.MaxUses != 0 {
		remaining := code.RemainingUses()
		resp.RemainingUses = &remaining
	}
	if code.Batch != nil {
		resp.Message = code.Batch.PublicMessageRendered
		if code.Batch.Work != nil {
			resp.Work = toWorkDTO(code.Batch.Work)
		}
	}
	return resp
}

func toFileDTOs(files []catalog.File, token string) []FileDTO {
	out := make([]FileDTO, 0, len(files))
	for _, f := range files {
		out = append(out, FileDTO{
			ID:          f.ID,
			Description: f.Description,
			Filename:    f.Filename,
			Size:        f.Size,
			DownloadURI: "/download/" + f.ID + "?t=" + token,
		})
	}
	return out
}
