package adminapi

// ---------- artists

type CreateArtistRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url"`
}

type UpdateArtistRequest struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// ---------- works

type CreateWorkRequest struct {
	Title     string `json:"title" binding:"required"`
	ArtistID  string `json:"artist_id" binding:"required"`
	Published *bool  `json:"published"`
}

type UpdateWorkRequest struct {
	Title     *string `json:"title"`
	ArtistID  *string `json:"artist_id"`
	Published *bool   `json:"published"`
}

// ---------- batches

type CreateBatchRequest struct {
	Label         string  `json:"label" binding:"required"`
	WorkID        string  `json:"work_id" binding:"required"`
	PrivateNote   string  `json:"private_note"`
	PublicMessage string  `json:"public_message"`
	NumberOfCodes *int    `json:"number_of_codes"`
	MaxUses       *int    `json:"max_uses"`
	CreatedBy     *string `json:"created_by"`
}

// UpdateBatchRequest deliberately has no NumberOfCodes field: generation is
// a write-once request and is never re-triggered on update.
type UpdateBatchRequest struct {
	Label         *string `json:"label"`
	PrivateNote   *string `json:"private_note"`
	PublicMessage *string `json:"public_message"`
	MaxUses       *int    `json:"max_uses"`
}

// ---------- codes

type CreateCodeRequest struct {
	BatchID string `json:"batch_id" binding:"required"`
	MaxUses *int   `json:"max_uses"`
}

type UpdateCodeRequest struct {
	MaxUses *int `json:"max_uses"`
}
