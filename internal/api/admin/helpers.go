package adminapi

import (
	"codedrop-app/internal/storage"
)

// Blobs is the blob store used by the upload and delete handlers. Wired in
// RegisterRoutes.
var Blobs storage.Store
