package imagesapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	imagesapi "codedrop-app/internal/api/images"
	"codedrop-app/internal/domain/media"
	"codedrop-app/internal/storage"
	"codedrop-app/internal/testdb"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const thumbBytes = "not really a jpeg"

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB, storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	h := &imagesapi.Handler{DB: db, Store: store}
	r := gin.New()
	r.GET("/images/:id/thumbnail", h.Thumbnail)
	return r, db, store
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestThumbnailServed(t *testing.T) {
	r, db, store := newRouter(t)

	if err := store.Save(context.Background(), "images/x/thumb.jpg", []byte(thumbBytes), "image/jpeg"); err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	thumb := "images/x/thumb.jpg"
	img := media.Image{OriginalPath: "images/x/orig.png", ThumbnailPath: &thumb}
	if err := db.Create(&img).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}

	w := get(t, r, "/images/"+img.ID+"/thumbnail")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("Content-Type = %q", got)
	}
	if w.Body.String() != thumbBytes {
		t.Fatalf("body = %q, want thumbnail bytes", w.Body.String())
	}
}

func TestThumbnailUnknownImageIs404(t *testing.T) {
	r, _, _ := newRouter(t)

	w := get(t, r, "/images/00000000-0000-0000-0000-000000000000/thumbnail")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestThumbnailImageWithoutThumbnailIs404(t *testing.T) {
	r, db, _ := newRouter(t)

	img := media.Image{OriginalPath: "images/x/orig.png"}
	if err := db.Create(&img).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}

	w := get(t, r, "/images/"+img.ID+"/thumbnail")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
