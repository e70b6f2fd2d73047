package redeemapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	redeemapi "codedrop-app/internal/api/redeem"
	"codedrop-app/internal/domain/activity"
	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/domain/events"
	"codedrop-app/internal/domain/redemption"
	"codedrop-app/internal/testdb"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	router *gin.Engine
	code   *codes.Code
	file   *catalog.File
}

func newFixture(t *testing.T, published bool, maxUses, timesUsed int) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)

	artist := catalog.Artist{Name: "Sharp Violet", URL: "https://sharpviolet.example"}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	work := catalog.Work{Title: "Night Sessions", ArtistID: artist.ID, Published: published}
	if err := db.Create(&work).Error; err != nil {
		t.Fatalf("seed work: %v", err)
	}
	file := catalog.File{
		Description: "High-quality FLAC",
		WorkID:      work.ID,
		Path:        "files/x/track.flac",
		Filename:    "track.flac",
		Size:        12,
		ContentType: "audio/flac",
	}
	if err := db.Create(&file).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}
	batch := codes.Batch{
		Label:         "launch",
		WorkID:        work.ID,
		PublicMessage: "Enjoy the *record*",
		MaxUses:       maxUses,
	}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	code := codes.Code{BatchID: batch.ID, MaxUses: maxUses, TimesUsed: timesUsed}
	if err := db.Create(&code).Error; err != nil {
		t.Fatalf("seed code: %v", err)
	}

	h := &redeemapi.Handler{
		DB:       db,
		Redeemer: &redemption.Redeemer{DB: db, Events: events.NewDispatcher()},
		Activity: &activity.Logger{Log: slog.New(slog.NewJSONHandler(io.Discard, nil))},
	}

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/redeem", h.ManualEntry)
	r.GET("/redeem/:code", h.Lookup)
	r.POST("/redeem/:code", h.Confirm)

	return &fixture{db: db, router: r, code: &code, file: &file}
}

func (f *fixture) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestLookupShowsConfirmationDetails(t *testing.T) {
	f := newFixture(t, true, 3, 1)

	w := f.do(t, http.MethodGet, "/redeem/"+f.code.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp redeemapi.LookupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Work.Title != "Night Sessions" || resp.Work.Artist.Name != "Sharp Violet" {
		t.Fatalf("work = %+v", resp.Work)
	}
	if !strings.Contains(resp.Message, "<em>record</em>") {
		t.Fatalf("message = %q, want rendered markdown", resp.Message)
	}
	if resp.RemainingUses == nil || *resp.RemainingUses != 2 {
		t.Fatalf("remaining uses = %v, want 2", resp.RemainingUses)
	}
}

func TestLookupUnpublishedWorkIs404(t *testing.T) {
	f := newFixture(t, false, 3, 0)

	w := f.do(t, http.MethodGet, "/redeem/"+f.code.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// A spent code still passes the URL entry point but fails the manual-entry
// form: the loose/strict asymmetry.
func TestSpentCodeLoosePassesStrictFails(t *testing.T) {
	f := newFixture(t, true, 1, 1)

	w := f.do(t, http.MethodGet, "/redeem/"+f.code.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("loose lookup status = %d, want 200", w.Code)
	}

	body, _ := json.Marshal(redeemapi.ManualEntryRequest{Code: f.code.ID})
	w = f.do(t, http.MethodPost, "/redeem", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("manual entry status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("manual entry body %q missing inline error", w.Body.String())
	}
}

func TestManualEntryRedirectsToRedeemPath(t *testing.T) {
	f := newFixture(t, true, 3, 0)

	body, _ := json.Marshal(redeemapi.ManualEntryRequest{Code: strings.ToLower(f.code.ID)})
	w := f.do(t, http.MethodPost, "/redeem", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["redirect"] != "/redeem/"+f.code.ID {
		t.Fatalf("redirect = %q, want %q", resp["redirect"], "/redeem/"+f.code.ID)
	}
}

func TestConfirmRedeemsAndAuthorizesDownloads(t *testing.T) {
	f := newFixture(t, true, 3, 0)

	w := f.do(t, http.MethodPost, "/redeem/"+f.code.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp redeemapi.ConfirmResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("confirm response has no token")
	}
	if len(resp.Files) != 1 || resp.Files[0].Filename != "track.flac" {
		t.Fatalf("files = %+v", resp.Files)
	}
	if !strings.Contains(resp.Files[0].DownloadURI, "?t="+resp.Token) {
		t.Fatalf("download uri %q missing token", resp.Files[0].DownloadURI)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("confirm did not set a session cookie")
	}

	var after codes.Code
	if err := f.db.First(&after, "id = ?", f.code.ID).Error; err != nil {
		t.Fatalf("reload code: %v", err)
	}
	if after.TimesUsed != 1 {
		t.Fatalf("TimesUsed = %d, want 1", after.TimesUsed)
	}
	if after.LastUsedDate == nil {
		t.Fatal("LastUsedDate not set")
	}
}

func TestConfirmUnpublishedWorkIs404(t *testing.T) {
	f := newFixture(t, false, 3, 0)

	w := f.do(t, http.MethodPost, "/redeem/"+f.code.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// A confirmation that fails must not consume a use: rejecting the request
// after the counter moved would leave the user with one use fewer and no
// token.
func TestConfirmWithoutUserAgentConsumesNothing(t *testing.T) {
	f := newFixture(t, true, 3, 0)

	req := httptest.NewRequest(http.MethodPost, "/redeem/"+f.code.ID, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for missing user agent", w.Code)
	}

	var after codes.Code
	if err := f.db.First(&after, "id = ?", f.code.ID).Error; err != nil {
		t.Fatalf("reload code: %v", err)
	}
	if after.TimesUsed != 0 {
		t.Fatalf("TimesUsed = %d after failed confirmation, want 0", after.TimesUsed)
	}
	if after.LastUsedDate != nil {
		t.Fatal("LastUsedDate set after failed confirmation")
	}
}
