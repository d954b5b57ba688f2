package web

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/config"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/layout"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Name() string                       { return "stub" }
func (p *stubProvider) Model() string                      { return "stub-model" }
func (p *stubProvider) Configure(cfg *config.Config) error { return nil }
func (p *stubProvider) IsLocal() bool                      { return true }
func (p *stubProvider) Send(ctx context.Context, messages []ai.Message) (string, error) {
	return p.reply, p.err
}

// blockingProvider replies only once release is closed, or fails when its
// context ends first.
type blockingProvider struct {
	stubProvider
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Send(ctx context.Context, messages []ai.Message) (string, error) {
	close(p.started)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.release:
		return p.reply, nil
	}
}

func newTestServer(t *testing.T, provider ai.Provider) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(layout.NewStore(), content.NewGenerator(provider, nil), nil)
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, nil)
	var body map[string]string
	resp := doJSON(t, http.MethodGet, ts.URL+"/health", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestGetConfigDefaults(t *testing.T) {
	_, ts := newTestServer(t, nil)
	var cfg layout.Configuration
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/config", nil, &cfg)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, layout.Default(), cfg)
}

func TestPatchConfig(t *testing.T) {
	s, ts := newTestServer(t, nil)

	patch := map[string]any{
		"colorTheme": map[string]string{"primary": "#FF0000"},
		"fontStyle":  map[string]string{"heading": "montserrat"},
	}
	var cfg layout.Configuration
	resp := doJSON(t, http.MethodPatch, ts.URL+"/api/config", patch, &cfg)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "#FF0000", cfg.ColorTheme.Primary)
	assert.Equal(t, "#333333", cfg.ColorTheme.Secondary)
	assert.Equal(t, "Montserrat", cfg.FontStyle.Heading)
	assert.Equal(t, cfg, s.store.Snapshot())
}

func TestPatchConfigRejectsUnknownFields(t *testing.T) {
	_, ts := newTestServer(t, nil)
	var e errorResponse
	resp := doJSON(t, http.MethodPatch, ts.URL+"/api/config", map[string]any{"layout": 1}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, e.Error)
}

func TestResetConfig(t *testing.T) {
	s, ts := newTestServer(t, nil)
	s.store.Update(layout.Patch{ColorTheme: &layout.ColorPatch{Primary: layout.Str("#000000")}})

	var cfg layout.Configuration
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/config/reset", nil, &cfg)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, layout.Default(), cfg)
}

func TestGenerate(t *testing.T) {
	s, ts := newTestServer(t, &stubProvider{reply: "Bold Bites\nFlavor first\nBook a Table"})

	var out generateResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/generate", generateRequest{Prompt: "  a cozy restaurant  "}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, content.SourceGenerated, out.Result.Source)
	assert.Equal(t, "Bold Bites", out.Config.Content.Title)
	assert.Equal(t, "a cozy restaurant", out.Config.Content.PromptText)
	assert.Equal(t, layout.BrandFood, out.Config.Brand)
	assert.False(t, s.store.Generating())
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	_, ts := newTestServer(t, &stubProvider{err: errors.New("503")})

	var out generateResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/generate", generateRequest{Prompt: "restaurant"}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, content.SourceFallback, out.Result.Source)
	assert.Equal(t, "Culinary Excellence", out.Config.Content.Title)
	assert.Equal(t, "Where Every Flavor Tells a Story", out.Config.Content.Tagline)
	assert.Equal(t, "Explore Our Menu", out.Config.Content.CTA)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	s, ts := newTestServer(t, &stubProvider{reply: "x"})
	var e errorResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/generate", generateRequest{Prompt: "   "}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, content.ErrEmptyPrompt.Error(), e.Error)
	assert.Equal(t, layout.Default(), s.store.Snapshot())
}

func TestGenerateWhileBusy(t *testing.T) {
	s, ts := newTestServer(t, &stubProvider{reply: "x"})
	require.NoError(t, s.store.TryBeginGenerate())
	defer s.store.EndGenerate()

	var e errorResponse
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/generate", generateRequest{Prompt: "tech"}, &e)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, layout.ErrBusy.Error(), e.Error)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func uploadBody(t *testing.T, files map[string][]byte, types map[string]string, order []string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range order {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		h.Set("Content-Type", types[name])
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(files[name])
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAddAndClearImages(t *testing.T) {
	s, ts := newTestServer(t, nil)

	body, ctype := uploadBody(t,
		map[string][]byte{"a.png": pngHeader, "notes.txt": []byte("hello"), "b.png": pngHeader},
		map[string]string{"a.png": "image/png", "notes.txt": "text/plain", "b.png": "image/png"},
		[]string{"a.png", "notes.txt", "b.png"},
	)
	resp, err := http.Post(ts.URL+"/api/images", ctype, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out imagesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Added)
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, "notes.txt", out.Skipped[0].Name)
	require.Len(t, s.store.Snapshot().Content.ProductImages, 2)
	assert.True(t, strings.HasPrefix(s.store.Snapshot().Content.ProductImages[0], "data:image/png;base64,"))
	assert.Equal(t, []string{"a", "b"}, s.store.Snapshot().Content.ProductCaptions)

	var cfg layout.Configuration
	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/images", nil, &cfg)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cfg.Content.ProductImages)
}

func TestAddImagesWithoutFiles(t *testing.T) {
	_, ts := newTestServer(t, nil)
	body, ctype := uploadBody(t, nil, nil, nil)
	resp, err := http.Post(ts.URL+"/api/images", ctype, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export?format=static-html")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "index.html", resp.Header.Get("X-Export-Filename"))

	var b bytes.Buffer
	_, err = b.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, b.String(), "<title>Shop the Look</title>")
}

func TestExportDefaultFormatAndUnknown(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "GeneratedLayout.tsx", resp.Header.Get("X-Export-Filename"))

	resp, err = http.Get(ts.URL + "/api/export?format=vue")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportZip(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/export/zip?format=react")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="export.zip"`, resp.Header.Get("Content-Disposition"))

	var b bytes.Buffer
	_, err = b.ReadFrom(resp.Body)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(b.Bytes()), int64(b.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 4)
	assert.Equal(t, "GeneratedLayout.tsx", zr.File[0].Name)
}

func TestPages(t *testing.T) {
	s, ts := newTestServer(t, nil)
	s.store.Update(layout.Patch{Content: &layout.ContentPatch{Title: layout.Str("Urban Threads")}})

	for _, path := range []string{"/", "/preview"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		var b bytes.Buffer
		_, err = b.ReadFrom(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"), path)
		assert.True(t, strings.HasPrefix(b.String(), "<!DOCTYPE html>"), path)
	}

	resp, err := http.Get(ts.URL + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	var b bytes.Buffer
	_, _ = b.ReadFrom(resp.Body)
	assert.Contains(t, b.String(), "Urban Threads")
}

func TestGenerateSurvivesClientDisconnect(t *testing.T) {
	p := &blockingProvider{
		stubProvider: stubProvider{reply: "Chef's Table\nFresh every day\nBook a Seat"},
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	s, _ := newTestServer(t, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"prompt":"a restaurant"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Routes().ServeHTTP(rec, req)
	}()

	<-p.started
	close(p.release)
	<-done

	cfg := s.store.Snapshot()
	assert.Equal(t, "Chef's Table", cfg.Content.Title)
	assert.Equal(t, "Book a Seat", cfg.Content.CTA)
	assert.False(t, s.store.Generating())
}
