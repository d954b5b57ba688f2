package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/phravins/pagecraft/internal/archive"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/internal/preview"
	"github.com/phravins/pagecraft/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = generatorPage(s.store.Snapshot(), s.defaultFormat).Render(w)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = preview.Page(s.store.Snapshot()).Render(w)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handlePatchConfig(w http.ResponseWriter, r *http.Request) {
	var p layout.Patch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid patch: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, s.store.Update(p.ResolveFonts()))
}

func (s *Server) handleResetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Reset())
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Result content.Result       `json:"result"`
	Config layout.Configuration `json:"config"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	prompt, err := content.ValidatePrompt(req.Prompt)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.store.TryBeginGenerate(); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	defer s.store.EndGenerate()

	// A client that goes away must not cut the request short; the
	// provider's client timeout bounds it instead.
	res := s.gen.Generate(context.WithoutCancel(r.Context()), prompt)
	cfg := s.store.Update(res.Patch(prompt))
	writeJSON(w, http.StatusOK, generateResponse{Result: res, Config: cfg})
}

type imagesResponse struct {
	Added   int                  `json:"added"`
	Skipped []layout.Skipped     `json:"skipped"`
	Config  layout.Configuration `json:"config"`
}

func uploadSource(fh *multipart.FileHeader) layout.ImageSource {
	return layout.ImageSource{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func (s *Server) handleAddImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, errors.New(`no files in field "images"`))
		return
	}
	sources := make([]layout.ImageSource, len(headers))
	for i, fh := range headers {
		sources[i] = uploadSource(fh)
	}

	images, skipped := layout.ReadImages(r.Context(), s.log, sources)
	cfg := s.store.Snapshot()
	if len(images) > 0 {
		cfg = s.store.Update(layout.AddImages(images...))
	}
	if skipped == nil {
		skipped = []layout.Skipped{}
	}
	writeJSON(w, http.StatusOK, imagesResponse{Added: len(images), Skipped: skipped, Config: cfg})
}

func (s *Server) handleClearImages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Update(layout.ClearImages()))
}

func (s *Server) format(r *http.Request) (export.Format, error) {
	name := r.URL.Query().Get("format")
	if name == "" {
		return s.defaultFormat, nil
	}
	return export.ParseFormat(name)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	f, err := s.format(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	out, err := export.Render(s.store.Snapshot(), f)
	if err != nil {
		s.log.Error("render failed", slog.String("format", string(f)), logger.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Export-Filename", export.FileName(f))
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleExportZip(w http.ResponseWriter, r *http.Request) {
	f, err := s.format(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	data, err := archive.Build(s.store.Snapshot(), f)
	if err != nil {
		s.log.Error("archive failed", slog.String("format", string(f)), logger.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Name))
	_, _ = w.Write(data)
}
