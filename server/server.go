// Package server exposes the converter over HTTP: document upload to
// Markdown, and Markdown export to the downloadable formats.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gaurav-prasanna/markconvert/core"
)

// maxUploadSize caps document uploads at 50 MB.
const maxUploadSize = 50 << 20

// mimeTypes maps export formats to their download content types.
var mimeTypes = map[string]string{
	"markdown": "text/markdown",
	"docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pdf":      "application/pdf",
	"rtf":      "application/rtf",
}

// Server handles the conversion HTTP API.
type Server struct {
	importer core.Importer
	emitters map[string]core.Emitter
	logger   *slog.Logger
}

// New creates a Server. emitters is keyed by export format name
// (markdown, docx, pdf, rtf).
func New(importer core.Importer, emitters map[string]core.Emitter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{importer: importer, emitters: emitters, logger: logger}
}

// Routes builds the chi router for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/import", s.handleImport)
	r.Post("/api/export/{format}", s.handleExport)
	r.Get("/health", s.handleHealth)
	return r
}

// importResponse is the JSON body for a successful import.
type importResponse struct {
	Markdown string `json:"markdown"`
	Message  string `json:"message"`
}

// exportRequest is the JSON body for an export call.
type exportRequest struct {
	Markdown string `json:"markdown"`
}

// handleImport accepts a multipart upload, converts it to Markdown,
// and returns the text. The upload is staged to a temporary file that
// is removed on every exit path.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, http.StatusBadRequest, "no file selected")
		return
	}

	// Stage the upload; the router dispatches on the file extension.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "staging upload failed")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.writeError(w, http.StatusInternalServerError, "reading upload failed")
		return
	}
	tmp.Close()

	markdown, err := s.importer.Import(r.Context(), tmpPath)
	if err != nil {
		s.logger.Error("import failed", "file", header.Filename, "error", err)
		var unsupported *core.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.writeError(w, http.StatusBadRequest, unsupported.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("importing %s failed", header.Filename))
		return
	}

	s.writeJSON(w, http.StatusOK, importResponse{
		Markdown: markdown,
		Message:  fmt.Sprintf("file %q imported successfully", header.Filename),
	})
}

// handleExport renders the posted Markdown into the requested format
// and returns it as a file download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	emitter, ok := s.emitters[format]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown export format %q", format))
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, err := emitter.Emit(req.Markdown)
	if err != nil {
		exportErr := &core.ExportError{Format: format, Err: err}
		s.logger.Error("export failed", "format", format, "error", exportErr)
		s.writeError(w, http.StatusInternalServerError, exportErr.Error())
		return
	}

	w.Header().Set("Content-Type", mimeTypes[format])
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "dokument"+emitter.Extension()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "markconvert is running",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
