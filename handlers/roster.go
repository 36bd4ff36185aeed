// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/danielhkuo/hr-toolkit/cliparse"
	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/roster"
	"github.com/danielhkuo/hr-toolkit/session"
)

// uploadFormField is the multipart field holding the roster file
const uploadFormField = "file"

type RosterHandler struct {
	sess *session.Session
	cfg  cliparse.Config
}

func NewRosterHandler(sess *session.Session, cfg cliparse.Config) *RosterHandler {
	return &RosterHandler{sess: sess, cfg: cfg}
}

// GetRoster handles GET /roster
func (h *RosterHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	participants := h.sess.Participants()
	middleware.JSONResponse(w, http.StatusOK, models.RosterResponse{
		Participants: participants,
		Count:        len(participants),
		Duplicates:   nonNil(h.sess.DuplicateNames()),
	})
}

// Import handles POST /roster/import
func (h *RosterHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid import request")
		return
	}

	added, ok := h.ingest(w, r, req.Text)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Added: added,
		Count: len(h.sess.Participants()),
	})
}

// Upload handles POST /roster/upload with a multipart "file" field.
// The file must be text; a UTF-8 or UTF-16 byte order mark selects the
// decoding, otherwise UTF-8 is assumed.
func (h *RosterHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.MaxUploadBytes
	// Leave room for the multipart envelope around the file
	r.Body = http.MaxBytesReader(w, r.Body, limit+64<<10)

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		slog.Error("failed to read upload", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read upload")
		return
	}
	if int64(len(data)) > limit {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge,
			"Upload exceeds "+humanize.IBytes(uint64(limit)))
		return
	}

	mtype := mimetype.Detect(data)
	if !isText(mtype) {
		slog.Warn("rejected non-text upload",
			"filename", header.Filename,
			"mime_type", mtype.String(),
		)
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, "Only plain text or CSV files are accepted")
		return
	}

	text, err := decodeText(data)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Upload is not valid text")
		return
	}

	slog.Info("roster upload received",
		"filename", header.Filename,
		"mime_type", mtype.String(),
		"size", humanize.Bytes(uint64(len(data))),
	)

	added, ok := h.ingest(w, r, text)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Filename: header.Filename,
		MIMEType: mtype.String(),
		Added:    added,
		Count:    len(h.sess.Participants()),
	})
}

// LoadDemo handles POST /roster/demo
func (h *RosterHandler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	list, err := h.sess.LoadDemo(r.Context())
	if err != nil {
		slog.Error("failed to load demo roster", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load demo roster")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Added: list,
		Count: len(list),
	})
}

// Remove handles DELETE /roster/{id}. Removing an unknown id is not an
// error; the response reports zero removed.
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	removed, err := h.sess.Remove(r.Context(), id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roster")
		return
	}

	n := 0
	if removed {
		n = 1
	}
	middleware.JSONResponse(w, http.StatusOK, models.RemovedResponse{
		Removed: n,
		Count:   len(h.sess.Participants()),
	})
}

// Clear handles DELETE /roster?confirm=true
func (h *RosterHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Clearing the roster requires confirm=true")
		return
	}

	before := len(h.sess.Participants())
	if err := h.sess.Clear(r.Context()); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roster")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RemovedResponse{
		Removed: before,
		Count:   0,
	})
}

// Duplicates handles GET /roster/duplicates
func (h *RosterHandler) Duplicates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DuplicatesResponse{
		Names: nonNil(h.sess.DuplicateNames()),
	})
}

// Dedupe handles POST /roster/dedupe
func (h *RosterHandler) Dedupe(w http.ResponseWriter, r *http.Request) {
	removed, err := h.sess.RemoveDuplicates(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roster")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RemovedResponse{
		Removed: removed,
		Count:   len(h.sess.Participants()),
	})
}

// ingest adds text to the roster and writes the error response on failure.
// Blank text is a no-op.
func (h *RosterHandler) ingest(w http.ResponseWriter, r *http.Request, text string) ([]models.Participant, bool) {
	added, err := h.sess.Ingest(r.Context(), text)
	switch {
	case errors.Is(err, roster.ErrEmptyInput):
		return []models.Participant{}, true
	case errors.Is(err, roster.ErrIDExhausted):
		slog.Error("failed to assign participant ids", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import names")
		return nil, false
	case err != nil:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save roster")
		return nil, false
	}
	return added, true
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// decodeText honours a UTF-8 or UTF-16 byte order mark and strips it
func decodeText(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
