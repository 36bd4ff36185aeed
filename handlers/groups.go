// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/hr-toolkit/grouping"
	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/session"
)

type GroupsHandler struct {
	sess *session.Session
	now  func() time.Time
}

func NewGroupsHandler(sess *session.Session) *GroupsHandler {
	return &GroupsHandler{sess: sess, now: time.Now}
}

// Generate handles POST /groups. An empty body uses the default size.
func (h *GroupsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateGroupsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	size, groups := h.sess.GenerateGroups(grouping.ParseSize(req.GroupSize))
	middleware.JSONResponse(w, http.StatusOK, models.GroupsResponse{
		GroupSize: size,
		Groups:    nonNil(groups),
	})
}

// GetGroups handles GET /groups
func (h *GroupsHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	size, groups, ok := h.latest(w)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.GroupsResponse{
		GroupSize: size,
		Groups:    groups,
	})
}

// Export handles GET /groups/export
func (h *GroupsHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, groups, ok := h.latest(w)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := grouping.Export(&buf, groups); err != nil {
		slog.Error("failed to export groups", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export groups")
		return
	}

	filename := grouping.ExportFilename(h.now())
	w.Header().Set("Content-Type", grouping.ExportContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write export", "error", err)
		return
	}

	slog.Info("groups exported",
		"filename", filename,
		"groups", len(groups),
		"size", humanize.Bytes(uint64(buf.Len())),
	)
}

// Print handles GET /groups/print
func (h *GroupsHandler) Print(w http.ResponseWriter, r *http.Request) {
	_, groups, ok := h.latest(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	grouping.Print(w, groups)
}

func (h *GroupsHandler) latest(w http.ResponseWriter) (int, []models.Group, bool) {
	size, groups, err := h.sess.Groups()
	if errors.Is(err, session.ErrNoGroups) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No groups have been generated")
		return 0, nil, false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load groups")
		return 0, nil, false
	}
	return size, groups, true
}
