// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/hr-toolkit/draw"
	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/models"
	"github.com/danielhkuo/hr-toolkit/session"
)

type DrawHandler struct {
	sess *session.Session
}

func NewDrawHandler(sess *session.Session) *DrawHandler {
	return &DrawHandler{sess: sess}
}

// GetState handles GET /draw
func (h *DrawHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, drawStateResponse(h.sess.DrawState()))
}

// Draw handles POST /draw. The response is written once the countdown
// has finished and the winner has landed.
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	res, err := h.sess.Draw(r.Context())
	switch {
	case errors.Is(err, draw.ErrEmptyPool):
		middleware.ErrorResponse(w, http.StatusConflict, "No participants left to draw; reset the draw or import names")
		return
	case errors.Is(err, draw.ErrDrawInProgress):
		middleware.ErrorResponse(w, http.StatusConflict, "A draw is already in progress")
		return
	case errors.Is(err, draw.ErrDrawCancelled):
		middleware.ErrorResponse(w, http.StatusConflict, "Draw was cancelled before a winner landed")
		return
	case err != nil:
		slog.Error("draw failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Draw failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Winner:  res.Winner,
		Reveals: nonNil(res.Reveals),
		History: res.History,
		Label:   humanize.Ordinal(len(res.History)) + " winner",
	})
}

// Reset handles POST /draw/reset
func (h *DrawHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.sess.ResetDraw()
	middleware.JSONResponse(w, http.StatusOK, drawStateResponse(h.sess.DrawState()))
}

// SetRepeat handles PUT /draw/repeat
func (h *DrawHandler) SetRepeat(w http.ResponseWriter, r *http.Request) {
	var req models.RepeatModeRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "allow is required")
		return
	}

	h.sess.SetRepeat(*req.Allow)
	middleware.JSONResponse(w, http.StatusOK, drawStateResponse(h.sess.DrawState()))
}

func drawStateResponse(st session.DrawState) models.DrawStateResponse {
	return models.DrawStateResponse{
		State:       st.State,
		AllowRepeat: st.AllowRepeat,
		Winner:      st.Winner,
		Pool:        st.Pool,
		History:     st.History,
	}
}
