// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/hr-toolkit/cliparse"
	"github.com/danielhkuo/hr-toolkit/handlers"
	"github.com/danielhkuo/hr-toolkit/middleware"
	"github.com/danielhkuo/hr-toolkit/session"
)

func NewRouter(sess *session.Session, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	rosterHandler := handlers.NewRosterHandler(sess, cfg)
	drawHandler := handlers.NewDrawHandler(sess)
	groupsHandler := handlers.NewGroupsHandler(sess)

	// admin guards destructive roster operations
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roster
	mux.HandleFunc("GET /roster", middleware.WithLogging(rosterHandler.GetRoster))
	mux.HandleFunc("POST /roster/import", middleware.WithLogging(rosterHandler.Import))
	mux.HandleFunc("POST /roster/upload", middleware.WithLogging(rosterHandler.Upload))
	mux.HandleFunc("GET /roster/duplicates", middleware.WithLogging(rosterHandler.Duplicates))
	mux.HandleFunc("POST /roster/demo", admin(rosterHandler.LoadDemo))
	mux.HandleFunc("POST /roster/dedupe", admin(rosterHandler.Dedupe))
	mux.HandleFunc("DELETE /roster/{id}", admin(rosterHandler.Remove))
	mux.HandleFunc("DELETE /roster", admin(rosterHandler.Clear))

	// Lucky draw
	mux.HandleFunc("GET /draw", middleware.WithLogging(drawHandler.GetState))
	mux.HandleFunc("POST /draw", middleware.WithLogging(drawHandler.Draw))
	mux.HandleFunc("POST /draw/reset", middleware.WithLogging(drawHandler.Reset))
	mux.HandleFunc("PUT /draw/repeat", middleware.WithLogging(drawHandler.SetRepeat))

	// Groups
	mux.HandleFunc("POST /groups", middleware.WithLogging(groupsHandler.Generate))
	mux.HandleFunc("GET /groups", middleware.WithLogging(groupsHandler.GetGroups))
	mux.HandleFunc("GET /groups/export", middleware.WithLogging(groupsHandler.Export))
	mux.HandleFunc("GET /groups/print", middleware.WithLogging(groupsHandler.Print))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hr-toolkit API v1"))
	})

	return mux
}
