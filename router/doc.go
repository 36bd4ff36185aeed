// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the HR toolkit API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sess, cfg)

# Endpoints

Health:

	GET /health

Roster:

	GET    /roster              - Participants, count and duplicate names
	POST   /roster/import       - Add names from pasted text
	POST   /roster/upload       - Add names from an uploaded .txt/.csv file
	GET    /roster/duplicates   - Names that appear more than once
	POST   /roster/demo         - Replace the roster with demo names (admin)
	POST   /roster/dedupe       - Keep the first of each name (admin)
	DELETE /roster/{id}         - Remove one participant (admin)
	DELETE /roster?confirm=true - Clear the roster (admin)

Lucky draw:

	GET  /draw        - Engine state, remaining pool and winner history
	POST /draw        - Draw one winner
	POST /draw/reset  - Refill the pool and clear the history
	PUT  /draw/repeat - Allow or forbid repeat winners

Groups:

	POST /groups        - Generate groups of group_size
	GET  /groups        - Latest groups
	GET  /groups/export - CSV download
	GET  /groups/print  - Plain text table

Routes marked admin require the X-Admin-Key header when an admin key is
configured.

# Handler Initialization

The router creates handler instances with dependency injection:

	rosterHandler := handlers.NewRosterHandler(sess, cfg)
	drawHandler := handlers.NewDrawHandler(sess)
	groupsHandler := handlers.NewGroupsHandler(sess)

All handlers share the one session.
*/
package router
