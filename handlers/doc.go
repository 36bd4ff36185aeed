// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the HR toolkit API.

# Handler Types

Each handler is a struct over the shared session:

  - RosterHandler: Import, upload, removal and duplicate cleanup
  - DrawHandler: Lucky draw state, draws, reset and repeat mode
  - GroupsHandler: Group generation, CSV export and print view

Handlers are created via constructor functions:

	rosterHandler := handlers.NewRosterHandler(sess, cfg)

# Roster

Names arrive as pasted text or as an uploaded file:

	POST /roster/import {"text": "Alice, Bob\nCarol"}
	POST /roster/upload (multipart field "file")

Both split on commas and line breaks and drop blank entries. Blank input
is accepted and adds nothing. Uploads are capped at MaxUploadBytes, must
sniff as text and may carry a UTF-8 or UTF-16 byte order mark.

Clearing needs DELETE /roster?confirm=true. Removing an unknown id
reports zero removed rather than an error.

# Lucky Draw

POST /draw blocks until the countdown has played and returns the winner
with the revealed names and an ordinal label ("3rd winner"). Draws
answer 409 Conflict when the pool is empty, when another draw is
spinning, or when a roster change cancelled the spin.

# Groups

POST /groups takes group_size as a number or a numeric string; missing
means 4 and anything below 2 becomes 2. Export, print and GET /groups
answer 404 until groups have been generated.

Export responds with text/csv and a dated attachment filename.
*/
package handlers
