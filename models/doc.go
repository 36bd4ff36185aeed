// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Participant: id and trimmed display name
  - Group: 1-based group number and its members

Participants serialize as {"id": "...", "name": "..."}. The same shape is
used for the persisted roster, so a saved roster can be read back by any
client of the API.

# Request Types

  - ImportRequest: text (comma or newline separated names)
  - RepeatModeRequest: allow (required boolean)
  - GenerateGroupsRequest: group_size (number or numeric string)

# Response Types

  - RosterResponse: participants, count, duplicates
  - ImportResponse: added, count
  - UploadResponse: filename, mime_type, added, count
  - RemovedResponse: removed, count
  - DuplicatesResponse: names
  - DrawStateResponse: state, allow_repeat, winner, pool, history
  - DrawResponse: winner, reveals, history, label
  - GroupsResponse: group_size, groups
  - ErrorResponse: error, message

# Constants

Draw engine states:

	StateIdle     = "idle"
	StateSpinning = "spinning"
	StateLanded   = "landed"
*/
package models
