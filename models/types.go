// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Draw engine states
const (
	StateIdle     = "idle"
	StateSpinning = "spinning"
	StateLanded   = "landed"
)

// Domain types

type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Group struct {
	ID      int           `json:"id"`
	Members []Participant `json:"members"`
}

// Request types

type ImportRequest struct {
	Text string `json:"text" validate:"max=1048576"`
}

type RepeatModeRequest struct {
	Allow *bool `json:"allow" validate:"required"`
}

// GroupSize is a string or number on the wire; anything that
// does not parse to at least 2 is clamped.
type GenerateGroupsRequest struct {
	GroupSize any `json:"group_size"`
}

// Response types

type RosterResponse struct {
	Participants []Participant `json:"participants"`
	Count        int           `json:"count"`
	Duplicates   []string      `json:"duplicates"`
}

type ImportResponse struct {
	Added []Participant `json:"added"`
	Count int           `json:"count"`
}

// RemovedResponse reports how many participants a removal dropped
type RemovedResponse struct {
	Removed int `json:"removed"`
	Count   int `json:"count"`
}

type UploadResponse struct {
	Filename string        `json:"filename"`
	MIMEType string        `json:"mime_type"`
	Added    []Participant `json:"added"`
	Count    int           `json:"count"`
}

type DuplicatesResponse struct {
	Names []string `json:"names"`
}

type DrawStateResponse struct {
	State       string        `json:"state"`
	AllowRepeat bool          `json:"allow_repeat"`
	Winner      *Participant  `json:"winner,omitempty"`
	Pool        []Participant `json:"pool"`
	History     []Participant `json:"history"`
}

type DrawResponse struct {
	Winner  Participant   `json:"winner"`
	Reveals []string      `json:"reveals"`
	History []Participant `json:"history"`
	Label   string        `json:"label"` // e.g. "3rd winner"
}

type GroupsResponse struct {
	GroupSize int     `json:"group_size"`
	Groups    []Group `json:"groups"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
