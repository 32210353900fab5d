package models

import "time"

// JoinResult is the server's answer to a waitlist join. Position and
// PriorityScore are opaque outputs of the server-side ranking; the client
// displays them and never recomputes or validates them.
type JoinResult struct {
	Message       string  `json:"message"`
	Position      int     `json:"position"`
	PriorityScore float64 `json:"priority_score"`
}

// ClaimResult carries the one-time claim code. Held transiently for display;
// the server is the sole durable owner of claim records.
type ClaimResult struct {
	Message   string    `json:"message"`
	ClaimCode string    `json:"claim_code"`
	ExpiresAt time.Time `json:"expires_at"`
}
