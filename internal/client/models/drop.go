// Package models holds the client-side representations of server-owned
// entities. Everything here mirrors a server response; the server remains
// authoritative for every field.
package models

import "time"

// WindowStatus is the position of a drop's claim window relative to a given
// instant. It is derived, never stored: recompute it from the window bounds
// whenever it is displayed.
type WindowStatus string

const (
	StatusUpcoming WindowStatus = "upcoming"
	StatusLive     WindowStatus = "live"
	StatusEnded    WindowStatus = "ended"
)

// Drop is a time-boxed, stock-limited release record.
//
// ClaimedCount and UserJoined are server-computed; the client never patches
// them locally, it re-fetches the list instead (see stores.DropStore).
type Drop struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	TotalStock       int       `json:"total_stock"`
	ClaimedCount     int       `json:"claimed_count"`
	ClaimWindowStart time.Time `json:"claim_window_start"`
	ClaimWindowEnd   time.Time `json:"claim_window_end"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UserJoined       bool      `json:"user_joined"`
}

// WindowStatus derives the claim-window status at the given instant.
// The window is closed on both ends: now == start and now == end are live.
func (d *Drop) WindowStatus(now time.Time) WindowStatus {
	if now.Before(d.ClaimWindowStart) {
		return StatusUpcoming
	}
	if now.After(d.ClaimWindowEnd) {
		return StatusEnded
	}
	return StatusLive
}

// Remaining is the advisory number of unclaimed units. Display only; stock
// accounting is enforced server-side.
func (d *Drop) Remaining() int {
	if n := d.TotalStock - d.ClaimedCount; n > 0 {
		return n
	}
	return 0
}
