package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowStatusBoundaries(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	d := &Drop{ClaimWindowStart: start, ClaimWindowEnd: end}

	tests := []struct {
		name string
		now  time.Time
		want WindowStatus
	}{
		{"before start", start.Add(-time.Second), StatusUpcoming},
		{"at start", start, StatusLive},
		{"inside window", start.Add(30 * time.Minute), StatusLive},
		{"at end", end, StatusLive},
		{"after end", end.Add(time.Second), StatusEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, d.WindowStatus(tt.now))
		})
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	d := &Drop{TotalStock: 10, ClaimedCount: 3}
	require.Equal(t, 7, d.Remaining())

	// claimed_count is server-owned; a value past total_stock must not
	// produce a negative display.
	d = &Drop{TotalStock: 5, ClaimedCount: 9}
	require.Equal(t, 0, d.Remaining())
}

func TestIsAdmin(t *testing.T) {
	require.False(t, (*User)(nil).IsAdmin())
	require.False(t, (&User{Role: RoleUser}).IsAdmin())
	require.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
