// Package api is the single point of outbound HTTP access to the drop
// service. It attaches the current credential to every request, normalizes
// server rejections into *Error values, and handles credential expiry
// globally: a 401 from any endpoint clears the persisted credential and
// invokes the registered teardown hook before the error reaches the caller.
package api

import (
	"context"
	"time"

	"github.com/aakcay5656/dropspot/internal/client/models"
)

// AuthResult is the payload of a successful signup or login exchange.
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// ListDropsParams are the optional filters of the list endpoint.
// Zero values mean "not set" and are omitted from the query string.
type ListDropsParams struct {
	Status string
	Limit  int
	Offset int
}

// CreateDropParams are the fields of an admin create. All are required by
// the server; the client serializes what it is given and lets the server
// validate.
type CreateDropParams struct {
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	TotalStock       int       `json:"total_stock"`
	ClaimWindowStart time.Time `json:"claim_window_start"`
	ClaimWindowEnd   time.Time `json:"claim_window_end"`
}

// UpdateDropParams are the fields of an admin update. Nil pointers are
// omitted so the server applies a partial update.
type UpdateDropParams struct {
	Name             *string    `json:"name,omitempty"`
	Description      *string    `json:"description,omitempty"`
	TotalStock       *int       `json:"total_stock,omitempty"`
	ClaimWindowStart *time.Time `json:"claim_window_start,omitempty"`
	ClaimWindowEnd   *time.Time `json:"claim_window_end,omitempty"`
	Status           *string    `json:"status,omitempty"`
}

// Client is the API surface the stores talk to.
//
// Every call takes a context and honors its cancellation/deadline. Mutating
// the in-memory credential happens through SetToken; only the session store
// and the transport's own 401 handler do so.
type Client interface {
	SetToken(token string)

	Signup(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	ListDrops(ctx context.Context, params ListDropsParams) ([]models.Drop, error)
	GetDrop(ctx context.Context, id int64) (*models.Drop, error)
	JoinWaitlist(ctx context.Context, id int64) (*models.JoinResult, error)
	LeaveWaitlist(ctx context.Context, id int64) error
	ClaimDrop(ctx context.Context, id int64) (*models.ClaimResult, error)

	CreateDrop(ctx context.Context, params CreateDropParams) (*models.Drop, error)
	UpdateDrop(ctx context.Context, id int64, params UpdateDropParams) (*models.Drop, error)
	DeleteDrop(ctx context.Context, id int64) error

	Close() error
}
