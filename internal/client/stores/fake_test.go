package stores

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for store tests. Behavior is injected via
// function fields; unset fields return zero values. Network-level calls are
// recorded in order so tests can assert the refresh-after-mutation protocol.
type fakeClient struct {
	mu    sync.Mutex
	calls []string
	token string

	SignupFn    func(ctx context.Context, email, password string) (*api.AuthResult, error)
	LoginFn     func(ctx context.Context, email, password string) (*api.AuthResult, error)
	ListDropsFn func(ctx context.Context, params api.ListDropsParams) ([]models.Drop, error)
	GetDropFn   func(ctx context.Context, id int64) (*models.Drop, error)
	JoinFn      func(ctx context.Context, id int64) (*models.JoinResult, error)
	LeaveFn     func(ctx context.Context, id int64) error
	ClaimFn     func(ctx context.Context, id int64) (*models.ClaimResult, error)
	CreateFn    func(ctx context.Context, params api.CreateDropParams) (*models.Drop, error)
	UpdateFn    func(ctx context.Context, id int64, params api.UpdateDropParams) (*models.Drop, error)
	DeleteFn    func(ctx context.Context, id int64) error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) resetCalls() {
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeClient) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Signup(ctx context.Context, email, password string) (*api.AuthResult, error) {
	f.record("Signup")
	if f.SignupFn == nil {
		return &api.AuthResult{}, nil
	}
	return f.SignupFn(ctx, email, password)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return &api.AuthResult{}, nil
	}
	return f.LoginFn(ctx, email, password)
}

func (f *fakeClient) ListDrops(ctx context.Context, params api.ListDropsParams) ([]models.Drop, error) {
	f.record("ListDrops")
	if f.ListDropsFn == nil {
		return nil, nil
	}
	return f.ListDropsFn(ctx, params)
}

func (f *fakeClient) GetDrop(ctx context.Context, id int64) (*models.Drop, error) {
	f.record("GetDrop")
	if f.GetDropFn == nil {
		return &models.Drop{ID: id}, nil
	}
	return f.GetDropFn(ctx, id)
}

func (f *fakeClient) JoinWaitlist(ctx context.Context, id int64) (*models.JoinResult, error) {
	f.record("JoinWaitlist")
	if f.JoinFn == nil {
		return &models.JoinResult{}, nil
	}
	return f.JoinFn(ctx, id)
}

func (f *fakeClient) LeaveWaitlist(ctx context.Context, id int64) error {
	f.record("LeaveWaitlist")
	if f.LeaveFn == nil {
		return nil
	}
	return f.LeaveFn(ctx, id)
}

func (f *fakeClient) ClaimDrop(ctx context.Context, id int64) (*models.ClaimResult, error) {
	f.record("ClaimDrop")
	if f.ClaimFn == nil {
		return &models.ClaimResult{}, nil
	}
	return f.ClaimFn(ctx, id)
}

func (f *fakeClient) CreateDrop(ctx context.Context, params api.CreateDropParams) (*models.Drop, error) {
	f.record("CreateDrop")
	if f.CreateFn == nil {
		return &models.Drop{}, nil
	}
	return f.CreateFn(ctx, params)
}

func (f *fakeClient) UpdateDrop(ctx context.Context, id int64, params api.UpdateDropParams) (*models.Drop, error) {
	f.record("UpdateDrop")
	if f.UpdateFn == nil {
		return &models.Drop{ID: id}, nil
	}
	return f.UpdateFn(ctx, id, params)
}

func (f *fakeClient) DeleteDrop(ctx context.Context, id int64) error {
	f.record("DeleteDrop")
	if f.DeleteFn == nil {
		return nil
	}
	return f.DeleteFn(ctx, id)
}

// memCreds is an in-memory credstore.Repository (and api.CredentialStore).
type memCreds struct {
	mu     sync.Mutex
	token  string
	saves  int
	clears int
}

func (m *memCreds) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memCreds) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.saves++
	return nil
}

func (m *memCreds) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.clears++
	return nil
}

func (m *memCreds) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memCreds) clearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}
