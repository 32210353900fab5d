package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/logging"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultTLSTimeout     = 5 * time.Second
)

// CredentialStore is the slice of durable credential storage the transport
// needs: wiping it on credential expiry. The transport and the session
// store's login/logout paths are the only writers of that storage.
type CredentialStore interface {
	Clear(ctx context.Context) error
}

// HTTPClient implements Client against the drop service's HTTP+JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	log     logging.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// see https://medium.com/@nate510/don-t-use-go-s-default-http-client-4804cb19f779
func defaultClient() *http.Client {
	dialer := &net.Dialer{
		Timeout: defaultConnectTimeout,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}
	return &http.Client{
		Transport: transport,
	}
}

func NewHTTPClient(baseURL string, creds CredentialStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    defaultClient(),
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// SetToken replaces the in-memory credential attached to subsequent requests.
// An empty string sends requests unauthenticated.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// OnUnauthorized registers the session-teardown hook invoked after the
// transport detects credential expiry and clears durable storage.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// detailBody is the FastAPI-style error envelope. Detail is kept raw because
// validation failures send a list there instead of a string.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

func serverDetail(body []byte) string {
	var db detailBody
	if err := json.Unmarshal(body, &db); err != nil {
		return ""
	}
	var msg string
	if err := json.Unmarshal(db.Detail, &msg); err != nil {
		return ""
	}
	return msg
}

// expire handles a 401 from any endpoint: wipe the persisted credential,
// drop the in-memory token, then hand control to the session teardown hook.
// Runs before the error propagates, so no store can cache state on top of a
// dead credential.
func (c *HTTPClient) expire(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	fn := c.onUnauthorized
	c.mu.Unlock()

	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear persisted credential", "error", err)
	}
	c.log.Warn(ctx, "credential expired, session torn down")

	if fn != nil {
		fn()
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.expire(ctx)
		return &Error{Status: resp.StatusCode, Message: serverDetail(raw), err: ErrUnauthorized}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Status: resp.StatusCode, Message: serverDetail(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, authPayload{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, authPayload{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListDrops(ctx context.Context, params ListDropsParams) ([]models.Drop, error) {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status_filter", params.Status)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}

	var drops []models.Drop
	if err := c.do(ctx, http.MethodGet, "/drops", query, nil, &drops); err != nil {
		return nil, err
	}
	return drops, nil
}

func (c *HTTPClient) GetDrop(ctx context.Context, id int64) (*models.Drop, error) {
	var drop models.Drop
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/drops/%d", id), nil, nil, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

type joinPayload struct {
	RequestTimeMs int64 `json:"request_time_ms"`
}

func (c *HTTPClient) JoinWaitlist(ctx context.Context, id int64) (*models.JoinResult, error) {
	var res models.JoinResult
	payload := joinPayload{RequestTimeMs: time.Now().UnixMilli()}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/drops/%d/join", id), nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) LeaveWaitlist(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/drops/%d/leave", id), nil, nil, nil)
}

func (c *HTTPClient) ClaimDrop(ctx context.Context, id int64) (*models.ClaimResult, error) {
	var res models.ClaimResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/drops/%d/claim", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreateDrop(ctx context.Context, params CreateDropParams) (*models.Drop, error) {
	var drop models.Drop
	if err := c.do(ctx, http.MethodPost, "/admin/drops", nil, params, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

func (c *HTTPClient) UpdateDrop(ctx context.Context, id int64, params UpdateDropParams) (*models.Drop, error) {
	var drop models.Drop
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/drops/%d", id), nil, params, &drop); err != nil {
		return nil, err
	}
	return &drop, nil
}

func (c *HTTPClient) DeleteDrop(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/drops/%d", id), nil, nil, nil)
}
