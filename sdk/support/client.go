// Package support provides a typed HTTP client for the atende API.
// Frontends, bots and integration tests use it instead of hand-rolling
// requests against the /auth, /tickets, /workspace and /admin endpoints.
//
// The client mirrors the server's wire format using its own response
// types, avoiding an import dependency from consumers back into the
// server implementation.
package support

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// ErrSessionExpired is returned when any endpoint answers 401. The client
// treats a 401 as the universal session-invalid signal: the stored token
// and cached access flags are cleared and every registered session-expired
// hook fires before the error is returned.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx answer the server actually produced, as opposed to
// a transport failure. Callers use errors.As to tell an authoritative
// refusal apart from an unreachable server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the atende API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.RWMutex
	token        string
	expiredHooks []func()

	// Access-check state. Responses are applied by sequence number so a
	// slow, stale check can never overwrite the flags of a newer one.
	accessMu    sync.Mutex
	accessSeq   uint64
	appliedSeq  uint64
	cachedFlags *AccessFlags
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 15 * time.Second})
}

// NewWithHTTPClient creates a Client with a caller-supplied *http.Client.
// Tests use it to point the client at a httptest.Server with no timeout.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// SetToken stores the bearer token sent on every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently stored bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnSessionExpired registers a hook invoked once per 401 response, after
// the client has already cleared its token and cached access flags. UIs
// hang their force-logout routine here.
func (c *Client) OnSessionExpired(hook func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiredHooks = append(c.expiredHooks, hook)
}

func (c *Client) teardownSession() {
	c.mu.Lock()
	c.token = ""
	hooks := make([]func(), len(c.expiredHooks))
	copy(hooks, c.expiredHooks)
	c.mu.Unlock()

	c.accessMu.Lock()
	c.cachedFlags = nil
	c.accessMu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do sends one request and decodes the envelope's data field into out
// (out may be nil when the caller only cares about success). A 401 tears
// the session down before returning ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		c.teardownSession()
		return fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}

	var envelope apiResponse
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	if response.StatusCode >= 400 || !envelope.Success {
		message := envelope.Error
		if message == "" {
			message = http.StatusText(response.StatusCode)
		}
		return fmt.Errorf("%s %s: %w", method, path, &APIError{
			StatusCode: response.StatusCode,
			Message:    message,
		})
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%s %s: decoding payload: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// ---- auth ----

// User is the wire format for a user record.
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthToken is the wire format for an issued session token.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authResult struct {
	User  User      `json:"user"`
	Token AuthToken `json:"token"`
}

// Register creates an account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, email, name, password string) (*User, error) {
	body := map[string]string{"email": email, "name": name, "password": password}
	var result authResult
	if err := c.post(ctx, "/auth/register", body, &result); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	c.SetToken(result.Token.Token)
	return &result.User, nil
}

// Login authenticates and stores the issued token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var result authResult
	if err := c.post(ctx, "/auth/login", body, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.SetToken(result.Token.Token)
	return &result.User, nil
}

// Me returns the authenticated user's own record.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var result struct {
		User User `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", &result); err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return &result.User, nil
}

// ---- access check ----

// AccessFlags is the wire format for GET /admin/check.
type AccessFlags struct {
	Authenticated bool `json:"authenticated"`
	IsAdmin       bool `json:"is_admin"`
	IsOwner       bool `json:"is_owner"`
}

// CheckAccess asks the server whether the session user is an admin and
// caches the answer. Two failure modes are kept apart:
//
//   - an authoritative answer (including "not admin") always wins and
//     refreshes the cache, unless a newer check already resolved;
//   - a transport failure returns the last cached flags instead of
//     demoting the user, because stale flags only affect the UI while
//     every privileged write is re-checked server-side anyway.
//
// With no cached flags to fall back on, the transport error is returned.
func (c *Client) CheckAccess(ctx context.Context) (AccessFlags, error) {
	c.accessMu.Lock()
	c.accessSeq++
	seq := c.accessSeq
	c.accessMu.Unlock()

	var result struct {
		Access AccessFlags `json:"access"`
	}
	err := c.get(ctx, "/admin/check", &result)

	c.accessMu.Lock()
	defer c.accessMu.Unlock()

	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return AccessFlags{}, fmt.Errorf("check access: %w", err)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) && c.cachedFlags != nil {
			return *c.cachedFlags, nil
		}
		return AccessFlags{}, fmt.Errorf("check access: %w", err)
	}

	// A response from an older request resolving late is discarded in
	// favor of whatever the newer one already applied.
	if seq < c.appliedSeq {
		if c.cachedFlags != nil {
			return *c.cachedFlags, nil
		}
		return result.Access, nil
	}

	c.appliedSeq = seq
	flags := result.Access
	c.cachedFlags = &flags
	return flags, nil
}

// CachedAccess returns the last applied access flags without touching the
// network. The second return is false when no check has resolved yet.
func (c *Client) CachedAccess() (AccessFlags, bool) {
	c.accessMu.Lock()
	defer c.accessMu.Unlock()
	if c.cachedFlags == nil {
		return AccessFlags{}, false
	}
	return *c.cachedFlags, true
}

// ---- tickets ----

// Ticket is the wire format for a ticket record. OwnerName and OwnerEmail
// are only filled on admin listings.
type Ticket struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Titulo     string    `json:"titulo"`
	Descricao  string    `json:"descricao"`
	Categoria  string    `json:"categoria"`
	Prioridade string    `json:"prioridade"`
	Status     string    `json:"status"`
	OwnerName  string    `json:"owner_name,omitempty"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment is the wire format for one ledger entry on a ticket.
type Comment struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	UserID     uint      `json:"user_id"`
	AuthorRole string    `json:"author_role"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusHistory is the wire format for one status transition record.
type StatusHistory struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy uint      `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketPage is one page of a ticket listing.
type TicketPage struct {
	Items      []Ticket `json:"items"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// TicketListOptions narrows a ticket listing. Zero values mean "no filter".
// DateFrom and DateTo take local dates as "2006-01-02"; the range is
// inclusive on both ends.
type TicketListOptions struct {
	Status     string
	Prioridade string
	Search     string
	DateFrom   string
	DateTo     string
	Page       int
	PageSize   int
}

func (o TicketListOptions) query() string {
	values := url.Values{}
	if o.Status != "" {
		values.Set("status", o.Status)
	}
	if o.Prioridade != "" {
		values.Set("prioridade", o.Prioridade)
	}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if o.DateFrom != "" {
		values.Set("date_from", o.DateFrom)
	}
	if o.DateTo != "" {
		values.Set("date_to", o.DateTo)
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// CreateTicket opens a ticket for the session user. A blank priority lets
// the server default it.
func (c *Client) CreateTicket(ctx context.Context, titulo, descricao, categoria, prioridade string) (uint, error) {
	body := map[string]string{
		"titulo":     titulo,
		"descricao":  descricao,
		"categoria":  categoria,
		"prioridade": prioridade,
	}
	var result struct {
		TicketID uint `json:"ticket_id"`
	}
	if err := c.post(ctx, "/tickets/create", body, &result); err != nil {
		return 0, fmt.Errorf("create ticket: %w", err)
	}
	return result.TicketID, nil
}

// MyTickets returns a page of the session user's own tickets.
func (c *Client) MyTickets(ctx context.Context, opts TicketListOptions) (*TicketPage, error) {
	var page TicketPage
	if err := c.get(ctx, "/tickets/my-tickets"+opts.query(), &page); err != nil {
		return nil, fmt.Errorf("my tickets: %w", err)
	}
	return &page, nil
}

// GetTicket returns one ticket. Regular users only see their own.
func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	var result struct {
		Ticket Ticket `json:"ticket"`
	}
	if err := c.get(ctx, c.ticketPath(ticketID, ""), &result); err != nil {
		return nil, fmt.Errorf("get ticket %d: %w", ticketID, err)
	}
	return &result.Ticket, nil
}

// AddComment appends a comment to the ticket's ledger.
func (c *Client) AddComment(ctx context.Context, ticketID uint, text string) (*Comment, error) {
	body := map[string]string{"comment": text}
	var result struct {
		Comment Comment `json:"comment"`
	}
	if err := c.post(ctx, c.ticketPath(ticketID, "/comments"), body, &result); err != nil {
		return nil, fmt.Errorf("add comment to ticket %d: %w", ticketID, err)
	}
	return &result.Comment, nil
}

// ListComments returns the ticket's full comment ledger, oldest first.
func (c *Client) ListComments(ctx context.Context, ticketID uint) ([]Comment, error) {
	var result struct {
		Comments []Comment `json:"comments"`
	}
	if err := c.get(ctx, c.ticketPath(ticketID, "/comments"), &result); err != nil {
		return nil, fmt.Errorf("list comments of ticket %d: %w", ticketID, err)
	}
	return result.Comments, nil
}

// ListHistory returns the ticket's status transitions, oldest first.
func (c *Client) ListHistory(ctx context.Context, ticketID uint) ([]StatusHistory, error) {
	var result struct {
		History []StatusHistory `json:"history"`
	}
	if err := c.get(ctx, c.ticketPath(ticketID, "/history"), &result); err != nil {
		return nil, fmt.Errorf("list history of ticket %d: %w", ticketID, err)
	}
	return result.History, nil
}

func (c *Client) ticketPath(ticketID uint, suffix string) string {
	return "/tickets/" + strconv.FormatUint(uint64(ticketID), 10) + suffix
}

// ---- workspaces ----

// Workspace is the wire format for a workspace record.
type Workspace struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MyWorkspaces returns the workspaces visible to the session user: the
// default workspace plus every explicit grant.
func (c *Client) MyWorkspaces(ctx context.Context) ([]Workspace, error) {
	var result struct {
		Workspaces []Workspace `json:"workspaces"`
	}
	if err := c.get(ctx, "/workspace/permissions", &result); err != nil {
		return nil, fmt.Errorf("my workspaces: %w", err)
	}
	return result.Workspaces, nil
}
