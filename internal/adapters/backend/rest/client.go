package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// publicPaths are the endpoints callable without a stored bearer token.
var publicPaths = []string{
	"/auth/login",
	"/auth/register",
	"/auth/forgot-password",
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client issues authenticated requests against the remote NusaBiz REST API.
// It attaches the stored bearer token, normalizes the success/error envelope,
// and clears the stored session when the backend signals expiry (401/403).
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   portsrepo.SessionRepositoryFacade
}

// NewClient creates a Client. timeout bounds every outbound call.
func NewClient(baseURL string, timeout time.Duration, sessions portsrepo.SessionRepositoryFacade) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
	}
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// do performs a JSON request. body is encoded as the request body unless the
// method carries none; out, when non-nil, receives the envelope's data field.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.sessions.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if token == "" && !isPublicPath(path) {
		return apperrors.ErrNoSession
	}

	var reqBody io.Reader
	if body != nil && method != http.MethodGet && method != http.MethodHead {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, token, out)
}

// doMultipart performs a multipart upload with a single file field.
func (c *Client) doMultipart(ctx context.Context, method, path, field, filename string, r io.Reader, out any) error {
	token, err := c.sessions.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if token == "" && !isPublicPath(path) {
		return apperrors.ErrNoSession
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, token, out)
}

func (c *Client) send(req *http.Request, token string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBackend, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	// Session expiry: the interceptor behavior. Credentials are cleared only
	// when a token was actually attached, so an already-unauthenticated
	// caller cannot loop through repeated clears. A 401 on a public call
	// (wrong login credentials) is a plain backend rejection, not expiry.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if token == "" {
			return fmt.Errorf("%w: %s", apperrors.ErrBackend, errorMessage(env, resp))
		}
		_ = c.sessions.Clear(req.Context())
		return fmt.Errorf("%s: %w", errorMessage(env, resp), apperrors.ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || !env.Success {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", errorMessage(env, resp), apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrBackend, errorMessage(env, resp))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decode response data: %v", apperrors.ErrBackend, err)
		}
	}
	return nil
}

// errorMessage prefers the server-provided text over a generic fallback.
func errorMessage(env envelope, resp *http.Response) string {
	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	return fmt.Sprintf("API error: %s", resp.Status)
}
