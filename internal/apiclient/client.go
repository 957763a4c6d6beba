package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

const (
	// DefaultTimeout applies when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	// SessionCookieName is the cookie the API uses for credentialed requests.
	SessionCookieName = "session"

	accountPath      = "/user/me"
	profilePath      = "/job-seeker/profile"
	resumeUploadPath = "/job-seeker/resume"

	maxErrorBody = 4096
)

// Options configures a Client.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	Token         string // sent as a bearer token when set
	SessionCookie string // seeded into the cookie jar when set
	HTTPClient    *http.Client
	Logger        *log.Logger
}

// Client issues JSON requests against a fixed base URL.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
	logger  *log.Logger
}

// New creates a client. Requests carry cookies from a per-client jar, so any
// session cookie set by the API is sent back on later calls.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("api base URL is empty")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base URL %q: scheme must be http or https", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}
	if opts.SessionCookie != "" {
		httpClient.Jar.SetCookies(base, []*http.Cookie{{Name: SessionCookieName, Value: opts.SessionCookie, Path: "/"}})
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{baseURL: base, http: httpClient, token: opts.Token, logger: logger}, nil
}

// BaseURL returns the API root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do sends body as JSON and returns the response payload. Envelopes of the form
// {"success", "message", "data"} are unwrapped to their data.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	return c.send(ctx, method, path, reader, "application/json")
}

// Update applies a resolved profile update.
func (c *Client) Update(ctx context.Context, req types.UpdateRequest) (json.RawMessage, error) {
	return c.Do(ctx, req.Method, req.Endpoint, req.Body)
}

// GetJSON decodes a GET response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	raw, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("GET %s: empty response", path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("GET %s: failed to decode response: %w", path, err)
	}
	return nil
}

// GetAccount loads the signed-in user.
func (c *Client) GetAccount(ctx context.Context) (*types.Account, error) {
	var acct types.Account
	if err := c.GetJSON(ctx, accountPath, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetProfile loads the job-seeker profile.
func (c *Client) GetProfile(ctx context.Context) (*types.Profile, error) {
	var p types.Profile
	if err := c.GetJSON(ctx, profilePath, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadResume posts a resume as multipart form data and returns the stored URL.
func (c *Client) UploadResume(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, name))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read resume content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	raw, err := c.send(ctx, http.MethodPost, resumeUploadPath, &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}

	var out struct {
		ResumeURL string `json:"resume_url"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.ResumeURL == "" {
		return "", fmt.Errorf("upload response has no resume_url")
	}
	return out.ResumeURL, nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	target := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("%s %s request_id=%s error=%v", method, path, requestID, err)
		return nil, &TransportError{Method: method, Path: path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Cause: err}
	}
	c.logger.Printf("%s %s request_id=%s status=%d duration=%s", method, path, requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return unwrapEnvelope(resp.StatusCode, data)
}

func newAPIError(status int, data []byte) *APIError {
	body := strings.TrimSpace(string(data))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	apiErr := &APIError{Status: status, Body: body}
	if json.Unmarshal(data, &payload) == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

// unwrapEnvelope strips a {"success", "message", "data"} wrapper. Bodies without
// one are returned as-is. A wrapper with success=false is an error even on 2xx.
func unwrapEnvelope(status int, data []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	rawData, hasData := env["data"]
	rawSuccess, hasSuccess := env["success"]
	_, hasMessage := env["message"]
	if !hasData || !(hasSuccess || hasMessage) {
		return json.RawMessage(trimmed), nil
	}

	if hasSuccess {
		var ok bool
		if err := json.Unmarshal(rawSuccess, &ok); err == nil && !ok {
			return nil, newAPIError(status, trimmed)
		}
	}
	return rawData, nil
}
