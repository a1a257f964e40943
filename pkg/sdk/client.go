package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Client is the HTTP adapter for the InsurEase API. It owns the base URL,
// the transport, and the cookie jar that carries the session credential.
// All higher-level operations (Session, chatbot, catalog) go through its
// request helpers.
type Client struct {
	baseURL    string
	base       *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	logger     *slog.Logger
}

// ClientOptions configures Client construction.
type ClientOptions struct {
	// HTTPClient overrides the default transport. A custom client should
	// carry its own cookie jar; session persistence is disabled without one.
	HTTPClient *http.Client
	// Logger receives request-level debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithLogger overrides the structured logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = logger
	}
}

// NewClient creates a client for the API server at baseURL. When no HTTP
// client is supplied, one is created with a fresh cookie jar so the session
// cookie issued by the token endpoint is attached to subsequent requests.
func NewClient(baseURL string, optFns ...ClientOption) (*Client, error) {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	trimmed := strings.TrimRight(baseURL, "/")
	base, err := url.Parse(trimmed)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", baseURL)
	}

	c := &Client{
		baseURL: trimmed,
		base:    base,
		logger:  opts.Logger,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
		c.jar = opts.HTTPClient.Jar
	} else {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.jar = jar
		c.httpClient = &http.Client{Jar: jar}
	}

	return c, nil
}

// BaseURL returns the normalized server URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RestoreCredentials seeds the cookie jar from persisted credentials.
// It is a no-op when the client has no jar or credentials are nil. The
// restored session is not validated here; run Session.CheckAuthStatus to
// find out whether the server still honors it.
func (c *Client) RestoreCredentials(credentials *Credentials) {
	if c.jar == nil || credentials == nil {
		return
	}
	cookies := make([]*http.Cookie, 0, len(credentials.Cookies))
	for _, sc := range credentials.Cookies {
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value, Path: "/"})
	}
	c.jar.SetCookies(c.base, cookies)
}

// sessionCookies snapshots the cookies currently held for the server.
func (c *Client) sessionCookies() []SessionCookie {
	if c.jar == nil {
		return nil
	}
	held := c.jar.Cookies(c.base)
	out := make([]SessionCookie, 0, len(held))
	for _, ck := range held {
		out = append(out, SessionCookie{Name: ck.Name, Value: ck.Value})
	}
	return out
}

// doJSON performs a request with an optional JSON-encoded body and returns
// the response body. On a non-2xx response it returns a *apiError with the
// parsed detail message.
func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	contentType := ""
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, bodyReader)
}

// doForm performs a form-encoded POST. The token endpoint is the only
// consumer; everything else on the API speaks JSON.
func (c *Client) doForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// doMultipart performs a multipart/form-data POST with one file part named
// fileField plus the given text fields.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file into multipart body: %w", err)
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write multipart field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf)
}

// do performs the request and classifies the response. 2xx returns the raw
// body; anything else returns the body alongside a *apiError carrying the
// status code and the server's detail message when one was present.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	requestURL := c.baseURL + path

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	request.Header.Set("X-Request-Id", requestID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"request_id", requestID,
	)

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// Failure bodies share the {"detail": "..."} shape. Non-JSON bodies
	// (proxies, hard 5xx) leave Detail empty and callers fall back to
	// their generic message.
	apiErr := &apiError{StatusCode: response.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if jsonErr := json.Unmarshal(responseBody, &payload); jsonErr == nil {
		apiErr.Detail = payload.Detail
	}
	return responseBody, apiErr
}
