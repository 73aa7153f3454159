// Package api implements the typed HTTP client for the edudesk portal
// API. It covers the student education endpoints plus sign-in and
// health, mapping non-2xx responses to a typed Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"edudesk/internal/education"
	"edudesk/internal/jsonutil"
)

// Config contains configuration for the portal API client.
type Config struct {
	// BaseURL is the portal API base URL, without trailing slash.
	BaseURL string

	// Token is the bearer token sent on authenticated calls.
	Token string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured request logging. Defaults to slog.Default.
	Logger *slog.Logger

	// Tracer for per-call spans. Defaults to a noop tracer.
	Tracer trace.Tracer
}

// Client is the portal API client.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewClient creates a portal API client.
func NewClient(config Config) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Tracer == nil {
		config.Tracer = noop.NewTracerProvider().Tracer("edudesk/api")
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     config.Logger,
		tracer:     config.Tracer,
	}
}

// Error is a portal API error response: the HTTP status plus the
// server's message from the {"error": ...} body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// GetMyEducation fetches the authenticated student's education records.
func (c *Client) GetMyEducation(ctx context.Context) ([]education.Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/students/me/education", nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("get education records: %w", err)
	}
	records, err := jsonutil.UnmarshalArray[education.Record](body, "parse education records")
	if err != nil {
		return nil, err
	}
	return records, nil
}

// AddEducation creates an education record and returns the server's
// copy of it.
func (c *Client) AddEducation(ctx context.Context, payload education.Payload) (*education.Record, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/students/me/education", payload, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("add education record: %w", err)
	}
	var record education.Record
	if err := jsonutil.UnmarshalWithContext(body, &record, "parse created record"); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateEducation replaces an education record by id and returns the
// updated record.
func (c *Client) UpdateEducation(ctx context.Context, id string, payload education.Payload) (*education.Record, error) {
	path := "/api/students/me/education/" + url.PathEscape(id)
	body, err := c.do(ctx, http.MethodPut, path, payload, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("update education record %s: %w", id, err)
	}
	var record education.Record
	if err := jsonutil.UnmarshalWithContext(body, &record, "parse updated record"); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteEducation removes an education record by id.
func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	path := "/api/students/me/education/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("delete education record %s: %w", id, err)
	}
	return nil
}

// SignInResult contains the access token and student identity returned
// by a successful sign-in.
type SignInResult struct {
	AccessToken string  `json:"access_token"`
	Student     Student `json:"student"`
}

// Student is the portal's student identity.
type Student struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	body, err := c.do(ctx, http.MethodPost, "/api/auth/signin", req, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	var result SignInResult
	if err := jsonutil.UnmarshalWithContext(body, &result, "parse sign-in response"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health reports whether the portal API answers its liveness check.
func (c *Client) Health(ctx context.Context) bool {
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil, http.StatusOK)
	return err == nil
}

// do performs a single request. There is no retry: a failed call is
// reported to the caller as-is and the page decides what to show.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
	))
	defer span.End()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("portal api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != wantStatus {
		apiErr := &Error{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, apiErr
	}
	return respBody, nil
}
