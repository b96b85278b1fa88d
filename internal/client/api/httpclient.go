package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kushagra128/meetingmind-cli/internal/client/credentials"
	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

// HTTPClient is the Client implementation over the backend's JSON/REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Options configures NewHTTPClient beyond the required collaborators.
type Options struct {
	// Timeout bounds every request. Zero means no timeout.
	Timeout time.Duration

	// OnUnauthorized runs after the gateway performs its auto-logout.
	OnUnauthorized func()
}

// NewHTTPClient builds a client whose every request passes through the
// authenticated gateway transport bound to the given credential store.
func NewHTTPClient(baseURL string, creds credentials.Store, log logging.Logger, opts Options) *HTTPClient {
	transport := &authTransport{
		base:           http.DefaultTransport,
		creds:          creds,
		onUnauthorized: opts.OnUnauthorized,
		log:            log,
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: opts.Timeout},
		log:     log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListRecordings(ctx context.Context) ([]models.Recording, error) {
	var result struct {
		Recordings []models.Recording `json:"recordings"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/recordings", nil, &result); err != nil {
		return nil, err
	}
	return result.Recordings, nil
}

func (c *HTTPClient) GetRecording(ctx context.Context, id int64) (*models.Recording, error) {
	var result struct {
		Recording *models.Recording `json:"recording"`
	}
	path := fmt.Sprintf("/api/recordings/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Recording, nil
}

func (c *HTTPClient) DeleteRecording(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/recordings/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) StartSession(ctx context.Context, title string) (string, error) {
	body := map[string]string{"title": title}
	var result struct {
		SessionID string `json:"session_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/recordings/start", body, &result); err != nil {
		return "", err
	}
	return result.SessionID, nil
}

func (c *HTTPClient) StopSession(ctx context.Context, sessionID string) (*models.Recording, error) {
	var result struct {
		Recording *models.Recording `json:"recording"`
	}
	path := fmt.Sprintf("/api/recordings/%s/stop", sessionID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Recording, nil
}

func (c *HTTPClient) Transcript(ctx context.Context, sessionID string) (*models.TranscriptSnapshot, error) {
	var result struct {
		Transcript *models.TranscriptSnapshot `json:"transcript"`
	}
	path := fmt.Sprintf("/api/recordings/%s/transcript", sessionID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Transcript, nil
}

func (c *HTTPClient) FetchAudio(ctx context.Context, id int64) ([]byte, error) {
	return c.doBytes(ctx, fmt.Sprintf("/api/recordings/%d/audio", id))
}

func (c *HTTPClient) FetchPDF(ctx context.Context, id int64, kind string) ([]byte, error) {
	return c.doBytes(ctx, fmt.Sprintf("/api/recordings/%d/pdf/%s", id, kind))
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doBytes issues a GET and returns the raw response body, for binary assets.
func (c *HTTPClient) doBytes(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return nil, responseError(resp.StatusCode, data)
	}

	return io.ReadAll(resp.Body)
}

// responseError maps a non-success response to a ServerError when the body
// carries the backend's {"error": "..."} shape, or a StatusError otherwise.
func responseError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &ServerError{StatusCode: status, Message: payload.Error}
	}
	return &StatusError{StatusCode: status}
}
