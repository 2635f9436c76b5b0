package api

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

	"github.com/ananyev/jobpilot/internal/client/models"
)

// HTTPClient is the JSON-over-HTTP implementation of Client. All endpoints
// live under /api/v1 on a single base URL; authenticated calls carry a bearer
// token set via Authorize.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Authorize(token string) {
	c.token = token
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) error {
	in := map[string]string{"email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/auth/signup", in, nil)
}

func (c *HTTPClient) RequestOTP(ctx context.Context, email string) error {
	in := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/auth/otp/request", in, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	in := map[string]string{"email": email, "code": code}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/otp/verify", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ParseResume(ctx context.Context, file models.ResumeFile) (*models.ParsedResume, error) {
	var out struct {
		Success bool                 `json:"success"`
		Data    *models.ParsedResume `json:"data"`
	}
	if err := c.doMultipart(ctx, "/api/v1/resumes/parse", file, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, ErrParseRejected
	}
	return out.Data, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error) {
	var out models.Profile
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/profiles", req, &out); err != nil {
		return models.Profile{}, err
	}
	return out, nil
}

func (c *HTTPClient) UploadResume(ctx context.Context, profileID string, file models.ResumeFile) error {
	return c.doMultipart(ctx, "/api/v1/profiles/"+profileID+"/resume", file, nil)
}

func (c *HTTPClient) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetApplication(ctx context.Context, id string) (models.Application, error) {
	var out models.Application
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/applications/"+id, nil, &out); err != nil {
		return models.Application{}, err
	}
	return out, nil
}

func (c *HTTPClient) GetSubscription(ctx context.Context) (models.Subscription, error) {
	var out models.Subscription
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/subscription", nil, &out); err != nil {
		return models.Subscription{}, err
	}
	return out, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *HTTPClient) doMultipart(ctx context.Context, path string, file models.ResumeFile, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return err
	}
	if _, err := part.Write(file.Data); err != nil {
		return err
	}
	if err := mw.WriteField("mimeType", file.MimeType); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}

	// 4xx: surface the service's message when it sends one
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, body.Error)
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}
