// Package api implements the typed HTTP client for the CivicWatch backend.
// HTTP status codes are mapped back onto the shared sentinel errors so the
// rest of the client can use errors.Is without knowing about HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shivtchandra/CivicWatch/internal/client/models"
	"github.com/shivtchandra/CivicWatch/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs the Bearer token used on authenticated calls. An empty
// string clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

// AuthResponse is the register/login payload.
type AuthResponse struct {
	User  models.Profile `json:"user"`
	Token string         `json:"token"`
}

// ReportDraft is a report submission. Lat/Lng stay strings; the server does
// the coercion.
type ReportDraft struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	Location           string `json:"location"`
	City               string `json:"city"`
	Lat                string `json:"lat"`
	Lng                string `json:"lng"`
	ImageKey           string `json:"imageKey"`
	Priority           string `json:"priority"`
	ContactInfo        string `json:"contactInfo"`
	GovernmentResponse string `json:"governmentResponse"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// do performs one API call. A non-2xx response is translated into a sentinel
// error; the body's "error" field feeds validation messages.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func statusError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg := body.Error
		if msg == "" {
			msg = "bad request"
		}
		return common.NewValidationError(msg)
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusConflict:
		return common.ErrConflict
	default:
		return common.ErrInternal
	}
}

func (c *Client) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": password, "name": name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.Profile, error) {
	var out struct {
		User models.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name, city, phone string) (*models.Profile, error) {
	var out struct {
		User models.Profile `json:"user"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/me",
		map[string]string{"name": name, "city": city, "phone": phone}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) CreateReport(ctx context.Context, draft *ReportDraft) (*models.Report, error) {
	var out models.Report
	if err := c.do(ctx, http.MethodPost, "/api/reports", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReports(ctx context.Context, city string) ([]*models.Report, error) {
	path := "/api/reports"
	if city != "" {
		path += "?city=" + url.QueryEscape(city)
	}

	var out []*models.Report
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReport(ctx context.Context, id string) (*models.Report, error) {
	var out models.Report
	if err := c.do(ctx, http.MethodGet, "/api/reports/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReportStatus(ctx context.Context, id, status string) (*models.Report, error) {
	var out models.Report
	err := c.do(ctx, http.MethodPatch, "/api/reports/"+url.PathEscape(id),
		map[string]string{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reports/"+url.PathEscape(id), nil, nil)
}

// CreateUpload asks the server for a presigned PUT slot and returns the
// storage key plus the upload URL.
func (c *Client) CreateUpload(ctx context.Context) (string, string, error) {
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/uploads", nil, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}

func (c *Client) GetUploadURL(ctx context.Context, key string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	path := "/api/uploads/url?key=" + url.QueryEscape(key)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) EnsureConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	var out models.Conversation
	err := c.do(ctx, http.MethodPost, "/api/conversations",
		map[string]string{"userId": userID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListConversations(ctx context.Context) ([]*models.Conversation, error) {
	var out []*models.Conversation
	if err := c.do(ctx, http.MethodGet, "/api/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error) {
	var out []*models.Message
	path := "/api/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	var out models.Message
	path := "/api/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"content": content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
