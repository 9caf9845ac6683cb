package spanosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// WebhookSecretHeader carries the optional shared webhook secret.
const WebhookSecretHeader = "X-Webhook-Secret"

// Client talks to a Spano server. It keeps the session cookie between calls
// and does not follow redirects.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// WebhookSecret is sent with webhook calls when non-empty.
	WebhookSecret string
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// PageError is returned when a page route answers with something other than
// the expected redirect, e.g. a re-rendered form.
type PageError struct {
	StatusCode int
	Body       string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page responded %d", e.StatusCode)
}

// Signup creates an account. On success the server redirects to /login.
func (c *Client) Signup(ctx context.Context, f SignupForm) error {
	form := url.Values{
		"name":     {f.Name},
		"password": {f.Password},
		"age":      {strconv.Itoa(f.Age)},
		"weight":   {strconv.FormatFloat(f.Weight, 'f', -1, 64)},
		"height":   {strconv.FormatFloat(f.Height, 'f', -1, 64)},
		"gender":   {f.Gender},
		"goal":     {f.Goal},
	}
	_, err := c.postFormExpectRedirect(ctx, "/signup", form)
	return err
}

// Login authenticates and stores the session cookie. It returns the page the
// server redirected to, /dashboard or /admin/dashboard.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	return c.postFormExpectRedirect(ctx, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

// Logout clears the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/logout", nil, nil)
	if err != nil {
		return err
	}
	_, err = expectRedirect(resp)
	return err
}

// LogMeal submits the dashboard meal form.
func (c *Client) LogMeal(ctx context.Context, mealType, foodItems string) error {
	_, err := c.postFormExpectRedirect(ctx, "/dashboard/log-meal", url.Values{
		"meal_type":  {mealType},
		"food_items": {foodItems},
	})
	return err
}

// Page fetches a page and returns its status, redirect target (if any) and body.
func (c *Client) Page(ctx context.Context, path string) (int, string, string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, resp.Header.Get("Location"), string(body), nil
}

// Webhook logs a meal through the chat webhook.
func (c *Client) Webhook(ctx context.Context, req WebhookRequest) (*WebhookResponse, error) {
	headers := map[string]string{}
	if c.WebhookSecret != "" {
		headers[WebhookSecretHeader] = c.WebhookSecret
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/webhook/", req, headers)
	if err != nil {
		return nil, err
	}

	var out WebhookResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ask sends a question to the assistant for the signed-in user.
func (c *Client) Ask(ctx context.Context, prompt string) (*AskResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/ai/ask", AskRequest{Prompt: prompt}, nil)
	if err != nil {
		return nil, err
	}

	var out AskResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var h HealthResponse
	if err := decodeJSON(resp, &h, http.StatusOK); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) postFormExpectRedirect(ctx context.Context, path string, form url.Values) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return "", err
	}
	return expectRedirect(resp)
}

func (c *Client) doJSON(ctx context.Context, method, path string, v any, headers map[string]string) (*http.Response, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"
	return c.do(ctx, method, path, bytes.NewReader(payload), headers)
}
