package fitness_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/spano-fitness/spano/pkg/spanosdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL := setupSpanoContainer(t, nil)
	client := newClient(baseURL)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "disabled", ready.Checks.Assistant)
}

func TestSignupLoginDashboardFlow(t *testing.T) {
	baseURL := setupSpanoContainer(t, nil)
	ctx := t.Context()
	client := newClient(baseURL)

	form := spanosdk.SignupForm{
		Name: "maya", Password: "maya-pw", Age: 30, Weight: 70, Height: 175, Gender: "female", Goal: "run a 10k",
	}
	require.NoError(t, client.Signup(ctx, form))

	err := client.Signup(ctx, form)
	var pageErr *spanosdk.PageError
	require.ErrorAs(t, err, &pageErr)
	require.Equal(t, http.StatusConflict, pageErr.StatusCode)
	require.Contains(t, pageErr.Body, "Username already registered")

	dest, err := client.Login(ctx, "maya", "maya-pw")
	require.NoError(t, err)
	require.Equal(t, "/dashboard", dest)

	require.NoError(t, client.LogMeal(ctx, "Dinner", "dal, cucumber"))

	status, _, body, err := client.Page(ctx, "/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "1507.13") // female BMR for 70kg, 175cm, 30y
	require.Contains(t, body, "196 kcal")
	require.Contains(t, body, "dal, cucumber")

	// Plain users may not see the admin list.
	status, _, _, err = client.Page(ctx, "/admin/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, status)

	require.NoError(t, client.Logout(ctx))
	status, location, _, err := client.Page(ctx, "/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, status)
	require.Equal(t, "/login", location)
}

func TestDefaultAdminSeesUsers(t *testing.T) {
	baseURL := setupSpanoContainer(t, nil)
	admin := loginAs(t, baseURL, adminUser, adminPass)

	status, _, body, err := admin.Page(t.Context(), "/admin/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "<td>"+defaultUser+"</td>")
	require.Contains(t, body, "<td>"+adminUser+"</td>")
}

func TestWebhookLogsMeal(t *testing.T) {
	baseURL := setupSpanoContainer(t, nil)
	ctx := t.Context()
	client := newClient(baseURL)

	resp, err := client.Webhook(ctx, spanosdk.WebhookRequest{UserName: defaultUser, Message: "log breakfast: dal"})
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status)
	require.Equal(t, "Successfully logged Breakfast for user user.", resp.Detail)

	_, err = client.Webhook(ctx, spanosdk.WebhookRequest{UserName: "nobody", Message: "nonsense"})
	require.ErrorIs(t, err, spanosdk.ErrNotFound)

	_, err = client.Webhook(ctx, spanosdk.WebhookRequest{UserName: defaultUser, Message: "nonsense"})
	require.ErrorIs(t, err, spanosdk.ErrInvalidRequest)

	noSecret := spanosdk.NewClient(baseURL)
	_, err = noSecret.Webhook(ctx, spanosdk.WebhookRequest{UserName: defaultUser, Message: "log lunch: dal"})
	require.ErrorIs(t, err, spanosdk.ErrUnauthenticated)

	user := loginAs(t, baseURL, defaultUser, defaultUserPass)
	_, _, body, err := user.Page(ctx, "/dashboard")
	require.NoError(t, err)
	require.Contains(t, body, "Breakfast")
	require.Contains(t, body, "180 kcal")
}

func TestAssistantWithoutModel(t *testing.T) {
	baseURL := setupSpanoContainer(t, nil)
	ctx := t.Context()

	_, err := newClient(baseURL).Ask(ctx, "hello")
	require.ErrorIs(t, err, spanosdk.ErrUnauthenticated)

	user := loginAs(t, baseURL, defaultUser, defaultUserPass)
	_, err = user.Ask(ctx, "what should I eat?")
	require.ErrorIs(t, err, spanosdk.ErrUnavailable)

	var apiErr *spanosdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestLoginRateLimit(t *testing.T) {
	baseURL := setupSpanoContainer(t, map[string]string{
		"RATELIMIT_AUTH_REQUESTS": "1",
		"RATELIMIT_AUTH_BURST":    "2",
	})
	client := newClient(baseURL)

	var last error
	for range 5 {
		_, last = client.Login(t.Context(), defaultUser, "wrong")
	}

	var apiErr *spanosdk.APIError
	require.ErrorAs(t, last, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, spanosdk.ErrorCodeRateLimited, apiErr.Code)
}
