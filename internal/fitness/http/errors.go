package http

import (
	"errors"
	"net/http"

	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
	"github.com/spano-fitness/spano/pkg/spanosdk"
)

const forbiddenMessage = "The user doesn't have enough privileges"

// apiError maps a service error onto its wire form. Unknown errors are
// logged and become a generic 500.
func apiError(r *http.Request, err error) *spanosdk.APIError {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		return spanosdk.ErrUnauthenticated.WithDescription("Not authenticated")
	case errors.Is(err, service.ErrForbidden):
		return spanosdk.ErrForbidden.WithDescription(forbiddenMessage)
	case errors.Is(err, service.ErrUserNotFound):
		return spanosdk.ErrNotFound
	case errors.Is(err, service.ErrMalformedCommand):
		return spanosdk.ErrInvalidRequest.WithDescription("Invalid message format. Expected 'log <meal_type>: <items>'.")
	case errors.Is(err, service.ErrInvalidPrompt):
		return spanosdk.ErrInvalidRequest.WithDescription("prompt must not be empty")
	case errors.Is(err, service.ErrInvalidMeal):
		return spanosdk.ErrInvalidRequest.WithDescription("meal type and food items are required")
	case errors.Is(err, service.ErrAssistantUnavailable):
		return spanosdk.ErrUnavailable
	default:
		slogx.FromContext(r.Context()).Error("unhandled error", "err", err)
		return spanosdk.ErrServerError
	}
}

// writePageError is the page-route counterpart of apiError: missing sessions
// bounce to /login, a failed admin check renders 403.
func writePageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		httpx.Found(w, r, "/login")
	case errors.Is(err, service.ErrForbidden):
		renderError(w, r, http.StatusForbidden, forbiddenMessage)
	default:
		slogx.FromContext(r.Context()).Error("unhandled error", "err", err)
		renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
