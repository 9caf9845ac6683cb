package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
	"github.com/spano-fitness/spano/pkg/spanosdk"
)

// WebhookHandler logs meals sent as chat commands.
type WebhookHandler struct {
	Webhooks *service.WebhookService
}

// Handle godoc
//
//	@Summary		Log a meal from a chat message
//	@Description	Parses "log <meal_type>: <items>" and logs the meal for user_name.
//	@Description	The user is looked up before the message is parsed, so an unknown user
//	@Description	is reported as 404 even when the message is malformed.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Security		WebhookSecret
//	@Param			body	body		spanosdk.WebhookRequest		true	"Chat message"
//	@Success		200		{object}	spanosdk.WebhookResponse	"Meal logged"
//	@Failure		400		{object}	spanosdk.APIError			"Malformed body or command"
//	@Failure		401		{object}	spanosdk.APIError			"Bad webhook secret or session cookie"
//	@Failure		404		{object}	spanosdk.APIError			"Unknown user"
//	@Failure		429		{object}	spanosdk.APIError			"Rate limited"
//	@Router			/webhook/ [post]
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request, s *Session) {
	var req spanosdk.WebhookRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		spanosdk.ErrInvalidRequest.WithDescription("body must be a JSON object with user_name and message").WriteError(w)
		return
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" {
		spanosdk.ErrInvalidRequest.WithDescription("user_name is required").WriteError(w)
		return
	}

	meal, err := h.Webhooks.Handle(r.Context(), s.DB, req.UserName, req.Message)
	if errors.Is(err, service.ErrUserNotFound) {
		spanosdk.ErrNotFound.WithDescription(fmt.Sprintf("User '%s' not found.", req.UserName)).WriteError(w)
		return
	}
	if err != nil {
		apiError(r, err).WriteError(w)
		return
	}

	slogx.FromContext(r.Context()).Info("webhook meal logged",
		"for_user", req.UserName,
		"meal_id", meal.ID,
		"meal_type", meal.MealType,
	)
	httpx.WriteJSON(w, http.StatusOK, spanosdk.WebhookResponse{
		Status: "success",
		Detail: fmt.Sprintf("Successfully logged %s for user %s.", meal.MealType, req.UserName),
	})
}
