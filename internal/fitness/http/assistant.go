package http

import (
	"net/http"

	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/spanosdk"
)

// AssistantHandler answers nutrition questions for the signed-in user.
type AssistantHandler struct {
	Assistant *service.AssistantService
}

// Handle godoc
//
//	@Summary		Ask the nutrition assistant
//	@Description	Sends the question to the language model together with the caller's
//	@Description	profile and today's meals.
//	@Tags			Assistant
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			body	body		spanosdk.AskRequest		true	"Question"
//	@Success		200		{object}	spanosdk.AskResponse	"Answer"
//	@Failure		400		{object}	spanosdk.APIError		"Malformed body or empty prompt"
//	@Failure		401		{object}	spanosdk.APIError		"Not signed in"
//	@Failure		429		{object}	spanosdk.APIError		"Rate limited"
//	@Failure		503		{object}	spanosdk.APIError		"Model unavailable"
//	@Router			/ai/ask [post]
func (h *AssistantHandler) Handle(w http.ResponseWriter, r *http.Request, s *Session) {
	user, err := service.RequireUser(s.Identity)
	if err != nil {
		apiError(r, err).WriteError(w)
		return
	}

	var req spanosdk.AskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		spanosdk.ErrInvalidRequest.WithDescription("body must be a JSON object with a prompt").WriteError(w)
		return
	}

	answer, err := h.Assistant.Ask(r.Context(), s.DB, user, req.Prompt)
	if err != nil {
		apiError(r, err).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, spanosdk.AskResponse{Response: answer})
}
