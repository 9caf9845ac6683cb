package http

import (
	"errors"
	"net/http"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// DashboardHandler serves a user's own dashboard and the meal form behind it.
type DashboardHandler struct {
	Meals     *service.MealService
	Nutrition *service.NutritionEngine
}

type dashboardView struct {
	User   domain.User
	BMR    float64
	Totals domain.Totals
	Meals  []domain.MealLog
	Error  string
}

func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request, s *Session) {
	h.renderDashboard(w, r, s, http.StatusOK, "")
}

// HandleLogMeal stores the submitted meal and redirects back to the dashboard.
func (h *DashboardHandler) HandleLogMeal(w http.ResponseWriter, r *http.Request, s *Session) {
	user, err := service.RequireUser(s.Identity)
	if err != nil {
		writePageError(w, r, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderDashboard(w, r, s, http.StatusBadRequest, "Invalid form submission")
		return
	}

	m, err := h.Meals.LogMeal(r.Context(), s.DB, r.PostForm.Get("meal_type"), r.PostForm.Get("food_items"), user.ID)
	if errors.Is(err, service.ErrInvalidMeal) {
		h.renderDashboard(w, r, s, http.StatusBadRequest, "Choose a meal and enter at least one food item")
		return
	}
	if err != nil {
		writePageError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("meal logged", "meal_id", m.ID, "meal_type", m.MealType)
	httpx.SeeOther(w, r, "/dashboard")
}

func (h *DashboardHandler) renderDashboard(w http.ResponseWriter, r *http.Request, s *Session, status int, formErr string) {
	user, err := service.RequireUser(s.Identity)
	if err != nil {
		writePageError(w, r, err)
		return
	}

	meals, err := h.Meals.Today(r.Context(), s.DB, user.ID)
	if err != nil {
		writePageError(w, r, err)
		return
	}

	render(w, r, status, "dashboard", dashboardView{
		User:   user,
		BMR:    service.RoundTo(h.Nutrition.UserBMR(user), 2),
		Totals: h.Nutrition.Aggregate(meals),
		Meals:  meals,
		Error:  formErr,
	})
}
