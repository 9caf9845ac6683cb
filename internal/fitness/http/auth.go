package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/spano-fitness/spano/internal/fitness/service"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// AuthHandler serves the login, signup and logout pages.
type AuthHandler struct {
	Users         *service.UserService
	Tokens        *service.TokenService
	SecureCookies bool
}

type loginView struct {
	Username string
	Error    string
}

// signupFormView echoes the submitted values back into the form.
type signupFormView struct {
	Name   string
	Age    string
	Weight string
	Height string
	Gender string
	Goal   string
}

type signupView struct {
	Form  signupFormView
	Error string
}

func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "login", loginView{})
}

// HandleLogin checks the submitted credentials, sets the session cookie and
// sends admins to the admin dashboard and everyone else to their own.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request, s *Session) {
	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, "login", loginView{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	user, err := h.Users.Authenticate(r.Context(), s.DB, username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slogx.FromContext(r.Context()).Info("login failed", "username", username)
		render(w, r, http.StatusUnauthorized, "login", loginView{
			Username: username,
			Error:    "Invalid username or password",
		})
		return
	}
	if err != nil {
		writePageError(w, r, err)
		return
	}

	token, err := h.Tokens.Issue(user.Name)
	if err != nil {
		writePageError(w, r, err)
		return
	}
	httpx.SetSessionCookie(w, token, h.SecureCookies)

	slogx.Annotate(r.Context(), "user", user.Name)
	if user.IsAdmin {
		httpx.SeeOther(w, r, "/admin/dashboard")
		return
	}
	httpx.SeeOther(w, r, "/dashboard")
}

func (h *AuthHandler) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "signup", signupView{Form: signupFormView{Gender: "male"}})
}

// HandleSignup creates a plain user account and sends the browser to /login.
// Invalid input re-renders the form with 400, a taken name with 409.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request, s *Session) {
	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, "signup", signupView{Error: "Invalid form submission"})
		return
	}

	form := signupFormView{
		Name:   strings.TrimSpace(r.PostForm.Get("name")),
		Age:    strings.TrimSpace(r.PostForm.Get("age")),
		Weight: strings.TrimSpace(r.PostForm.Get("weight")),
		Height: strings.TrimSpace(r.PostForm.Get("height")),
		Gender: strings.TrimSpace(r.PostForm.Get("gender")),
		Goal:   strings.TrimSpace(r.PostForm.Get("goal")),
	}

	req, err := parseSignup(form, r.PostForm.Get("password"))
	if err != nil {
		render(w, r, http.StatusBadRequest, "signup", signupView{Form: form, Error: "Invalid signup: " + err.Error()})
		return
	}

	_, err = h.Users.Signup(r.Context(), s.DB, req)
	switch {
	case errors.Is(err, service.ErrDuplicateUser):
		render(w, r, http.StatusConflict, "signup", signupView{Form: form, Error: "Username already registered"})
		return
	case errors.Is(err, service.ErrInvalidSignup):
		msg := strings.TrimPrefix(err.Error(), service.ErrInvalidSignup.Error()+": ")
		render(w, r, http.StatusBadRequest, "signup", signupView{Form: form, Error: "Invalid signup: " + msg})
		return
	case err != nil:
		writePageError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user signed up", "username", req.Name)
	httpx.SeeOther(w, r, "/login")
}

func parseSignup(f signupFormView, password string) (service.SignupRequest, error) {
	age, err := strconv.Atoi(f.Age)
	if err != nil {
		return service.SignupRequest{}, errors.New("age must be a whole number")
	}
	weight, err := strconv.ParseFloat(f.Weight, 64)
	if err != nil {
		return service.SignupRequest{}, errors.New("weight must be a number")
	}
	height, err := strconv.ParseFloat(f.Height, 64)
	if err != nil {
		return service.SignupRequest{}, errors.New("height must be a number")
	}
	return service.SignupRequest{
		Name:     f.Name,
		Password: password,
		Age:      age,
		WeightKg: weight,
		HeightCm: height,
		Gender:   f.Gender,
		Goal:     f.Goal,
	}, nil
}

// HandleLogout drops the session cookie. It does not need a valid session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.SecureCookies)
	httpx.Found(w, r, "/login")
}
