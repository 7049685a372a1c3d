package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/services"
	"github.com/sbilibin2017/gw-diet-tracker/internal/views"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

func (req *LoginRequest) decodeForm(form url.Values) error {
	req.Username = strings.TrimSpace(form.Get("username"))
	req.Password = form.Get("password")
	return nil
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token, also set as the session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginPageHandler renders the login form.
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, http.StatusOK, views.PageLogin, nil)
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user, set the session cookie and return the JWT token
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Success 303 "Form post: redirect to /"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessions SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		form := isForm(r)
		fail := func(status int, msg string) {
			if form {
				renderPage(w, r, status, views.PageLogin, map[string]any{"Error": msg, "Form": req})
				return
			}
			writeJSON(w, status, ErrorResponse{Error: msg})
		}

		if err := decodeRequest(r, &req); err != nil {
			fail(http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				fail(http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				fail(http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, sessions.NewSessionCookie(token))

		if form {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// NewLogoutHandler clears the session cookie and sends the user to the login page.
// @Summary Log out
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [get]
func NewLogoutHandler(sessions SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessions.ExpiredSessionCookie())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
