package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

func (req *RegisterRequest) decodeForm(form url.Values) error {
	req.Username = strings.TrimSpace(form.Get("username"))
	req.Password = form.Get("password")
	req.Email = strings.TrimSpace(form.Get("email"))
	return nil
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Id of the new user
	UserID int64 `json:"user_id"`
}

// NewRegisterPageHandler renders the registration form.
func NewRegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, http.StatusOK, views.PageRegister, nil)
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with an empty fridge. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Success 303 "Form post: redirect to /login"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		form := isForm(r)
		fail := func(status int, msg string) {
			if form {
				renderPage(w, r, status, views.PageRegister, map[string]any{"Error": msg, "Form": req})
				return
			}
			writeJSON(w, status, ErrorResponse{Error: msg})
		}

		if err := decodeRequest(r, &req); err != nil {
			fail(http.StatusBadRequest, "Invalid request body")
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				fail(http.StatusBadRequest, "Username or email already exists")
			case errors.Is(err, services.ErrInvalidUserInput):
				fail(http.StatusBadRequest, "Username, password and email are required")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				fail(http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		if form {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}
}

// renderPage renders an HTML page, falling back to a bare 500 when the
// template fails.
func renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	if err := views.Render(w, r, status, page, data); err != nil {
		logger.FromContext(r.Context()).Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
