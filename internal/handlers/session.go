package handlers

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-diet-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
)

// Tokener extracts the session of the current user.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionCookies builds the session cookie set at login and cleared at logout.
type SessionCookies interface {
	NewSessionCookie(token string) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
}

// currentUser returns the claims of the logged in user, answering 401 when
// there is none.
func currentUser(w http.ResponseWriter, r *http.Request, tokener Tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get token from request", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get claims from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}
