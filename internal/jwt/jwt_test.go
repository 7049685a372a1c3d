package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, "bob")
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	other := New(WithSecretKey("other-secret"))
	token, err := other.Generate(ctx, 1, "carol")
	require.NoError(t, err)
	assert.Error(t, j.Validate(ctx, token), "token signed with a different key must be rejected")
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		wantToken string
		wantErr   bool
	}{
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
			},
			wantToken: "from-cookie",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer from-header")
			},
			wantToken: "from-header",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
				r.Header.Set("Authorization", "Bearer from-header")
			},
			wantToken: "from-cookie",
		},
		{
			name:    "missing",
			setup:   func(r *http.Request) {},
			wantErr: true,
		},
		{
			name: "malformed header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Token abc def")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestJWT_SessionCookies(t *testing.T) {
	j := New(WithSecretKey("secret"), WithExpiration(time.Hour))

	c := j.NewSessionCookie("tok")
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Expires.After(time.Now()))

	expired := j.ExpiredSessionCookie()
	assert.Equal(t, SessionCookieName, expired.Name)
	assert.Empty(t, expired.Value)
	assert.Equal(t, -1, expired.MaxAge)
}

func TestJWT_SecureCookie(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want bool
	}{
		{name: "default", opts: nil, want: false},
		{name: "enabled", opts: []Option{WithSecureCookie(true)}, want: true},
		{name: "disabled", opts: []Option{WithSecureCookie(false)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New(append([]Option{WithSecretKey("secret")}, tt.opts...)...)

			assert.Equal(t, tt.want, j.NewSessionCookie("tok").Secure)
			assert.Equal(t, tt.want, j.ExpiredSessionCookie().Secure)
		})
	}
}
