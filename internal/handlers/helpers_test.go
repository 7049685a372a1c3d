package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-diet-tracker/internal/jwt"
)

const validToken = "valid-token"

var testClaims = &jwt.Claims{UserID: 7, Username: "alice"}

// newBodyRequest builds a request whose body is JSON, or form encoded when
// body is url.Values. A string body is sent as is.
func newBodyRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var (
		reader      io.Reader
		contentType = "application/json"
	)
	switch v := body.(type) {
	case nil:
		reader = http.NoBody
	case url.Values:
		reader = strings.NewReader(v.Encode())
		contentType = "application/x-www-form-urlencoded"
	case string:
		reader = strings.NewReader(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", contentType)
	return req
}

func expectSession(m *MockTokener) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	m.EXPECT().GetClaims(gomock.Any(), validToken).Return(testClaims, nil)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}
