package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runWithAuth(apiKey, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/lines", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	_ = BearerAuth(apiKey)(next)(c)
	return rec
}

func TestBearerAuth(t *testing.T) {
	testCases := []struct {
		name       string
		apiKey     string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no key configured runs open",
			apiKey:     "",
			authHeader: "",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "valid token",
			apiKey:     "s3cret",
			authHeader: "Bearer s3cret",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "missing header",
			apiKey:     "s3cret",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Missing Bearer token",
		},
		{
			name:       "wrong scheme",
			apiKey:     "s3cret",
			authHeader: "Basic s3cret",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Missing Bearer token",
		},
		{
			name:       "wrong token",
			apiKey:     "s3cret",
			authHeader: "Bearer wrong",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid API key",
		},
		{
			name:       "token with surrounding whitespace",
			apiKey:     "s3cret",
			authHeader: "Bearer  s3cret ",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runWithAuth(tc.apiKey, tc.authHeader)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}
