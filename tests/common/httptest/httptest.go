//go:build unit || e2e

package httptest

import (
	"bytes"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// PerformRequest executes a plain HTTP request against the router.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBuffer(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformForm submits form values the way a browser posts the booking form.
func PerformForm(t *testing.T, router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// RedirectLocation extracts the Location header of a redirect response.
func RedirectLocation(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	loc := w.Header().Get("Location")
	if loc == "" {
		t.Fatalf("expected redirect, got status %d with no Location header", w.Code)
	}
	return loc
}

// BodyContains reports whether the rendered response body contains s.
func BodyContains(w *httptest.ResponseRecorder, s string) bool {
	return strings.Contains(w.Body.String(), s)
}
