package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// TB is the subset of testing.TB the assertion helpers need.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// Serve runs the request through h and returns the recorded response.
func Serve(h http.Handler, req *http.Request) *ResponseRecorder {
	rec := NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t TB, expected int) {
	t.Helper()
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertHeader checks a response header value.
func (r *ResponseRecorder) AssertHeader(t TB, key, expected string) {
	t.Helper()
	if got := r.Header().Get(key); got != expected {
		t.Errorf("%s: got %q, want %q", key, got, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t TB, expected string) {
	t.Helper()
	if body := r.Body.String(); !strings.Contains(body, expected) {
		t.Errorf("response body %q does not contain %q", body, expected)
	}
}

// AssertBody checks the response body for an exact match.
func (r *ResponseRecorder) AssertBody(t TB, expected string) {
	t.Helper()
	if body := r.Body.String(); body != expected {
		t.Errorf("response body: got %q, want %q", body, expected)
	}
}
