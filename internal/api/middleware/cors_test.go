package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var corsHeaderNames = []string{
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Headers",
	"Access-Control-Allow-Methods",
}

func serveCORS(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCORSRegisteredEndpoints(t *testing.T) {
	// Every registry entry, with wildcards substituted by an arbitrary
	// segment, must receive all three CORS headers.
	for _, ep := range corsEndpoints {
		path := "/" + strings.ReplaceAll(strings.Join(ep.segments, "/"), "*", "foo")
		rr := serveCORS(t, ep.method, path)
		for _, h := range corsHeaderNames {
			if rr.Header().Get(h) == "" {
				t.Errorf("%s %s: missing %s", ep.method, path, h)
			}
		}
	}
}

func TestCORSHeaderValues(t *testing.T) {
	rr := serveCORS(t, http.MethodGet, "/users")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Headers"); got != "accept, content-type" {
		t.Errorf("Allow-Headers = %q", got)
	}
	// PATCH is deliberately not offered.
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "GET, HEAD, POST, DELETE, OPTIONS, PUT" {
		t.Errorf("Allow-Methods = %q", got)
	}
}

func TestCORSUnregisteredEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"setup is not CORS eligible", http.MethodPost, "/setup"},
		{"method mismatch", http.MethodDelete, "/users"},
		{"segment count too long", http.MethodGet, "/users/foo"},
		{"segment count too short", http.MethodGet, "/recoveries/foo"},
		{"literal case mismatch", http.MethodGet, "/Users"},
		{"literal content mismatch", http.MethodGet, "/userz"},
		{"root path", http.MethodGet, "/"},
		{"wildcard does not match empty segment", http.MethodGet, "/recoveries//foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveCORS(t, tt.method, tt.path)
			for _, h := range corsHeaderNames {
				if got := rr.Header().Get(h); got != "" {
					t.Errorf("%s %s: unexpected %s = %q", tt.method, tt.path, h, got)
				}
			}
		})
	}
}

func TestCORSWildcardMatchesAnySegment(t *testing.T) {
	for _, id := range []string{"42", "f~o!o", "a%20b", "UPPER", "_"} {
		rr := serveCORS(t, http.MethodPut, "/users/"+id)
		if rr.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Errorf("PUT /users/%s: wildcard should match", id)
		}
	}
}

func TestCORSUnderscoreIsLiteral(t *testing.T) {
	// "_" under permissions is a reserved literal, matched like any other
	// segment; here it also falls within the wildcard pattern.
	rr := serveCORS(t, http.MethodGet, "/permissions/_/read")
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("GET /permissions/_/read should be CORS eligible")
	}
}

func TestCORSPreservesExistingHeaders(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "kept")
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Custom"); got != "kept" {
		t.Errorf("X-Custom = %q, want kept", got)
	}
	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want handler status preserved", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("CORS headers should be added regardless of handler status")
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"", 0},
		{"/users", 1},
		{"/users/", 1},
		{"/users/42", 2},
		{"/users//42", 3},
	}
	for _, tt := range tests {
		if got := len(splitPath(tt.path)); got != tt.want {
			t.Errorf("splitPath(%q) = %d segments, want %d", tt.path, got, tt.want)
		}
	}
}
