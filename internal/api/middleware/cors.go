package middleware

import (
	"net/http"
	"strings"
)

// endpoint is a CORS-eligible route: an HTTP method plus the exact sequence
// of path segments. A "*" segment matches any single non-empty segment;
// every other segment must match literally (case-sensitive). The segment
// count must match exactly — there is no prefix or greedy matching.
type endpoint struct {
	method   string
	segments []string
}

// corsEndpoints is the fixed, process-wide registry of routes that receive
// CORS headers. Note the literal "_" segment under permissions: it is a
// reserved path value, not a wildcard.
var corsEndpoints = []endpoint{
	{http.MethodPost, []string{"invitations"}},
	{http.MethodGet, []string{"invitations"}},
	{http.MethodDelete, []string{"invitations"}},
	{http.MethodPost, []string{"users"}},
	{http.MethodGet, []string{"users"}},
	{http.MethodPut, []string{"users", "*"}},
	{http.MethodPost, []string{"users", "*"}},
	{http.MethodPost, []string{"recoveries", "*"}},
	{http.MethodGet, []string{"recoveries", "*", "*"}},
	{http.MethodGet, []string{"permissions"}},
	{http.MethodGet, []string{"permissions", "*"}},
	{http.MethodGet, []string{"permissions", "*", "*"}},
	{http.MethodGet, []string{"permissions", "_", "*"}},
	{http.MethodPut, []string{"permissions", "*", "*"}},
}

const (
	corsAllowHeaders = "accept, content-type"
	corsAllowMethods = "GET, HEAD, POST, DELETE, OPTIONS, PUT"
)

// CORS annotates responses for registered endpoints with cross-origin
// headers. Requests that match no registry entry pass through untouched —
// no CORS headers at all. The gate only adds headers; it never rewrites or
// removes ones set by handlers.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if corsEligible(r.Method, r.URL.Path) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		}
		next.ServeHTTP(w, r)
	})
}

// corsEligible reports whether method+path fully match any registry entry.
// The scan stops at the first full match.
func corsEligible(method, path string) bool {
	segs := splitPath(path)
	for _, ep := range corsEndpoints {
		if ep.method != method || len(ep.segments) != len(segs) {
			continue
		}
		if matchSegments(ep.segments, segs) {
			return true
		}
	}
	return false
}

func matchSegments(pattern, segs []string) bool {
	for i, p := range pattern {
		if p == "*" {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if segs[i] != p {
			return false
		}
	}
	return true
}

// splitPath splits a URL path into segments. "/" and "" yield zero segments,
// so a zero-segment pattern would match only the root path.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
