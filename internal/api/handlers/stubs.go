package handlers

import "net/http"

// NotImplemented answers for routes whose behavior is deliberately deferred
// (invitations, users, recoveries, permissions). It validates nothing and
// changes no state.
func NotImplemented(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "not implemented", http.StatusNotImplemented)
}
