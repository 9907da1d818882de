package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/iac-studio/users/internal/api/types"
	"github.com/iac-studio/users/internal/repository"
	"github.com/iac-studio/users/internal/users"
)

// defaultAdminName is used when the setup payload omits a username.
const defaultAdminName = "admin"

// SetupHandler performs first-run creation of the administrative account.
type SetupHandler struct {
	users repository.UserRepository
}

func NewSetupHandler(repo repository.UserRepository) *SetupHandler {
	return &SetupHandler{users: repo}
}

// Setup creates the initial admin user.
//
// An absent email is accepted: administrators may configure one later. Any
// other validation failure is a 400. Calling setup twice attempts two
// creations; deduplication is the store's contract.
//
//	@Summary	Bootstrap the administrative account
//	@Accept		json
//	@Produce	json
//	@Param		body	body	object	true	"{username?, email?, password}"
//	@Success	200
//	@Failure	400	{object}	types.APIResponse
//	@Failure	500	{object}	types.APIResponse
//	@Router		/setup [post]
func (h *SetupHandler) Setup(w http.ResponseWriter, r *http.Request) {
	// Pointer fields distinguish absent from present-but-empty: defaults
	// are substituted only for truly absent fields.
	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password string  `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	name := defaultAdminName
	if req.Username != nil {
		name = *req.Username
	}
	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	admin, berr := users.NewBuilder().
		Name(name).
		Email(email).
		Password(req.Password).
		Build()
	if berr != nil {
		if berr.Kind != users.EmptyEmail {
			writeErrorStr(w, http.StatusBadRequest, "bad request")
			return
		}
		admin = berr.User
	}

	if err := h.users.Create(r.Context(), admin); err != nil {
		// Storage detail stays out of the response.
		writeErrorStr(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: "invalid", Message: msg}})
}
