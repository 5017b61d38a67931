package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SessionService manages the provider's Graph session.
type SessionService interface {
	Login(ctx context.Context) (bool, error)
	LoginWithPermissions(ctx context.Context, permissions []string) (bool, error)
	Logout(ctx context.Context) error
	LoggedIn() bool
	Permissions() []string
}

// SessionHandler serves the session endpoints.
type SessionHandler struct {
	svc SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// SessionOutput describes the current session.
type SessionOutput struct {
	Body struct {
		LoggedIn    bool     `json:"logged_in"`
		Permissions []string `json:"permissions"`
	}
}

// LoginInput is the request for the login endpoint. Without permissions the
// stored set is used.
type LoginInput struct {
	Body struct {
		Permissions []string `json:"permissions,omitempty" doc:"Permissions to request"`
	} `required:"false"`
}

// GetSession returns the session state.
func (h *SessionHandler) GetSession(_ context.Context, _ *struct{}) (*SessionOutput, error) {
	return h.state(), nil
}

// Login logs in. A rejected login is reported as logged_in=false.
func (h *SessionHandler) Login(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	var err error
	if len(input.Body.Permissions) > 0 {
		_, err = h.svc.LoginWithPermissions(ctx, input.Body.Permissions)
	} else {
		_, err = h.svc.Login(ctx)
	}
	if err != nil {
		return nil, providerError("logging in", err)
	}
	return h.state(), nil
}

// Logout ends the session.
func (h *SessionHandler) Logout(ctx context.Context, _ *struct{}) (*SessionOutput, error) {
	if err := h.svc.Logout(ctx); err != nil {
		return nil, providerError("logging out", err)
	}
	return h.state(), nil
}

func (h *SessionHandler) state() *SessionOutput {
	out := &SessionOutput{}
	out.Body.LoggedIn = h.svc.LoggedIn()
	out.Body.Permissions = h.svc.Permissions()
	return out
}

// RegisterSessionRoutes registers the session endpoints with the Huma API.
func RegisterSessionRoutes(api huma.API, h *SessionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Get session state",
		Tags:        []string{"session"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/login",
		Summary:     "Log in",
		Description: "Logs in with the given permissions, or the stored set when none are given.",
		Tags:        []string{"session"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.Login)

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/logout",
		Summary:     "Log out",
		Tags:        []string{"session"},
		Errors:      []int{http.StatusServiceUnavailable},
	}, h.Logout)
}
