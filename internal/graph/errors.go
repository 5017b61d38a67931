package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// codeInvalidToken is the Graph OAuthException code for an invalid or
// expired access token.
const codeInvalidToken = 190

var (
	// ErrNotLoggedIn is returned when a call needs a token and the session
	// has none.
	ErrNotLoggedIn = errors.New("graph session not logged in")

	// ErrInvalidToken matches Graph errors that reject the access token.
	ErrInvalidToken = errors.New("graph access token invalid or expired")

	// ErrNoIdentity is returned by Login before SetIdentity.
	ErrNoIdentity = errors.New("graph session has no app identity")

	// ErrPermissionDenied is returned by Login when a requested permission
	// has not been granted to the access token.
	ErrPermissionDenied = errors.New("permission not granted")

	// ErrNoNextPage is returned by Next when the cursor has no further page.
	ErrNoNextPage = errors.New("no next page")
)

// Error is a Graph API error response.
type Error struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	Subcode     int    `json:"error_subcode"`
	UserTitle   string `json:"error_user_title"`
	UserMessage string `json:"error_user_msg"`
	TraceID     string `json:"fbtrace_id"`
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"graph API error (status %d, code %d): %s",
		e.StatusCode,
		e.Code,
		e.Message,
	)
}

// Is reports whether the error rejected the access token.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidToken &&
		(e.Code == codeInvalidToken || e.StatusCode == http.StatusUnauthorized)
}

// UserFacingMessage returns the message Graph intends for end users, falling
// back to the developer message.
func (e *Error) UserFacingMessage() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.Message
}

type errorEnvelope struct {
	Error *Error `json:"error"`
}

// parseError builds an *Error from a non-2xx response body. Bodies that are
// not a Graph error envelope are kept verbatim as the message.
func parseError(status int, body []byte) *Error {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env) //nolint:errcheck // best-effort error parsing
	if env.Error == nil {
		return &Error{StatusCode: status, Message: string(body)}
	}
	env.Error.StatusCode = status
	return env.Error
}
