package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gamesleague/platform/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidName         = "INVALID_NAME"
	CodeInvalidEmail        = "INVALID_EMAIL"
	CodeInvalidGameType     = "INVALID_GAME_TYPE"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeLeagueNotFound      = "LEAGUE_NOT_FOUND"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeDuplicateLeagueName = "DUPLICATE_LEAGUE_NAME"
	CodeNoActiveInvite      = "NO_ACTIVE_INVITE"
	CodeNotAMember          = "NOT_A_MEMBER"
	CodeNotAnOwner          = "NOT_AN_OWNER"
	CodeLastOwner           = "LAST_OWNER"
	CodeLeagueClosed        = "LEAGUE_CLOSED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrLeagueNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLeagueNotFound, "League not found"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Name must be non-empty and within length limits"}}
	case errors.Is(err, model.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidEmail, "Email is malformed"}}
	case errors.Is(err, model.ErrInvalidGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameType, "Unknown game type"}}
	case errors.Is(err, model.ErrDuplicateEmail):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateEmail, "Email is already in use"}}
	case errors.Is(err, model.ErrDuplicateLeagueName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateLeagueName, "League name is already in use"}}
	case errors.Is(err, model.ErrNoActiveInvite):
		return &httpError{http.StatusConflict, APIError{CodeNoActiveInvite, "No active invitation"}}
	case errors.Is(err, model.ErrNotAMember):
		return &httpError{http.StatusConflict, APIError{CodeNotAMember, "Player is not a member of this league"}}
	case errors.Is(err, model.ErrNotAnOwner):
		return &httpError{http.StatusConflict, APIError{CodeNotAnOwner, "Player is not an owner of this league"}}
	case errors.Is(err, model.ErrLastOwner):
		return &httpError{http.StatusConflict, APIError{CodeLastOwner, "A league must keep at least one owner"}}
	case errors.Is(err, model.ErrLeagueClosed):
		return &httpError{http.StatusConflict, APIError{CodeLeagueClosed, "League is already closed"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
