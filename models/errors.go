package models

import (
	"errors"
	"net/http"
)

// AppError is an error that maps directly onto an HTTP error response.
//
// Key identifies the failure within the catalog below and is what tests and
// callers compare on. Reason is only set for authentication failures, where
// the wire error_code is a string reason instead of the numeric status.
type AppError struct {
	Status  int
	Key     string
	Reason  string
	Message string
}

func (e *AppError) Error() string {
	return e.Key + ": " + e.Message
}

// Is reports whether target is an AppError of the same catalog entry.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Key == t.Key && e.Status == t.Status
}

// WithMessage returns a copy of the error carrying a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	c := *e
	c.Message = message
	return &c
}

// ErrorCode returns the value sent as error_code on the wire.
func (e *AppError) ErrorCode() interface{} {
	if e.Reason != "" {
		return e.Reason
	}
	return e.Status
}

// StatusText returns the short description sent as error. Authentication
// failures answered with 400 read "Bad request".
func (e *AppError) StatusText() string {
	if e.Reason != "" && e.Status == http.StatusBadRequest {
		return "Bad request"
	}
	return StatusText(e.Status)
}

// StatusText returns the short HTTP description used in error bodies.
func StatusText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusMethodNotAllowed:
		return "Method not Allowed"
	case http.StatusUnprocessableEntity:
		return "Unprocessable Entity"
	default:
		return "Server Error"
	}
}

func newError(status int, key, message string) *AppError {
	return &AppError{Status: status, Key: key, Message: message}
}

func newAuthError(status int, key, reason, message string) *AppError {
	return &AppError{Status: status, Key: key, Reason: reason, Message: message}
}

// Request errors
var (
	ErrVolunteerNotFound = newError(http.StatusNotFound, "vol_not_found", "There are no volunteers with the provided id.")
	ErrGroupNotFound     = newError(http.StatusNotFound, "gr_not_found", "There are no groups with the provided id.")
	ErrRoleNotFound      = newError(http.StatusNotFound, "rol_not_found", "There are no roles with the provided id.")
	ErrVehicleNotFound   = newError(http.StatusNotFound, "veh_not_found", "There are no vehicles with the provided id.")
	ErrServiceNotFound   = newError(http.StatusNotFound, "ser_not_found", "There are no services with the provided id.")

	ErrBodyNeeded   = newError(http.StatusBadRequest, "body_needed", "A data object should be sent on the request.")
	ErrMissingData  = newError(http.StatusBadRequest, "missing_data", "There are missing required data on the object sent.")
	ErrInvalidRole  = newError(http.StatusBadRequest, "invalid_role", "The role id provided in not valid.")
	ErrInvalidGroup = newError(http.StatusBadRequest, "invalid_group", "The group id provided in not valid.")
	ErrMaxGroups    = newError(http.StatusBadRequest, "max_groups", "A volunteer cannot be on more than 5 groups.")
	ErrInvalidList  = newError(http.StatusBadRequest, "invalid_list", "There is at least one invalid id on the lists provided.")
	ErrWrongType    = newError(http.StatusBadRequest, "wrong_type", "An attribute sent has a wrong type. Please double check all values.")
	ErrBadDate      = newError(http.StatusBadRequest, "bad_date", "The date provided is incorrectly formated. Please use [YYYY-MM-DD].")
	ErrBadFullDate  = newError(http.StatusBadRequest, "bad_full_date", "The date provided is incorrectly formated. Please use [YYYY-MM-DD, hh:mm].")

	ErrForbiddenDelete     = newError(http.StatusForbidden, "forbidden_del", "Sorry, this resource is permanent and cannot be deleted.")
	ErrForbiddenUpdate     = newError(http.StatusForbidden, "forbidden_upd", "Sorry, this resource is permanent and cannot be changed.")
	ErrForbiddenDateUpdate = newError(http.StatusForbidden, "forbidden_date_upd", "This service has already passed and can no longer be changed.")

	ErrNotFound      = newError(http.StatusNotFound, "not_found", "Resource not found on database.")
	ErrNotAllowed    = newError(http.StatusMethodNotAllowed, "not_allowed", "Are you handling the correct endpoint?")
	ErrBadRequest    = newError(http.StatusBadRequest, "bad_request", "Your request is incorrect and cannot be processed. Please double check it.")
	ErrUnprocessable = newError(http.StatusUnprocessableEntity, "unprocessable", "Your request could not be processed. Are you sure your request is correct?")
	ErrServerError   = newError(http.StatusInternalServerError, "server_error", "That's very embarassing, but something has failed on the backend... :(")
)

// Authentication errors
var (
	ErrAuthHeaderMissing = newAuthError(http.StatusUnauthorized, "authorization_header_missing", "authorization_header_missing", "Authorization header is expected.")
	ErrNoBearer          = newAuthError(http.StatusUnauthorized, "no_bearer", "invalid_header", "Authorization header must start with \"Bearer\".")
	ErrTokenNotFound     = newAuthError(http.StatusUnauthorized, "token_not_found", "invalid_header", "Token not found.")
	ErrNoBearerToken     = newAuthError(http.StatusUnauthorized, "no_bearer_token", "invalid_header", "Authorization header must be bearer token.")
	ErrAuthMalformed     = newAuthError(http.StatusUnauthorized, "auth_malformed", "invalid_header", "Authorization malformed.")
	ErrTokenExpired      = newAuthError(http.StatusUnauthorized, "token_expired", "token_expired", "Token expired.")
	ErrInvalidClaims     = newAuthError(http.StatusUnauthorized, "invalid_claims", "invalid_claims", "Incorrect claims. Please, check the audience and issuer.")
	ErrParsingFailed     = newAuthError(http.StatusBadRequest, "parsing_failed", "invalid_header", "Unable to parse authentication token.")
	ErrKeyNotFound       = newAuthError(http.StatusBadRequest, "key_not_found", "invalid_header", "Unable to find the appropriate key.")
	ErrPermissionsFailed = newAuthError(http.StatusBadRequest, "permissions_failed", "invalid_header", "Unable to check permissions.")
	ErrNoPermission      = newAuthError(http.StatusForbidden, "no_permission", "no_permission", "User has no permission to access the requested content.")
)

// AsAppError extracts an AppError from err. Anything that is not already one
// becomes an unprocessable entity error.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrUnprocessable
}
