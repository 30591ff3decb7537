package failure

import (
	"errors"
	"net/http"
)

// StatusClientClosedRequest marks an interactive flow abandoned by the
// user. Not a registered HTTP status; the auth surface has no wire code
// for "the user closed the window".
const StatusClientClosedRequest = 499

// Failure is a wrapper for error messages and codes. Codes follow the
// HTTP status codes the remote document store reports natively.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var MissingCallbackParams = &Failure{Code: http.StatusBadRequest, Message: "callback URL is missing the secret or userId parameter"}
var SessionMissing = &Failure{Code: http.StatusUnauthorized, Message: "no active session"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthenticated requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Cancelled returns a new Failure for a user-abandoned interactive flow.
func Cancelled(msg string) error {
	return &Failure{
		Code:    StatusClientClosedRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Remote returns a new Failure carrying the code and message reported by
// the remote store, so callers can classify with GetCode.
func Remote(code int, msg string) error {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// IsCancelled reports whether err is a user-cancellation failure.
func IsCancelled(err error) bool {
	return GetCode(err) == StatusClientClosedRequest
}
