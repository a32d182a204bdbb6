package serverutils

import "fmt"

// ApiError carries the HTTP status a service-layer failure maps to:
// 400 bad input, 401/403 auth and ownership, 404 not found, 500 upstream.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func BadRequest(message string) *ApiError {
	return &ApiError{Code: 400, Message: message}
}

func Unauthorized(message string) *ApiError {
	return &ApiError{Code: 401, Message: message}
}

func Forbidden(message string) *ApiError {
	return &ApiError{Code: 403, Message: message}
}

func NotFound(message string) *ApiError {
	return &ApiError{Code: 404, Message: message}
}

// Upstream wraps a provider failure. The upstream message is embedded in the
// response body; no retry is attempted anywhere.
func Upstream(stage string, err error) *ApiError {
	return &ApiError{Code: 500, Message: fmt.Sprintf("Error %s: %v", stage, err)}
}
