package pkg

import "fmt"

// AppError carries a machine-readable code, a safe client message and the
// HTTP status the handlers should respond with. The wrapped error is for
// server-side logs only and never reaches the client.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON envelope returned to clients for any failure.
type HTTPError struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Details,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewValidationError carries the full ordered list of field-level violations
// so clients can display every problem at once.
func NewValidationError(message string, details []string, httpStatus int) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Details: details, HTTPStatus: httpStatus}
}
