package errors

import "fmt"

var (
	// Entity store
	ErrEquipmentNotFound = fmt.Errorf("equipment not found")
	ErrCustomerNotFound  = fmt.Errorf("customer not found")
	ErrCodeExhausted     = fmt.Errorf("could not generate a unique equipment code")

	// Remote synchronizer
	ErrRemoteUnavailable = fmt.Errorf("remote API unavailable")
	ErrMalformedResponse = fmt.Errorf("malformed remote response")
	ErrPushRejected      = fmt.Errorf("remote rejected the write")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carries the status code and user-facing message for controller
// responses, plus the underlying error and optional details for the logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
