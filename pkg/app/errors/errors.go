// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is the zero value; it never maps to a failure response.
	CategoryNoError Category = iota
	// CategoryValidation The client sent malformed data in the request,
	// for example a missing field or a syntactically invalid chain address.
	CategoryValidation
	// CategoryUnauthorized The client is not authorized to access the requested resource
	CategoryUnauthorized
	// CategoryConfiguration The service is missing or carrying unusable configuration,
	// for example an absent signing credential or RPC endpoint.
	CategoryConfiguration
	// CategoryChainRead An RPC or contract read against the chain failed
	CategoryChainRead
	// CategoryChainWrite A transaction submission failed or the transaction reverted
	CategoryChainWrite
	// CategoryEventNotFound An expected event log was absent from a transaction receipt
	CategoryEventNotFound
	// CategorySignatureMismatch A claim signature did not recover to its declared issuer
	CategorySignatureMismatch
	// CategoryConfirmationTimeout A transaction was submitted but not confirmed in time
	CategoryConfirmationTimeout
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "CategoryValidation"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryConfiguration:
		return "CategoryConfiguration"
	case CategoryChainRead:
		return "CategoryChainRead"
	case CategoryChainWrite:
		return "CategoryChainWrite"
	case CategoryEventNotFound:
		return "CategoryEventNotFound"
	case CategorySignatureMismatch:
		return "CategorySignatureMismatch"
	case CategoryConfirmationTimeout:
		return "CategoryConfirmationTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError checks that provided error is an internal system error
// rather than a client-side one.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryConfiguration) {
		return false
	}
	return true
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ValidationError returns an error with category Validation
// the error message provided is returned to the user
// the error object provided is logged in logger
func ValidationError(err error, message string) error {
	if err == nil {
		err = errors.New("validation failed: " + message)
	}
	return &ServiceError{
		Category: CategoryValidation,
		Message:  message,
		Err:      err,
	}
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
// the error message provided is returned to the user
// the error object provided is logged in logger
func UnAuthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// ConfigurationError returns an error with category Configuration
// the error message provided is returned to the user
// the error object provided is logged in logger
func ConfigurationError(err error, message string) error {
	if err == nil {
		err = errors.New("configuration error: " + message)
	}
	return &ServiceError{
		Category: CategoryConfiguration,
		Message:  message,
		Err:      err,
	}
}

// ChainReadError returns an error with category ChainRead
// the error message provided is returned to the user
// the error object provided is logged in logger
func ChainReadError(err error, message string) error {
	if err == nil {
		err = errors.New("chain read failed: " + message)
	}
	return &ServiceError{
		Category: CategoryChainRead,
		Message:  message,
		Err:      err,
	}
}

// ChainWriteError returns an error with category ChainWrite
// the error message provided is returned to the user
// the error object provided is logged in logger
func ChainWriteError(err error, message string) error {
	if err == nil {
		err = errors.New("chain write failed: " + message)
	}
	return &ServiceError{
		Category: CategoryChainWrite,
		Message:  message,
		Err:      err,
	}
}

// EventNotFoundError returns an error with category EventNotFound
// the error message provided is returned to the user
// the error object provided is logged in logger
func EventNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("event not found: " + message)
	}
	return &ServiceError{
		Category: CategoryEventNotFound,
		Message:  message,
		Err:      err,
	}
}

// SignatureMismatchError returns an error with category SignatureMismatch
// the error message provided is returned to the user
// the error object provided is logged in logger
func SignatureMismatchError(err error, message string) error {
	if err == nil {
		err = errors.New("signature mismatch: " + message)
	}
	return &ServiceError{
		Category: CategorySignatureMismatch,
		Message:  message,
		Err:      err,
	}
}

// ConfirmationTimeoutError returns an error with category ConfirmationTimeout
// the error message provided is returned to the user
// the error object provided is logged in logger
func ConfirmationTimeoutError(err error, message string) error {
	if err == nil {
		err = errors.New("confirmation timeout: " + message)
	}
	return &ServiceError{
		Category: CategoryConfirmationTimeout,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryConfiguration:
		return http.StatusInternalServerError
	case CategoryChainRead:
		return http.StatusInternalServerError
	case CategoryChainWrite:
		return http.StatusInternalServerError
	case CategoryEventNotFound:
		return http.StatusInternalServerError
	case CategorySignatureMismatch:
		return http.StatusInternalServerError
	case CategoryConfirmationTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
