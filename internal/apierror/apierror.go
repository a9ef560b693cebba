// Package apierror describes errors that are safe to show to API callers
// together with the HTTP status and gRPC code they map to.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// APIError is a client-facing error. Message is returned to the caller as is;
// Err keeps the internal cause for logs and errors.Is checks.
type APIError struct {
	HTTPStatus int
	GRPCCode   codes.Code
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewErrHandleRequired reports a missing or empty handle.
func NewErrHandleRequired(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
		Message:    "Twitter handle is required.",
		Err:        err,
	}
}

// NewErrInvalidRequestBody reports a request body that could not be decoded.
func NewErrInvalidRequestBody(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
		Message:    "Invalid request body.",
		Err:        err,
	}
}

// NewErrHandleNotFound reports a handle the identity provider does not know.
func NewErrHandleNotFound(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusNotFound,
		GRPCCode:   codes.NotFound,
		Message:    "Twitter user not found.",
		Err:        err,
	}
}

// NewErrUpstreamFailure reports that the identity provider could not answer.
func NewErrUpstreamFailure(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Message:    "Internal Server Error.",
		Err:        err,
	}
}

// NewErrInternalServerError hides any other failure behind a generic message.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		HTTPStatus: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Message:    "Internal Server Error.",
		Err:        err,
	}
}
