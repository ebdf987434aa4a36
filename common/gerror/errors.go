package gerror

import (
	"errors"
	"net/http"
)

const (
	ErrCodeInternal           Code = "Internal"
	ErrCodeValidationFailed   Code = "ValidationFailed"
	ErrCodeNotFound           Code = "NotFound"
	ErrCodeUnauthorized       Code = "Unauthorized"
	ErrCodeTimeout            Code = "Timeout"
	ErrHttpOperationFailed    Code = "HttpOperationFailed"
	ErrCodeRemoteLookupFailed Code = "RemoteLookupFailed"
	ErrCodeRemoteCreateFailed Code = "RemoteCreateFailed"
)

// ToError searches the provided error chain for an Error with the specified code and returns it.
// Unlike a single errors.As call the search continues past Errors with other codes, so a code
// wrapped inside another gerror.Error is still found. Returns nil if no such Error exists.
func ToError(err error, code Code) *Error {
	for err != nil {
		var gErr Error
		if !errors.As(err, &gErr) {
			return nil
		}
		if gErr.Code() == code {
			return &gErr
		}
		err = gErr.Unwrap()
	}
	return nil
}

func NewErrInternal() Error {
	return NewError(
		"An internal server error occurred",
		AudienceExternal,
		ErrCodeInternal,
		http.StatusInternalServerError,
		nil,
	)
}

func ToInternal(err error) *Error {
	return ToError(err, ErrCodeInternal)
}

func IsInternal(err error) bool {
	return ToInternal(err) != nil
}

func NewErrValidationFailed(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeValidationFailed, http.StatusBadRequest, nil)
}

func ToValidationFailed(err error) *Error {
	return ToError(err, ErrCodeValidationFailed)
}

func IsValidationFailed(err error) bool {
	return ToValidationFailed(err) != nil
}

func NewErrNotFound(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeNotFound, http.StatusNotFound, nil)
}

func ToNotFound(err error) *Error {
	return ToError(err, ErrCodeNotFound)
}

func IsNotFound(err error) bool {
	return ToNotFound(err) != nil
}

func NewErrUnauthorized(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeUnauthorized, http.StatusUnauthorized, nil)
}

func ToUnauthorized(err error) *Error {
	return ToError(err, ErrCodeUnauthorized)
}

func IsUnauthorized(err error) bool {
	return ToUnauthorized(err) != nil
}

func NewErrTimeout(description string) Error {
	return NewError(description, AudienceExternal, ErrCodeTimeout, http.StatusGatewayTimeout, nil)
}

func ToTimeout(err error) *Error {
	return ToError(err, ErrCodeTimeout)
}

func IsTimeout(err error) bool {
	return ToTimeout(err) != nil
}

// NewErrHttpOperationFailed is returned when a remote HTTP API fails in a way that has no more specific code.
func NewErrHttpOperationFailed(message string, httpStatusCode int) Error {
	return NewError(message, AudienceInternal, ErrHttpOperationFailed, httpStatusCode, nil)
}

func ToHttpOperationFailed(err error) *Error {
	return ToError(err, ErrHttpOperationFailed)
}

func IsHttpOperationFailed(err error) bool {
	return ToHttpOperationFailed(err) != nil
}

// NewErrRemoteLookupFailed reports that reading a resource from a remote API failed, for any reason.
func NewErrRemoteLookupFailed(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeRemoteLookupFailed, http.StatusBadGateway, nil)
}

func ToRemoteLookupFailed(err error) *Error {
	return ToError(err, ErrCodeRemoteLookupFailed)
}

func IsRemoteLookupFailed(err error) bool {
	return ToRemoteLookupFailed(err) != nil
}

// NewErrRemoteCreateFailed reports that creating a resource via a remote API failed, for any reason.
func NewErrRemoteCreateFailed(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeRemoteCreateFailed, http.StatusBadGateway, nil)
}

func ToRemoteCreateFailed(err error) *Error {
	return ToError(err, ErrCodeRemoteCreateFailed)
}

func IsRemoteCreateFailed(err error) bool {
	return ToRemoteCreateFailed(err) != nil
}
