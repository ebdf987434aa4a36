package legal_entity

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/onboarding-platform/onboarding/common/gerror"
)

const (
	ErrorMappingCollapse ErrorMapping = "collapse"
	ErrorMappingPreserve ErrorMapping = "preserve"
)

// ErrorMapping names a strategy for reporting failed calls to the remote API.
type ErrorMapping string

func (m ErrorMapping) Valid() bool {
	return m == ErrorMappingCollapse || m == ErrorMappingPreserve
}

func (m ErrorMapping) String() string {
	return string(m)
}

func ParseErrorMapping(str string) (ErrorMapping, error) {
	mapping := ErrorMapping(strings.ToLower(strings.TrimSpace(str)))
	if mapping == "" {
		return ErrorMappingCollapse, nil
	}
	if !mapping.Valid() {
		return "", fmt.Errorf("error unsupported error mapping %q (expected %q or %q)", str, ErrorMappingCollapse, ErrorMappingPreserve)
	}
	return mapping, nil
}

// ErrorMapper converts the failure of a remote call into the error returned to callers.
// message describes the operation that failed, e.g. "Cannot get LegalEntity".
type ErrorMapper interface {
	LookupFailed(message string, err error) error
	CreateFailed(message string, err error) error
}

// NewErrorMapper returns the ErrorMapper for a mapping. Empty or unknown mappings collapse errors.
func NewErrorMapper(mapping ErrorMapping) ErrorMapper {
	if mapping == ErrorMappingPreserve {
		return PreserveRemoteErrors{}
	}
	return CollapseRemoteErrors{}
}

// CollapseRemoteErrors reports every failure as RemoteLookupFailed or RemoteCreateFailed, regardless of cause.
// The original error is wrapped, so its text is kept and its code can still be found with the gerror.Is functions.
type CollapseRemoteErrors struct{}

func (CollapseRemoteErrors) LookupFailed(message string, err error) error {
	return gerror.NewErrRemoteLookupFailed(message).Wrap(err)
}

func (CollapseRemoteErrors) CreateFailed(message string, err error) error {
	return gerror.NewErrRemoteCreateFailed(message).Wrap(err)
}

// PreserveRemoteErrors reports a classified remote failure (not found, unauthorized, validation failed, ...)
// as itself, adding message as context. Failures that were never classified are collapsed.
type PreserveRemoteErrors struct{}

func (PreserveRemoteErrors) LookupFailed(message string, err error) error {
	if !isClassified(err) {
		return CollapseRemoteErrors{}.LookupFailed(message, err)
	}
	return errors.Wrap(err, message)
}

func (PreserveRemoteErrors) CreateFailed(message string, err error) error {
	if !isClassified(err) {
		return CollapseRemoteErrors{}.CreateFailed(message, err)
	}
	return errors.Wrap(err, message)
}

func isClassified(err error) bool {
	var gErr gerror.Error
	return errors.As(err, &gErr)
}
