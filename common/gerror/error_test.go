package gerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewErrValidationFailed("legal entity is invalid")
	err = err.Wrap(fmt.Errorf("i'm a scary internal error"))
	require.Equal(t, "legal entity is invalid: i'm a scary internal error", err.Error())
	require.Equal(t, "legal entity is invalid", err.Message())

	err = err.EDetail("field", "countryCode")
	require.Equal(t, "legal entity is invalid [field=countryCode]: i'm a scary internal error", err.Error())
	require.Equal(t, "legal entity is invalid", err.Message())

	err = err.IDetail("attempt", 2)
	require.Equal(t, "legal entity is invalid [attempt=2, field=countryCode]: i'm a scary internal error", err.Error())
	require.Equal(t, AudienceInternal, err.Details()["attempt"].Audience())
	require.Equal(t, AudienceExternal, err.Details()["field"].Audience())
}

func TestNewErrorWithDetailsKeepsInnerError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewErrorWithDetails("remote failed", nil, AudienceInternal, ErrHttpOperationFailed, http.StatusBadGateway, inner)
	require.True(t, errors.Is(err, inner))
	require.Equal(t, "remote failed: connection refused", err.Error())
}

func TestToErrorSearchesPastOtherCodes(t *testing.T) {
	notFound := NewErrNotFound("Legal entity not found")
	err := fmt.Errorf("outer: %w", NewErrRemoteLookupFailed("Cannot get LegalEntity").Wrap(notFound))

	require.True(t, IsRemoteLookupFailed(err))
	require.True(t, IsNotFound(err))
	require.False(t, IsUnauthorized(err))
	require.False(t, IsInternal(err))
	require.True(t, IsInternal(NewErrInternal().Wrap(err)))
	require.Equal(t, "Legal entity not found", ToNotFound(err).Message())
	require.True(t, HasHTTPStatusCode(err, http.StatusBadGateway))
	require.False(t, HasHTTPStatusCode(err, http.StatusNotFound))
	require.Nil(t, ToError(nil, ErrCodeNotFound))
	require.Nil(t, ToError(errors.New("plain"), ErrCodeNotFound))
}

func TestMultiError(t *testing.T) {
	var results *multierror.Error

	results = multierror.Append(results, fmt.Errorf("error 1: %w", errors.New("1")))
	results = multierror.Append(results, NewErrRemoteCreateFailed("Cannot create BusinessLine").Wrap(errors.New("2")))
	results = multierror.Append(results, fmt.Errorf("error 3: %w", errors.New("3")))

	err := results.ErrorOrNil()
	require.True(t, IsRemoteCreateFailed(err))

	var outerResults *multierror.Error
	outerResults = multierror.Append(err, fmt.Errorf("outer error 1: %w", errors.New("11")))
	require.True(t, IsRemoteCreateFailed(outerResults.ErrorOrNil()))
}
