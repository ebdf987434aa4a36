package models

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

// Environment selects which remote platform (test or live) API calls are made against.
type Environment string

func (e Environment) Valid() bool {
	return e == EnvironmentTest || e == EnvironmentLive
}

func (e Environment) String() string {
	return string(e)
}

func ParseEnvironment(str string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(str)))
	if !env.Valid() {
		return "", errors.Errorf("Unsupported environment: %q (expected %q or %q)", str, EnvironmentTest, EnvironmentLive)
	}
	return env, nil
}

// APIKey authenticates calls to the remote platform. String() never reveals the key.
type APIKey string

func (k APIKey) String() string {
	if k == "" {
		return ""
	}
	return "********"
}

// Value returns the actual key, for use when authenticating requests.
func (k APIKey) Value() string {
	return string(k)
}

// ThemeID identifies a custom theme for the hosted onboarding pages. Empty means the default theme.
type ThemeID string

func (t ThemeID) String() string {
	return string(t)
}
