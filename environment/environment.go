// Package environment lists the Disgo deployment targets and their base URLs.
package environment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnknownEnvironment is returned when an environment is not in the registry.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Environment identifies a Disgo deployment target
type Environment string

const (
	// Production is the public Dispatch network
	Production Environment = "production"
	// Sandbox is a node running on the local machine
	Sandbox Environment = "sandbox"
)

// baseURLs is fixed at process start and never mutated.
var baseURLs = map[Environment]string{
	Production: "https://api.dispatchlabs.io:1975",
	Sandbox:    "http://localhost:1975",
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// IsValid reports whether the environment is in the registry
func (e Environment) IsValid() bool {
	_, ok := baseURLs[e]
	return ok
}

// All returns every registered environment in a stable order
func All() []Environment {
	return []Environment{Production, Sandbox}
}

// Parse converts a name such as "Production" or "sandbox" into an Environment.
func Parse(name string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(name)))
	if !env.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
	}
	return env, nil
}

// BaseURL resolves the base URL of an environment.
func BaseURL(env Environment) (*url.URL, error) {
	raw, ok := baseURLs[env]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, string(env))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL for %s: %w", env, err)
	}
	return u, nil
}
