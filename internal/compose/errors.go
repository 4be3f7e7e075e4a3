package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInFlight is returned when a submission starts while another is active.
var ErrInFlight = errors.New("a submission is already in flight")

// ErrDegenerateOutput is returned when normalization of generated text
// produces an empty result. Callers keep their existing caption.
var ErrDegenerateOutput = errors.New("generated text normalized to empty output")

// ConfigError is returned when required configuration is missing.
type ConfigError struct {
	Component string
	Keys      []string
}

func (e ConfigError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("%s not configured", e.Component)
	}
	return fmt.Sprintf("%s not configured (missing %s)", e.Component, strings.Join(e.Keys, ", "))
}

// ValidationError reports the required fields a post state is missing for
// its selected type. It is a normal negative result, not a defect: no
// dispatch is attempted.
type ValidationError struct {
	Type    PostType
	Missing []Field
}

func (e ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s post is not ready: missing %s", e.Type, strings.Join(names, ", "))
}

// UnknownTypeError is returned for a post type the registry has no rules for.
type UnknownTypeError struct {
	Type PostType
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown post type %q", string(e.Type))
}

// TransportError wraps a failed webhook dispatch. Status is zero when the
// request never produced a response.
type TransportError struct {
	Status int
	Err    error
}

func (e TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("webhook dispatch failed with status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("webhook dispatch failed: %v", e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }
