// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalConsistency marks failures caused by a malformed tree or a
	// misbehaving renderer. They abort the current declaration and are never
	// retried.
	ErrInternalConsistency = errors.New("internal consistency failure")

	// ErrUnknownDialect indicates a dialect name is not registered.
	ErrUnknownDialect = errors.New("unknown dialect")
)

// ConsistencyError describes one internal-consistency failure.
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string {
	return ErrInternalConsistency.Error() + ": " + e.Msg
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInternalConsistency
}

// Failf aborts rendering of the current declaration. It must only be called
// from within a renderer; Session.Render turns it into a returned error.
func Failf(format string, args ...any) {
	panic(&ConsistencyError{Msg: fmt.Sprintf(format, args...)})
}
