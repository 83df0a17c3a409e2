package ir

import "errors"

var (
	// ErrKind reports a value whose kind does not match what the caller
	// asked for.
	ErrKind = errors.New("kind mismatch")
	// ErrPath reports a dotted path that does not resolve.
	ErrPath = errors.New("path not found")
)
