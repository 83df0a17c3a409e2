package gomap

import "errors"

var (
	// ErrUnsupported marks a Go value From cannot represent in a tree.
	ErrUnsupported = errors.New("unsupported value")

	// ErrShape marks a tree whose structure does not fit the target
	// format, such as a nested branch exported to INI.
	ErrShape = errors.New("tree shape does not fit format")
)
