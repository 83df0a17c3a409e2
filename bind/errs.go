package bind

import "errors"

var (
	// ErrPointer marks a missing or unsupported destination pointer.
	ErrPointer = errors.New("bad destination pointer")

	// ErrKind marks a tree value whose kind does not fit the destination.
	ErrKind = errors.New("value kind mismatch")

	// ErrField marks an unusable schema field declaration.
	ErrField = errors.New("bad schema field")
)
