package eval

import "errors"

var (
	// ErrUnknownRef marks a reference that resolves to nothing.
	ErrUnknownRef = errors.New("unknown reference")

	// ErrEval marks a failed or unusable expression.
	ErrEval = errors.New("eval error")
)
