package encode

import (
	"errors"
	"fmt"
)

// ErrRender is the sentinel all render failures wrap.
var ErrRender = errors.New("render error")

// RenderError reports a tree element that cannot be expressed in the
// target syntax, such as an inline comment spanning multiple lines.
type RenderError struct {
	Name   string // name of the value or branch that failed to render
	Reason string
}

func (e *RenderError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: %s", ErrRender, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrRender, e.Name, e.Reason)
}

func (e *RenderError) Unwrap() error {
	return ErrRender
}
