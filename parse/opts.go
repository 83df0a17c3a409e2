package parse

import (
	"github.com/versa-format/go-versa/debug"
	"github.com/versa-format/go-versa/format"
)

// Option configures a single call to Parse.
type Option func(*opts)

type opts struct {
	strict    bool
	sink      func(*Error)
	format    format.Format
	hasFormat bool
}

func newOpts() *opts {
	return &opts{
		strict: true,
		sink: func(e *Error) {
			debug.Logf("parse: %s\n", e.Error())
		},
	}
}

// WithFormat bypasses detection and parses the input as f.
func WithFormat(f format.Format) Option {
	return func(o *opts) {
		o.format = f
		o.hasFormat = true
	}
}

// WithStrict controls error handling.  Strict parses (the default)
// return the first *Error encountered.  Non-strict parses report each
// *Error to the sink, recover line by line, and return the tree built
// from the lines that did parse.
func WithStrict(strict bool) Option {
	return func(o *opts) {
		o.strict = strict
	}
}

// WithErrorSink installs fn as the receiver for diagnostics in
// non-strict mode.  The default sink writes through the debug logger.
func WithErrorSink(fn func(*Error)) Option {
	return func(o *opts) {
		if fn != nil {
			o.sink = fn
		}
	}
}

// emit builds a diagnostic and either returns it (strict) or hands it to
// the sink and returns nil.
func (o *opts) emit(kind error, line int, reason, text string) error {
	e := &Error{Err: kind, Line: line, Reason: reason, Text: text}
	if o.strict {
		return e
	}
	o.sink(e)
	return nil
}
