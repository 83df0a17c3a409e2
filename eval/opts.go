package eval

import (
	"os"
	"strings"
)

type opts struct {
	env         map[string]string
	keepUnknown bool
}

type Option func(*opts)

func newOpts() *opts {
	return &opts{env: processEnv()}
}

// WithEnv replaces the process environment used by env: references and by
// the env map inside expressions.
func WithEnv(env map[string]string) Option {
	return func(o *opts) {
		o.env = env
	}
}

// WithKeepUnknown leaves unknown references verbatim instead of failing.
func WithKeepUnknown() Option {
	return func(o *opts) {
		o.keepUnknown = true
	}
}

func processEnv() map[string]string {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
