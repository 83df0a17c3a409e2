package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Parse  bool
	Encode bool
	Eval   bool
	Expand bool
	Watch  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("VERSA_DEBUG")
	d.Parse = all || boolEnv("VERSA_DEBUG_PARSE")
	d.Encode = all || boolEnv("VERSA_DEBUG_ENCODE")
	d.Eval = all || boolEnv("VERSA_DEBUG_EVAL")
	d.Expand = all || boolEnv("VERSA_DEBUG_EXPAND")
	d.Watch = all || boolEnv("VERSA_DEBUG_WATCH")
	d.LSP = all || boolEnv("VERSA_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
func Expand() bool {
	return d.Expand
}
func Watch() bool {
	return d.Watch
}
func LSP() bool {
	return d.LSP
}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects debug logging, mainly for tests. It returns the
// previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Logf writes one formatted message to the debug output.
func Logf(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}

// LogAny dumps v as JSON to the debug output, falling back to plain
// formatting when v does not marshal.
func LogAny(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		Logf("%v\n", v)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	out.Write(data)
	out.Write([]byte("\n"))
}
