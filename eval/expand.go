package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/versa-format/go-versa/debug"
	"github.com/versa-format/go-versa/gomap"
	"github.com/versa-format/go-versa/ir"
)

// References adopt at most this many levels of indirection before the
// chain is declared circular.
const maxRefDepth = 32

// Expand rewrites string values containing ${...} references in place,
// walking the whole tree under root. A value that is exactly one reference
// takes the referenced value's type; references embedded in longer text
// are stringified. Layout, comments, and non-string values are untouched.
//
// References resolve against the tree as it stands when the value is
// rewritten, in document order.
func Expand(root *ir.Node, options ...Option) error {
	o := newOpts()
	for _, opt := range options {
		opt(o)
	}
	ev := &expander{root: root, o: o}
	return ev.node(root)
}

type expander struct {
	root  *ir.Node
	o     *opts
	depth int
}

func (ev *expander) node(n *ir.Node) error {
	for i := range n.Order {
		e := &n.Order[i]
		switch e.Kind {
		case ir.ValueEntry:
			if err := ev.value(e.Value); err != nil {
				return err
			}
		case ir.BranchEntry:
			if err := ev.node(e.Branch); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ev *expander) value(v *ir.Value) error {
	switch v.Kind {
	case ir.StringKind:
		return ev.rewrite(v)
	case ir.ListKind:
		for _, e := range v.List {
			if err := ev.value(e); err != nil {
				return err
			}
		}
	case ir.BranchListKind:
		for _, b := range v.Branches {
			if err := ev.node(b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ev *expander) rewrite(v *ir.Value) error {
	if ref, ok := wholeRef(v.Str); ok {
		repl, err := ev.resolve(ref)
		if err != nil {
			return err
		}
		if repl == nil {
			if ev.o.keepUnknown {
				return nil
			}
			return fmt.Errorf("%w: ${%s}", ErrUnknownRef, ref)
		}
		adopt(v, repl)
		ev.depth++
		defer func() { ev.depth-- }()
		if ev.depth > maxRefDepth {
			return fmt.Errorf("%w: reference chain too deep at ${%s}", ErrEval, ref)
		}
		// the adopted value may itself hold references
		return ev.value(v)
	}
	out, err := ev.interpolate(v.Str)
	if err != nil {
		return err
	}
	v.Str = out
	return nil
}

// adopt moves src's payload onto dst, keeping dst's name, assign glyph,
// and comments.
func adopt(dst, src *ir.Value) {
	dst.Kind = src.Kind
	dst.Bool = src.Bool
	dst.Int64 = src.Int64
	dst.Float64 = src.Float64
	dst.Str = src.Str
	dst.List = src.List
	dst.Branches = src.Branches
}

// resolve maps a reference body to a value, nil when it names nothing.
func (ev *expander) resolve(ref string) (*ir.Value, error) {
	switch {
	case strings.HasPrefix(ref, "env:"):
		name := strings.TrimSpace(strings.TrimPrefix(ref, "env:"))
		val, ok := ev.o.env[name]
		if !ok {
			return nil, nil
		}
		return ir.FromString(val), nil
	case strings.HasPrefix(ref, "expr:"):
		src := strings.TrimSpace(strings.TrimPrefix(ref, "expr:"))
		program, err := expr.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: compiling %q: %v", ErrEval, src, err)
		}
		env := gomap.Plain(ev.root)
		env["env"] = ev.o.env
		x, err := vm.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("%w: evaluating %q: %v", ErrEval, src, err)
		}
		if debug.Eval() {
			debug.Logf("eval: %q gave %#v\n", src, x)
		}
		return exprValue(x, src)
	default:
		v := ev.root.GetValue(strings.TrimSpace(ref))
		if v == nil {
			return nil, nil
		}
		return v.Clone(), nil
	}
}

func exprValue(x any, src string) (*ir.Value, error) {
	switch r := x.(type) {
	case nil:
		return nil, nil
	case bool:
		return ir.FromBool(r), nil
	case int:
		return ir.FromInt(r), nil
	case int64:
		return ir.ClassifyInt(r), nil
	case uint64:
		if r > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %q overflows int64", ErrEval, src)
		}
		return ir.ClassifyInt(int64(r)), nil
	case float64:
		return ir.FromFloat64(r), nil
	case string:
		return ir.FromString(r), nil
	case []any:
		elems := make([]*ir.Value, len(r))
		for i, e := range r {
			ev, err := exprValue(e, src)
			if err != nil {
				return nil, err
			}
			if ev == nil {
				return nil, fmt.Errorf("%w: %q produced a nil element", ErrEval, src)
			}
			elems[i] = ev
		}
		return ir.FromList(elems...), nil
	default:
		return nil, fmt.Errorf("%w: %q produced unusable %T", ErrEval, src, x)
	}
}

func (ev *expander) interpolate(s string) (string, error) {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '$' && i+2 < len(s) && s[i+1] == '$' && s[i+2] == '{' {
			out = append(out, '$', '{')
			i += 3
			continue
		}
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			ref, end, ok := refSpan(s, i)
			if !ok {
				// unterminated reference reads as literal text
				out = append(out, s[i:]...)
				break
			}
			repl, err := ev.resolve(ref)
			if err != nil {
				return "", err
			}
			if repl == nil {
				if !ev.o.keepUnknown {
					return "", fmt.Errorf("%w: ${%s}", ErrUnknownRef, ref)
				}
				out = append(out, s[i:end]...)
				i = end
				continue
			}
			str, err := scalarString(repl)
			if err != nil {
				return "", err
			}
			out = append(out, str...)
			i = end
			continue
		}
		out = append(out, s[i])
		i++
	}
	return string(out), nil
}

// refSpan finds the reference starting at s[start] ("${"), returning its
// body and the index past the closing brace. Braces nest.
func refSpan(s string, start int) (string, int, bool) {
	depth := 1
	for j := start + 2; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start+2 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

// wholeRef reports whether s is exactly one ${...} reference.
func wholeRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "${") {
		return "", false
	}
	ref, end, ok := refSpan(s, 0)
	if !ok || end != len(s) {
		return "", false
	}
	return ref, true
}

func scalarString(v *ir.Value) (string, error) {
	switch v.Kind {
	case ir.BoolKind:
		return strconv.FormatBool(v.Bool), nil
	case ir.IntKind, ir.LongKind:
		return strconv.FormatInt(v.Int64, 10), nil
	case ir.FloatKind, ir.DoubleKind:
		return strconv.FormatFloat(v.Float64, 'f', -1, 64), nil
	case ir.StringKind:
		return v.Str, nil
	case ir.ListKind:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			s, err := scalarString(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("%w: %s value does not interpolate into text", ErrEval, v.Kind)
	}
}
