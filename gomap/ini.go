package gomap

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/versa-format/go-versa/ir"
)

// ToINI exports n as INI. Only trees at most two levels deep fit: root
// values land in the default section and each child branch becomes a
// section of scalar keys. Deeper nesting, lists, and anonymous values are
// errors.
func ToINI(n *ir.Node) ([]byte, error) {
	cfg := ini.Empty()
	if err := iniSection(cfg.Section(ini.DefaultSection), n, true); err != nil {
		return nil, err
	}
	for _, e := range n.Order {
		if e.Kind != ir.BranchEntry {
			continue
		}
		sec, err := cfg.NewSection(e.Branch.Name)
		if err != nil {
			return nil, fmt.Errorf("gomap: %w", err)
		}
		if err := iniSection(sec, e.Branch, false); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	return buf.Bytes(), nil
}

func iniSection(sec *ini.Section, n *ir.Node, root bool) error {
	for _, e := range n.Order {
		switch e.Kind {
		case ir.ValueEntry:
			if e.Value.Name == "" {
				return fmt.Errorf("%w: anonymous value in %q", ErrShape, n.Name)
			}
			s, err := iniScalar(e.Value)
			if err != nil {
				return err
			}
			if _, err := sec.NewKey(e.Value.Name, s); err != nil {
				return fmt.Errorf("gomap: %w", err)
			}
		case ir.BranchEntry:
			if !root {
				return fmt.Errorf("%w: branch %q nests too deep for INI", ErrShape, e.Branch.Name)
			}
		}
	}
	return nil
}

func iniScalar(v *ir.Value) (string, error) {
	switch v.Kind {
	case ir.BoolKind:
		return strconv.FormatBool(v.Bool), nil
	case ir.IntKind, ir.LongKind:
		return strconv.FormatInt(v.Int64, 10), nil
	case ir.FloatKind, ir.DoubleKind:
		return strconv.FormatFloat(v.Float64, 'f', -1, 64), nil
	case ir.StringKind:
		return v.Str, nil
	default:
		return "", fmt.Errorf("%w: %s value %q has no INI form", ErrShape, v.Kind, v.Name)
	}
}
