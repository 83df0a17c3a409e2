package gomap

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancoleman/orderedmap"

	"github.com/versa-format/go-versa/ir"
)

// ToJSON marshals the map view of n as indented JSON with a trailing
// newline. Key order follows the tree.
func ToJSON(n *ir.Node) ([]byte, error) {
	data, err := json.MarshalIndent(To(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	return append(data, '\n'), nil
}

// FromJSON builds a tree from a JSON object, keeping key order. Numbers
// that carry an exact integer come back as integer values even though JSON
// does not keep the distinction.
func FromJSON(src []byte) (*ir.Node, error) {
	om := orderedmap.New()
	if err := json.Unmarshal(src, om); err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	return From(ir.RootName, jsonNumbers(om))
}

func jsonNumbers(v any) any {
	switch x := v.(type) {
	case *orderedmap.OrderedMap:
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			x.Set(k, jsonNumbers(val))
		}
		return x
	case orderedmap.OrderedMap:
		return jsonNumbers(&x)
	case []any:
		for i, e := range x {
			x[i] = jsonNumbers(e)
		}
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}
		return x
	default:
		return v
	}
}
