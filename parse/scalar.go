package parse

import (
	"strconv"
	"strings"

	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/token"
)

// decodeNumber classifies tok as a numeric value, or returns nil when it is
// not one. Tokens containing '.', 'e', or 'E' take the float path and come
// out DoubleKind; plain digit runs take the integer path, IntKind when they
// fit in 32 bits and LongKind otherwise.
func decodeNumber(tok string) *ir.Value {
	if strings.ContainsAny(tok, ".eE") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil
		}
		return ir.FromFloat64(f)
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil
	}
	return ir.ClassifyInt(i)
}

// yamlScalar classifies a flow scalar: quoted string with \n escapes
// decoded, boolean, number, else the bare text kept verbatim.
func yamlScalar(s string) *ir.Value {
	if u, ok := token.Unquote(s); ok {
		return ir.FromString(u)
	}
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if v := decodeNumber(s); v != nil {
		return v
	}
	return ir.FromString(s)
}
