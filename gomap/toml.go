package gomap

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/versa-format/go-versa/ir"
)

// ToTOML exports the map view of n as TOML. The encoder sorts keys, so
// tree order does not carry over.
func ToTOML(n *ir.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(regular(To(n))); err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	return buf.Bytes(), nil
}
