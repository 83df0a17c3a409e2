package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	VersaFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"v":     VersaFormat,
		"versa": VersaFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"yml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case VersaFormat:
		return []byte("versa"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsVersa() bool { return f == VersaFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// Other returns the opposite syntax.
func (f Format) Other() Format {
	if f == VersaFormat {
		return YAMLFormat
	}
	return VersaFormat
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case VersaFormat:
		return ".versa"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromPath maps a file extension to a format. The second result is false
// when the extension is not one of ours.
func FromPath(path string) (Format, bool) {
	switch filepath.Ext(path) {
	case ".versa", ".vrs":
		return VersaFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{VersaFormat, YAMLFormat}
}
