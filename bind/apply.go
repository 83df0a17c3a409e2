package bind

import (
	"fmt"
	"reflect"

	"github.com/versa-format/go-versa/ir"
)

// Apply copies values out of root into the schema's destination pointers.
// A path missing from the tree falls back to the field default; a field
// without a default leaves its destination untouched. Fields without a
// pointer are render-only and skipped.
func (s *Schema) Apply(root *ir.Node) error {
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Ptr == nil {
			continue
		}
		v := root.GetValue(f.Path)
		if f.Codec != nil {
			if v == nil {
				if f.Default == nil {
					continue
				}
				if err := setPtr(f.Ptr, f.Default, f.Path); err != nil {
					return err
				}
				continue
			}
			decoded, err := f.Codec.Decode(v)
			if err != nil {
				return fmt.Errorf("%w: decoding %s: %v", ErrKind, f.Path, err)
			}
			if err := setPtr(f.Ptr, decoded, f.Path); err != nil {
				return err
			}
			continue
		}
		if v == nil {
			if f.Default == nil {
				continue
			}
			if err := setPtr(f.Ptr, f.Default, f.Path); err != nil {
				return err
			}
			continue
		}
		if err := assign(f.Ptr, v, f.Path); err != nil {
			return err
		}
	}
	return nil
}

// assign copies a tree value into a typed destination, checking kinds.
// Integers widen into float64 destinations; everything else must match.
func assign(ptr any, v *ir.Value, path string) error {
	switch p := ptr.(type) {
	case *bool:
		if v.Kind != ir.BoolKind {
			return kindErr(path, v, "bool")
		}
		*p = v.Bool
	case *int:
		if !v.Kind.IsInteger() {
			return kindErr(path, v, "int")
		}
		*p = int(v.Int64)
	case *int64:
		if !v.Kind.IsInteger() {
			return kindErr(path, v, "int64")
		}
		*p = v.Int64
	case *float64:
		switch {
		case v.Kind.IsFloat():
			*p = v.Float64
		case v.Kind.IsInteger():
			*p = float64(v.Int64)
		default:
			return kindErr(path, v, "float64")
		}
	case *string:
		if v.Kind != ir.StringKind {
			return kindErr(path, v, "string")
		}
		*p = v.Str
	case *[]string:
		if v.Kind != ir.ListKind {
			return kindErr(path, v, "[]string")
		}
		out := make([]string, len(v.List))
		for i, e := range v.List {
			if e.Kind != ir.StringKind {
				return kindErr(path, e, "[]string element")
			}
			out[i] = e.Str
		}
		*p = out
	case *[]int:
		if v.Kind != ir.ListKind {
			return kindErr(path, v, "[]int")
		}
		out := make([]int, len(v.List))
		for i, e := range v.List {
			if !e.Kind.IsInteger() {
				return kindErr(path, e, "[]int element")
			}
			out[i] = int(e.Int64)
		}
		*p = out
	default:
		return fmt.Errorf("%w: %T at %s", ErrPointer, ptr, path)
	}
	return nil
}

func kindErr(path string, v *ir.Value, want string) error {
	return fmt.Errorf("%w: %s is %s, destination wants %s", ErrKind, path, v.Kind, want)
}

// setPtr assigns val through ptr by reflection, converting between
// numeric types when the static types differ.
func setPtr(ptr, val any, path string) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T at %s", ErrPointer, ptr, path)
	}
	dst := rv.Elem()
	dv := reflect.ValueOf(val)
	switch {
	case dv.Type().AssignableTo(dst.Type()):
		dst.Set(dv)
	case numeric(dv.Kind()) && numeric(dst.Kind()) && dv.Type().ConvertibleTo(dst.Type()):
		dst.Set(dv.Convert(dst.Type()))
	default:
		return fmt.Errorf("%w: %s is %T, destination wants %s", ErrKind, path, val, dst.Type())
	}
	return nil
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
