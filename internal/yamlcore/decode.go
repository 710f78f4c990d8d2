package yamlcore

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Decode reads exactly one YAML document from r and binds it into out,
// which must be a non-nil pointer. A second non-empty document in the
// stream is a fatal error under this single-document API; use DecodeAll
// for the multi-document form.
func Decode(r io.Reader, out interface{}) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	src, err := decodeEncoding(raw)
	if err != nil {
		return err
	}

	if v, ok := fastPathParse(src); ok {
		return bind(v, out)
	}

	docs, err := splitAndParseAll(src)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	if len(docs) > 1 {
		nonEmpty := 0
		for _, d := range docs {
			if !d.Value.IsNull() {
				nonEmpty++
			}
		}
		if nonEmpty > 1 {
			return fmt.Errorf("yaml: multiple documents in single-document stream")
		}
	}
	return bind(docs[0].Value, out)
}

// DecodeAll reads every document in r and returns their value trees
// without binding into a Go type.
func DecodeAll(r io.Reader) ([]*Value, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src, err := decodeEncoding(raw)
	if err != nil {
		return nil, err
	}
	docs, err := splitAndParseAll(src)
	if err != nil {
		return nil, err
	}
	out := make([]*Value, len(docs))
	for i, d := range docs {
		out[i] = d.Value
	}
	return out, nil
}

// bind assigns a parsed Value tree into out (a pointer) via reflection,
// honoring `yaml:"name"` struct tags the same way the teacher's
// gopkg.in/yaml.v3-based config structs already do.
func bind(v *Value, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("yaml: Decode target must be a non-nil pointer")
	}
	if v == nil {
		return nil
	}
	return assign(v, rv.Elem())
}

func assign(v *Value, dst reflect.Value) error {
	if !dst.CanSet() {
		return nil
	}
	if v == nil || v.Kind == KindNull {
		return nil
	}

	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(v, dst.Elem())
	}

	switch dst.Kind() {
	case reflect.String:
		dst.SetString(scalarText(v))
		return nil
	case reflect.Bool:
		dst.SetBool(v.Bool)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.SetInt(v.Int)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		dst.SetUint(uint64(v.Int))
		return nil
	case reflect.Float32, reflect.Float64:
		if v.Kind == KindInt {
			dst.SetFloat(float64(v.Int))
			return nil
		}
		f, ok := parseRealLexeme(v.Real)
		if !ok {
			return fmt.Errorf("yaml: invalid float lexeme %q", v.Real)
		}
		dst.SetFloat(f)
		return nil
	case reflect.Slice:
		if v.Kind != KindSequence {
			return fmt.Errorf("yaml: expected sequence for %s", dst.Type())
		}
		slice := reflect.MakeSlice(dst.Type(), len(v.Seq), len(v.Seq))
		for i, item := range v.Seq {
			if err := assign(item, slice.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(slice)
		return nil
	case reflect.Map:
		if v.Kind != KindMapping {
			return fmt.Errorf("yaml: expected mapping for %s", dst.Type())
		}
		m := reflect.MakeMapWithSize(dst.Type(), len(v.Map))
		for _, e := range v.Map {
			key := reflect.New(dst.Type().Key()).Elem()
			if err := assign(e.Key, key); err != nil {
				return err
			}
			val := reflect.New(dst.Type().Elem()).Elem()
			if err := assign(e.Value, val); err != nil {
				return err
			}
			m.SetMapIndex(key, val)
		}
		dst.Set(m)
		return nil
	case reflect.Struct:
		if v.Kind != KindMapping {
			return fmt.Errorf("yaml: expected mapping for %s", dst.Type())
		}
		return assignStruct(v, dst)
	case reflect.Interface:
		dst.Set(reflect.ValueOf(toNative(v)))
		return nil
	default:
		return fmt.Errorf("yaml: unsupported target kind %s", dst.Kind())
	}
}

func assignStruct(v *Value, dst reflect.Value) error {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		name := fieldYAMLName(field)
		if name == "-" {
			continue
		}
		entry := v.Get(name)
		if entry == nil {
			continue
		}
		if err := assign(entry, dst.Field(i)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func fieldYAMLName(f reflect.StructField) string {
	tag := f.Tag.Get("yaml")
	if tag == "" {
		return lowerFirst(f.Name)
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func scalarText(v *Value) string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return v.Real
	default:
		return v.Str
	}
}

// toNative converts a Value into a plain Go interface{} tree (map[string]
// interface{}, []interface{}, and scalars), the shape callers binding into
// interface{} fields expect.
func toNative(v *Value) interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		f, _ := parseRealLexeme(v.Real)
		return f
	case KindString, KindBadValue:
		return v.Str
	case KindSequence:
		out := make([]interface{}, len(v.Seq))
		for i, item := range v.Seq {
			out[i] = toNative(item)
		}
		return out
	case KindMapping:
		out := make(map[string]interface{}, len(v.Map))
		for _, e := range v.Map {
			out[scalarText(e.Key)] = toNative(e.Value)
		}
		return out
	default:
		return nil
	}
}
