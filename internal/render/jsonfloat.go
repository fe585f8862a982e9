package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
)

// marshalJSON falls back to a tree rewrite only when encoding/json refuses
// a value, which for decoded messages means a NaN or infinite float.
func marshalJSON(v any) ([]byte, error) {
	out, err := json.Marshal(v)
	if err == nil {
		return out, nil
	}
	var unsupported *json.UnsupportedValueError
	if !errors.As(err, &unsupported) {
		return nil, err
	}
	return json.Marshal(jsonTree(reflect.ValueOf(v)))
}

// nonFinite spells NaN and the infinities as proto3 JSON does.
func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

type member struct {
	key   string
	value any
}

// object keeps struct field order, which a map would sort away.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

// jsonTree mirrors what encoding/json would emit for v, json tags and
// omitempty included, with non-finite floats replaced by strings.
func jsonTree(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		if v.Type().Implements(marshalerType) {
			return v.Interface()
		}
		return jsonTree(v.Elem())
	case reflect.Float32, reflect.Float64:
		if s, ok := nonFinite(v.Float()); ok {
			return s
		}
		return v.Interface()
	case reflect.Struct:
		if v.Type().Implements(marshalerType) {
			return v.Interface()
		}
		return structTree(v)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Interface()
		}
		return listTree(v)
	case reflect.Array:
		return listTree(v)
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = jsonTree(iter.Value())
		}
		return out
	default:
		return v.Interface()
	}
}

func structTree(v reflect.Value) object {
	t := v.Type()
	obj := make(object, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fv := v.Field(i)
		if strings.Contains(","+opts+",", ",omitempty,") && isEmptyValue(fv) {
			continue
		}
		obj = append(obj, member{key: name, value: jsonTree(fv)})
	}
	return obj
}

func listTree(v reflect.Value) []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = jsonTree(v.Index(i))
	}
	return out
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
