package bind

import (
	"fmt"
	"reflect"

	"github.com/TheGrizzlyDev/switchboard/internal/pkg/parser"
)

// Bind copies a parse result into dst according to struct tags. Fields
// tagged `switch:"level"` receive the option recorded under that human
// name; a field tagged `switch_trailing:"true"` receives the trailing
// tokens. Anonymous embedded structs are traversed. Options absent from
// the result leave their field at its zero value.
func Bind(res *parser.Result, dst any) error {
	if res == nil {
		return fmt.Errorf("bind: nil result")
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("bind: dst must be a non-nil pointer, got %T", dst)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("bind: dst must point to a struct, got %T", dst)
	}

	var bindErr error
	walkStruct(v, func(sf reflect.StructField, fv reflect.Value) {
		if bindErr != nil {
			return
		}
		if _, ok := sf.Tag.Lookup("switch_trailing"); ok {
			if err := setField(fv, res.Trailing); err != nil {
				bindErr = fmt.Errorf("bind %s: %w", sf.Name, err)
			}
			return
		}
		name, ok := sf.Tag.Lookup("switch")
		if !ok {
			return
		}
		val, ok := res.Options[name]
		if !ok || val == nil {
			return
		}
		if err := setField(fv, val); err != nil {
			bindErr = fmt.Errorf("bind %s: %w", sf.Name, err)
		}
	})
	return bindErr
}

// walkStruct visits every exported field, descending into anonymous
// embedded structs and struct pointers.
func walkStruct(v reflect.Value, visit func(sf reflect.StructField, fv reflect.Value)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous {
			switch fv.Kind() {
			case reflect.Struct:
				walkStruct(fv, visit)
				continue
			case reflect.Pointer:
				if fv.Type().Elem().Kind() == reflect.Struct {
					if fv.IsNil() {
						fv.Set(reflect.New(fv.Type().Elem()))
					}
					walkStruct(fv.Elem(), visit)
					continue
				}
			}
		}
		visit(sf, fv)
	}
}

// setField stores a parsed value into a destination field, converting
// between the parser's value types and the field's kind with overflow
// checks.
func setField(fv reflect.Value, val any) error {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("cannot assign %T to bool field", val)
		}
		fv.SetBool(b)
		return nil

	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to string field", val)
		}
		fv.SetString(s)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := asInt64(val)
		if !ok {
			return fmt.Errorf("cannot assign %T to integer field", val)
		}
		if fv.OverflowInt(n) {
			return fmt.Errorf("value %d overflows field of type %s", n, fv.Type())
		}
		fv.SetInt(n)
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := asFloat64(val)
		if !ok {
			return fmt.Errorf("cannot assign %T to float field", val)
		}
		fv.SetFloat(f)
		return nil

	case reflect.Slice:
		ss, ok := val.([]string)
		if !ok || fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot assign %T to field of type %s", val, fv.Type())
		}
		fv.Set(reflect.ValueOf(append([]string(nil), ss...)))
		return nil

	case reflect.Map:
		m, ok := val.(map[string]string)
		if !ok || fv.Type().Key().Kind() != reflect.String || fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot assign %T to field of type %s", val, fv.Type())
		}
		out := reflect.MakeMapWithSize(fv.Type(), len(m))
		for k, v := range m {
			out.SetMapIndex(reflect.ValueOf(k), reflect.ValueOf(v))
		}
		fv.Set(out)
		return nil
	}
	return fmt.Errorf("unsupported field kind %s", fv.Kind())
}

func asInt64(val any) (int64, bool) {
	switch n := val.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

func asFloat64(val any) (float64, bool) {
	switch n := val.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
