package options

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// TypeSchema describes the type recorded for name as a JSON Schema document.
// It is descriptive only; stored values are never checked against it.
// Types with no JSON Schema form (funcs, channels, complex numbers, unsafe
// pointers, or structs reaching one through a field) report false.
func (o *Options) TypeSchema(name string) (map[string]any, bool) {
	t, ok := o.Type(name)
	if !ok || t == nil {
		return nil, false
	}
	w := &typeWalker{state: map[reflect.Type]walkState{}}
	if !w.describable(t) {
		return nil, false
	}
	return typeToSchema(t, w.recursive), true
}

type walkState int

const (
	walking walkState = iota + 1
	walked
)

// typeWalker mirrors the parts of a type the reflector visits.
type typeWalker struct {
	state     map[reflect.Type]walkState
	recursive bool
}

func (w *typeWalker) describable(t reflect.Type) bool {
	switch w.state[t] {
	case walking:
		// The reflector only breaks cycles at struct definitions.
		w.recursive = true
		return t.Kind() == reflect.Struct
	case walked:
		return true
	}
	w.state[t] = walking
	defer func() { w.state[t] = walked }()

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return false
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return w.describable(t.Elem())
	case reflect.Map:
		return w.describable(t.Key()) && w.describable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if f.Tag.Get("json") == "-" {
				continue
			}
			if !w.describable(f.Type) {
				return false
			}
		}
	}
	return true
}

func typeToSchema(t reflect.Type, recursive bool) map[string]any {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	reflector := jsonschema.Reflector{
		// Only structs are registered as definitions, so only they can be
		// expanded. Self-referencing types need $defs to terminate.
		ExpandedStruct: base.Kind() == reflect.Struct && !recursive,
		DoNotReference: !recursive,
	}
	schema := reflector.ReflectFromType(t)

	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	delete(out, "$schema")
	return out
}
