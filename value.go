package options

import "reflect"

// Value holds one parameter together with the type it was stored as.
//
// The payload is kept behind a pointer to a freshly allocated T, so narrowing
// is a type assertion on *T and only ever succeeds for exactly T.
type Value struct {
	typ reflect.Type
	ptr any
}

func newValue(value any) *Value {
	if value == nil {
		return &Value{}
	}
	t := reflect.TypeOf(value)
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(value))
	return &Value{typ: t, ptr: p.Interface()}
}

func newTypedValue[T any](value T) *Value {
	p := new(T)
	*p = value
	return &Value{typ: reflect.TypeFor[T](), ptr: p}
}

// Type returns the recorded type, or nil if the value was set from a nil
// interface.
func (v Value) Type() reflect.Type {
	return v.typ
}

// Any returns the payload boxed in an interface.
func (v Value) Any() any {
	if v.ptr == nil {
		return nil
	}
	return reflect.ValueOf(v.ptr).Elem().Interface()
}

// Set replaces the payload and its recorded type.
func (v *Value) Set(value any) {
	*v = *newValue(value)
}

// SetValue replaces the payload of v, recording the static type T.
func SetValue[T any](v *Value, value T) {
	*v = *newTypedValue(value)
}

// As returns a copy of the payload if it has type T.
func As[T any](v Value) (T, bool) {
	p, ok := AsRef[T](v)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// AsRef returns a pointer to the payload if it has type T.
func AsRef[T any](v Value) (*T, bool) {
	p, ok := v.ptr.(*T)
	return p, ok
}

// AsMut returns a pointer to the payload of v if it has type T.
func AsMut[T any](v *Value) (*T, bool) {
	if v == nil {
		return nil, false
	}
	return AsRef[T](*v)
}
