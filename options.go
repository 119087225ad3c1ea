package options

import (
	"iter"
	"reflect"
	"slices"
)

// Options is a collection of named parameters of arbitrary types.
//
// Each name maps to exactly one Value. Reads narrow the value back to the
// type it was stored with; asking for any other type yields nothing.
// Options is not safe for concurrent use, see Synced.
type Options struct {
	data   map[string]*Value
	logger Logger
}

// New creates an empty collection of named parameters.
func New(opts ...Option) *Options {
	cfg := newConfig(opts...)
	return &Options{
		data:   make(map[string]*Value, cfg.capacity),
		logger: cfg.logger,
	}
}

func (o *Options) init() {
	if o.data == nil {
		o.data = make(map[string]*Value)
	}
	if o.logger == nil {
		o.logger = NewDefaultLogger()
	}
}

// Set stores value under name, replacing whatever was there before.
// The dynamic type of value is recorded for later reads.
func (o *Options) Set(name string, value any) *Options {
	o.put(name, newValue(value))
	return o
}

// SetAs stores value under name recording the static type T. Use it when the
// recorded type must be an interface type rather than the concrete one.
func SetAs[T any](o *Options, name string, value T) *Options {
	o.put(name, newTypedValue(value))
	return o
}

func (o *Options) put(name string, v *Value) {
	o.init()
	if prev, ok := o.data[name]; ok && prev.typ != v.typ {
		o.logger.Debug("options: %q changes type from %v to %v", name, prev.typ, v.typ)
	}
	o.data[name] = v
}

func (o *Options) lookup(name string) (*Value, bool) {
	if o == nil || o.data == nil {
		return nil, false
	}
	v, ok := o.data[name]
	return v, ok
}

// Get returns a copy of the value stored under name if it has type T.
func Get[T any](o *Options, name string) (T, bool) {
	p, ok := GetRef[T](o, name)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// GetRef returns a pointer to the value stored under name if it has type T.
// The pointer is meant for reading and stays valid until name is set again.
func GetRef[T any](o *Options, name string) (*T, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return nil, false
	}
	return AsRef[T](*v)
}

// GetMut returns a pointer to the value stored under name if it has type T.
// Writes through the pointer are observed by later reads of name.
func GetMut[T any](o *Options, name string) (*T, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return nil, false
	}
	return AsMut[T](v)
}

// Update calls fn with the value stored under name if it has type T.
// It reports whether fn was called.
func Update[T any](o *Options, name string, fn func(*T)) bool {
	p, ok := GetMut[T](o, name)
	if !ok {
		return false
	}
	fn(p)
	return true
}

// MustGet is like Get but panics when no value of type T is stored under name.
func MustGet[T any](o *Options, name string) T {
	v, ok := o.lookup(name)
	if !ok {
		panic(notFound(name))
	}
	p, ok := AsRef[T](*v)
	if !ok {
		panic(typeMismatch[T](name, v.typ))
	}
	return *p
}

// Has reports whether a value of any type is stored under name.
func (o *Options) Has(name string) bool {
	_, ok := o.lookup(name)
	return ok
}

// Type returns the type recorded for name.
func (o *Options) Type(name string) (reflect.Type, bool) {
	v, ok := o.lookup(name)
	if !ok {
		return nil, false
	}
	return v.typ, true
}

// Delete removes name and reports whether it was present.
func (o *Options) Delete(name string) bool {
	if _, ok := o.lookup(name); !ok {
		return false
	}
	delete(o.data, name)
	o.logger.Debug("options: deleted %q", name)
	return true
}

// Clear removes every entry.
func (o *Options) Clear() {
	if o != nil && o.data != nil {
		clear(o.data)
	}
}

// Len returns the number of stored names.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.data)
}

// Names returns an iterator over the stored names in no particular order.
func (o *Options) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		if o == nil {
			return
		}
		for name := range o.data {
			if !yield(name) {
				return
			}
		}
	}
}

// All returns an iterator over copies of the stored entries. Setting a
// yielded Value does not change the collection.
func (o *Options) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for name, v := range o.data {
			if !yield(name, *v) {
				return
			}
		}
	}
}

// AllMut returns an iterator over the stored entries themselves. Setting a
// yielded Value replaces the entry in place.
func (o *Options) AllMut() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if o == nil {
			return
		}
		for name, v := range o.data {
			if !yield(name, v) {
				return
			}
		}
	}
}

// NamesOf returns the sorted names whose recorded type is exactly T.
func NamesOf[T any](o *Options) []string {
	want := reflect.TypeFor[T]()
	var names []string
	for name, v := range o.All() {
		if v.typ == want {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

