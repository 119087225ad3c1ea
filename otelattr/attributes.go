// Package otelattr turns named parameters into OpenTelemetry attributes so a
// configuration bag can be recorded on a span.
package otelattr

import (
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/davidroman0O/options"
)

// Attributes returns one attribute per entry whose recorded type has an
// attribute representation, sorted by name. Other entries are skipped.
func Attributes(o *options.Options) []attribute.KeyValue {
	return Prefixed("", o)
}

// Prefixed is like Attributes but keys are written as "prefix.name".
func Prefixed(prefix string, o *options.Options) []attribute.KeyValue {
	names := slices.Sorted(o.Names())
	out := make([]attribute.KeyValue, 0, len(names))
	for _, name := range names {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if kv, ok := convert(key, o, name); ok {
			out = append(out, kv)
		}
	}
	return out
}

func convert(key string, o *options.Options, name string) (attribute.KeyValue, bool) {
	if v, ok := options.Get[bool](o, name); ok {
		return attribute.Bool(key, v), true
	}
	if v, ok := options.Get[int](o, name); ok {
		return attribute.Int(key, v), true
	}
	if v, ok := options.Get[int64](o, name); ok {
		return attribute.Int64(key, v), true
	}
	if v, ok := options.Get[float64](o, name); ok {
		return attribute.Float64(key, v), true
	}
	if v, ok := options.Get[string](o, name); ok {
		return attribute.String(key, v), true
	}
	if v, ok := options.Get[[]bool](o, name); ok {
		return attribute.BoolSlice(key, v), true
	}
	if v, ok := options.Get[[]int](o, name); ok {
		return attribute.IntSlice(key, v), true
	}
	if v, ok := options.Get[[]int64](o, name); ok {
		return attribute.Int64Slice(key, v), true
	}
	if v, ok := options.Get[[]float64](o, name); ok {
		return attribute.Float64Slice(key, v), true
	}
	if v, ok := options.Get[[]string](o, name); ok {
		return attribute.StringSlice(key, v), true
	}
	return attribute.KeyValue{}, false
}
