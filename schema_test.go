package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSchema(t *testing.T) {
	type SchemaTestStruct struct {
		FieldA string `json:"field_a"`
		FieldB int    `json:"field_b,omitempty"`
	}

	opts := New()
	opts.Set("struct", SchemaTestStruct{FieldA: "test", FieldB: 123}).
		Set("pointer", &SchemaTestStruct{}).
		Set("count", 3).
		Set("nothing", nil)

	t.Run("struct", func(t *testing.T) {
		schema, ok := opts.TypeSchema("struct")
		require.True(t, ok)
		assert.Equal(t, "object", schema["type"])

		properties, ok := schema["properties"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, properties, "field_a")
		assert.Contains(t, properties, "field_b")

		fieldA, ok := properties["field_a"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "string", fieldA["type"])
	})

	t.Run("pointer_to_struct", func(t *testing.T) {
		schema, ok := opts.TypeSchema("pointer")
		require.True(t, ok)
		assert.Equal(t, "object", schema["type"])
	})

	t.Run("scalar", func(t *testing.T) {
		schema, ok := opts.TypeSchema("count")
		require.True(t, ok)
		assert.Equal(t, "integer", schema["type"])
	})

	t.Run("missing_or_untyped", func(t *testing.T) {
		_, ok := opts.TypeSchema("missing")
		assert.False(t, ok)
		_, ok = opts.TypeSchema("nothing")
		assert.False(t, ok)
	})
}

type schemaNode struct {
	Name string      `json:"name"`
	Next *schemaNode `json:"next,omitempty"`
}

type schemaList []schemaList

type schemaHandler struct {
	Name     string `json:"name"`
	Callback func()
}

type schemaHidden struct {
	Name     string `json:"name"`
	Callback func() `json:"-"`
	done     chan struct{}
}

func TestTypeSchemaUndescribable(t *testing.T) {
	opts := New()
	opts.Set("func", func() {}).
		Set("chan", make(chan int)).
		Set("complex", complex(1, 2)).
		Set("handler", schemaHandler{Name: "h"}).
		Set("funcs", []func(){}).
		Set("list", schemaList{})

	for _, name := range []string{"func", "chan", "complex", "handler", "funcs", "list"} {
		t.Run(name, func(t *testing.T) {
			var ok bool
			assert.NotPanics(t, func() {
				_, ok = opts.TypeSchema(name)
			})
			assert.False(t, ok)
		})
	}
}

func TestTypeSchemaSkipsIgnoredFields(t *testing.T) {
	opts := New().Set("hidden", schemaHidden{Name: "h"})

	schema, ok := opts.TypeSchema("hidden")
	require.True(t, ok)
	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "name")
	assert.Len(t, properties, 1)
}

func TestTypeSchemaRecursive(t *testing.T) {
	opts := New().
		Set("node", schemaNode{Name: "head"}).
		Set("nodePtr", &schemaNode{Name: "head"})

	for _, name := range []string{"node", "nodePtr"} {
		t.Run(name, func(t *testing.T) {
			schema, ok := opts.TypeSchema(name)
			require.True(t, ok)
			assert.Equal(t, "#/$defs/schemaNode", schema["$ref"])

			defs, ok := schema["$defs"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, defs, "schemaNode")
		})
	}
}
