package options_test

import (
	"fmt"
	"slices"

	"github.com/davidroman0O/options"
)

func Example() {
	opts := options.New()
	opts.Set("foo", 42).
		Set("bar", "To be or not to be?").
		Set("baz", []string{"Hello", "world"})

	foo, _ := options.Get[int](opts, "foo")
	bar, _ := options.Get[string](opts, "bar")
	baz, _ := options.Get[[]string](opts, "baz")
	_, ok := options.Get[int64](opts, "foo")

	fmt.Println(foo)
	fmt.Println(bar)
	fmt.Println(baz)
	fmt.Println(ok)
	fmt.Println(slices.Sorted(opts.Names()))
	// Output:
	// 42
	// To be or not to be?
	// [Hello world]
	// false
	// [bar baz foo]
}

func ExampleUpdate() {
	opts := options.New().Set("retries", 3)

	options.Update(opts, "retries", func(n *int) { *n++ })

	fmt.Println(options.MustGet[int](opts, "retries"))
	// Output: 4
}
