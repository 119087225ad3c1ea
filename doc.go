// Package options provides a data structure for managing named parameters.
//
// An Options value maps string names to values of arbitrary types. Each entry
// remembers the exact type it was stored with, and reads must ask for that
// same type: a value stored as int is not returned for int64, a named string
// type is not returned for string, and a concrete type is not returned for an
// interface it implements. Absent names and mismatched types both read as
// "no value".
//
//	opts := options.New()
//	opts.Set("retries", 3).
//		Set("label", "prod").
//		Set("verbose", true)
//
//	retries, ok := options.Get[int](opts, "retries") // 3, true
//	_, ok = options.Get[string](opts, "retries")     // "", false
//
// Core operations:
//   - Set / SetAs: insert or replace an entry (chainable)
//   - Get / GetRef / GetMut / Update: typed reads and in-place writes
//   - Has, Names, All, AllMut: presence checks and enumeration
//   - As / AsRef / AsMut / Value.Set: the same operations on a single Value
//
// Options is meant to be owned by one goroutine at a time. Synced wraps it
// with a read/write lock for shared use.
package options
