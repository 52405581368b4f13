// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// Field is one row of a schema table.
type Field[T any] struct {
	// Name is the wire key, e.g. "target_url".
	Name string

	// Value reads the field out of an option value. It returns the zero
	// Value when the field is unset.
	Value func(T) Value

	// Default is substituted when Value returns the zero Value. Leave it
	// zero for fields the API gives no default.
	Default Value
}

// Schema is the fixed field set, order and defaults of one option type.
// A Schema is immutable and safe for concurrent use.
type Schema[T any] struct {
	name   string
	fields []Field[T]
}

// NewSchema builds a schema whose fields encode in the given order.
// Panics on an empty schema name, an empty or duplicate field name, or
// a nil accessor. Schemas are package-level vars, so these fail at init.
func NewSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	if name == "" {
		panic("wire: schema name is required")
	}
	seen := make(map[string]bool, len(fields))
	for i, field := range fields {
		if field.Name == "" {
			panic(fmt.Sprintf("wire: %s field %d has no name", name, i))
		}
		if seen[field.Name] {
			panic(fmt.Sprintf("wire: %s field %q declared twice", name, field.Name))
		}
		if field.Value == nil {
			panic(fmt.Sprintf("wire: %s field %q has no accessor", name, field.Name))
		}
		seen[field.Name] = true
	}
	return &Schema[T]{name: name, fields: append([]Field[T](nil), fields...)}
}

// Name returns the schema name.
func (schema *Schema[T]) Name() string {
	return schema.name
}

// FieldNames returns every declared field name in order, whether or
// not a given value sets it.
func (schema *Schema[T]) FieldNames() []string {
	names := make([]string, len(schema.fields))
	for i, field := range schema.fields {
		names[i] = field.Name
	}
	return names
}

// Record resolves the effective value of every field in declared order:
// the explicit value if present, else the declared default, else the
// field is left out.
func (schema *Schema[T]) Record(value T) Record {
	record := make(Record, 0, len(schema.fields))
	for _, field := range schema.fields {
		effective := field.Value(value)
		if effective.IsZero() {
			effective = field.Default
		}
		if effective.IsZero() {
			continue
		}
		record = append(record, Pair{Key: field.Name, Value: effective})
	}
	return record
}

// JSON encodes value as a JSON object.
func (schema *Schema[T]) JSON(value T) []byte {
	return schema.Record(value).JSON()
}

// Query encodes value as a URL query string.
func (schema *Schema[T]) Query(value T) string {
	return schema.Record(value).Query()
}
