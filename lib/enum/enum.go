// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package enum

import (
	"errors"
	"fmt"
)

// Entry binds one variant to its wire token.
type Entry[E comparable] struct {
	Variant E
	Token   string
}

// Table is an immutable bidirectional mapping between variants and
// wire tokens. It is safe for concurrent use.
type Table[E comparable] struct {
	name         string
	defaultValue E
	entries      []Entry[E]
	tokens       map[E]string
	variants     map[string]E
}

// NewTable builds a table from entries in declaration order. Panics if
// the entries do not form a bijection, if a token is empty, or if
// defaultValue is not one of the declared variants. Tables are declared
// in package-level vars, so a bad table fails at init rather than on
// the first request.
func NewTable[E comparable](name string, defaultValue E, entries ...Entry[E]) *Table[E] {
	if name == "" {
		panic("enum: table name is required")
	}
	if len(entries) == 0 {
		panic(fmt.Sprintf("enum: %s table has no entries", name))
	}

	table := &Table[E]{
		name:         name,
		defaultValue: defaultValue,
		entries:      append([]Entry[E](nil), entries...),
		tokens:       make(map[E]string, len(entries)),
		variants:     make(map[string]E, len(entries)),
	}
	for _, entry := range entries {
		if entry.Token == "" {
			panic(fmt.Sprintf("enum: %s variant %#v has an empty token", name, entry.Variant))
		}
		if _, exists := table.tokens[entry.Variant]; exists {
			panic(fmt.Sprintf("enum: %s variant %#v declared twice", name, entry.Variant))
		}
		if _, exists := table.variants[entry.Token]; exists {
			panic(fmt.Sprintf("enum: %s token %q declared twice", name, entry.Token))
		}
		table.tokens[entry.Variant] = entry.Token
		table.variants[entry.Token] = entry.Variant
	}
	if _, ok := table.tokens[defaultValue]; !ok {
		panic(fmt.Sprintf("enum: %s default %#v is not a declared variant", name, defaultValue))
	}
	return table
}

// Name returns the human-readable type name used in errors.
func (table *Table[E]) Name() string {
	return table.name
}

// Token returns the wire token for variant. A value outside the
// declared set (for example an integer conversion) renders as
// "name(value)", which never collides with a declared token. The value
// is formatted with %#v so a variant whose String method calls Token
// does not recurse.
func (table *Table[E]) Token(variant E) string {
	if token, ok := table.tokens[variant]; ok {
		return token
	}
	return fmt.Sprintf("%s(%#v)", table.name, variant)
}

// Lookup returns the wire token for variant and whether the variant
// is declared.
func (table *Table[E]) Lookup(variant E) (string, bool) {
	token, ok := table.tokens[variant]
	return token, ok
}

// Parse returns the variant named by token. The match is exact and
// case-sensitive.
func (table *Table[E]) Parse(token string) (E, error) {
	if variant, ok := table.variants[token]; ok {
		return variant, nil
	}
	var zero E
	return zero, &ParseError{Type: table.name, Token: token}
}

// Default returns the designated default variant.
func (table *Table[E]) Default() E {
	return table.defaultValue
}

// Variants returns the declared variants in declaration order.
func (table *Table[E]) Variants() []E {
	variants := make([]E, len(table.entries))
	for i, entry := range table.entries {
		variants[i] = entry.Variant
	}
	return variants
}

// Tokens returns the declared tokens in declaration order.
func (table *Table[E]) Tokens() []string {
	tokens := make([]string, len(table.entries))
	for i, entry := range table.entries {
		tokens[i] = entry.Token
	}
	return tokens
}

// MarshalText implements the body of encoding.TextMarshaler for a
// variant type. Unlike [Table.Token], it fails for undeclared values.
func (table *Table[E]) MarshalText(variant E) ([]byte, error) {
	token, ok := table.tokens[variant]
	if !ok {
		return nil, fmt.Errorf("enum: cannot marshal undeclared %s %#v", table.name, variant)
	}
	return []byte(token), nil
}

// UnmarshalText implements the body of encoding.TextUnmarshaler for a
// variant type. On failure *destination is left unchanged.
func (table *Table[E]) UnmarshalText(destination *E, text []byte) error {
	variant, err := table.Parse(string(text))
	if err != nil {
		return err
	}
	*destination = variant
	return nil
}

// ParseError reports a wire token that matches no declared variant.
type ParseError struct {
	// Type is the table name, e.g. "status state".
	Type string

	// Token is the offending input, verbatim.
	Token string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("enum: unknown %s token %q", err.Type, err.Token)
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
