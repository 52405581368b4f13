// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies how a [Value] is represented on the wire.
type Kind uint8

const (
	// Absent is the kind of the zero Value. Absent fields are never
	// emitted.
	Absent Kind = iota

	// Text is a free-form string.
	Text

	// Bool is a JSON literal true/false, or "true"/"false" in a query.
	Bool

	// Token is an enumeration wire token. It encodes exactly like Text;
	// the separate kind records that the string came from a codec.
	Token

	// List is an ordered list of strings: a JSON array, or a single
	// comma-joined query value.
	List

	// Mapping is a name → nested record collection, encoded as a JSON
	// object whose members are objects (e.g. gist files).
	Mapping
)

func (kind Kind) String() string {
	switch kind {
	case Absent:
		return "absent"
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Token:
		return "token"
	case List:
		return "list"
	case Mapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(kind)) + ")"
	}
}

// Tokener is implemented by enumeration variant types.
type Tokener interface {
	Token() string
}

// Member is one named entry of a Mapping value.
type Member struct {
	Name   string
	Record Record
}

// Value is one field value. The zero Value is absent.
type Value struct {
	kind    Kind
	text    string
	boolean bool
	list    []string
	members []Member
}

// TextValue returns a Text value.
func TextValue(text string) Value {
	return Value{kind: Text, text: text}
}

// BoolValue returns a Bool value.
func BoolValue(boolean bool) Value {
	return Value{kind: Bool, boolean: boolean}
}

// TokenValue returns a Token value carrying an enumeration wire token.
func TokenValue(token string) Value {
	return Value{kind: Token, text: token}
}

// TokenOf returns the Token value of an enumeration variant.
func TokenOf[E Tokener](variant E) Value {
	return TokenValue(variant.Token())
}

// ListValue returns a List value holding a copy of items. A nil or
// empty slice is still a present (empty) list.
func ListValue(items []string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{kind: List, list: copied}
}

// MappingValue returns a Mapping value. Members are ordered by name so
// the encoding never depends on map iteration order.
func MappingValue(members map[string]Record) Value {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]Member, len(names))
	for i, name := range names {
		ordered[i] = Member{Name: name, Record: slices.Clone(members[name])}
	}
	return Value{kind: Mapping, members: ordered}
}

// OptionalText returns a Text value for a set slot and the zero Value
// otherwise.
func OptionalText(slot Optional[string]) Value {
	if text, ok := slot.Get(); ok {
		return TextValue(text)
	}
	return Value{}
}

// OptionalBool returns a Bool value for a set slot and the zero Value
// otherwise.
func OptionalBool(slot Optional[bool]) Value {
	if boolean, ok := slot.Get(); ok {
		return BoolValue(boolean)
	}
	return Value{}
}

// OptionalList returns a List value for a set slot and the zero Value
// otherwise.
func OptionalList(slot Optional[[]string]) Value {
	if items, ok := slot.Get(); ok {
		return ListValue(items)
	}
	return Value{}
}

// OptionalToken returns a Token value for a set slot and the zero Value
// otherwise.
func OptionalToken[E Tokener](slot Optional[E]) Value {
	if variant, ok := slot.Get(); ok {
		return TokenOf(variant)
	}
	return Value{}
}

// Kind returns the value's kind.
func (value Value) Kind() Kind {
	return value.kind
}

// IsZero reports whether the value is absent.
func (value Value) IsZero() bool {
	return value.kind == Absent
}

// Text returns the string of a Text or Token value, and "" otherwise.
func (value Value) Text() string {
	return value.text
}

// Bool returns the boolean of a Bool value, and false otherwise.
func (value Value) Bool() bool {
	return value.boolean
}

// List returns a copy of the items of a List value.
func (value Value) List() []string {
	return slices.Clone(value.list)
}

// Members returns the members of a Mapping value in name order.
func (value Value) Members() []Member {
	return slices.Clone(value.members)
}

// Interface returns the value as plain Go data: string, bool, []any,
// or map[string]any of nested maps. Absent values return nil. Used to
// hand records to encoders that work on generic maps (CBOR).
func (value Value) Interface() any {
	switch value.kind {
	case Text, Token:
		return value.text
	case Bool:
		return value.boolean
	case List:
		items := make([]any, len(value.list))
		for i, item := range value.list {
			items[i] = item
		}
		return items
	case Mapping:
		members := make(map[string]any, len(value.members))
		for _, member := range value.members {
			members[member.Name] = member.Record.Map()
		}
		return members
	default:
		return nil
	}
}

// appendJSON appends the JSON encoding of value to dst.
func (value Value) appendJSON(dst []byte) []byte {
	switch value.kind {
	case Text, Token:
		return appendString(dst, value.text)
	case Bool:
		return strconv.AppendBool(dst, value.boolean)
	case List:
		dst = append(dst, '[')
		for i, item := range value.list {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, item)
		}
		return append(dst, ']')
	case Mapping:
		dst = append(dst, '{')
		for i, member := range value.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, member.Name)
			dst = append(dst, ':')
			dst = member.Record.AppendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// queryText returns the unescaped query-string form of value.
func (value Value) queryText() string {
	switch value.kind {
	case Text, Token:
		return value.text
	case Bool:
		return strconv.FormatBool(value.boolean)
	case List:
		return strings.Join(value.list, ",")
	case Mapping:
		return string(value.appendJSON(nil))
	default:
		return ""
	}
}
