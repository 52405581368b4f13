// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type color string

func (c color) Token() string { return string(c) }

// paint is a small option type exercising every field kind.
type paint struct {
	name     string
	shade    Optional[color]
	glossy   Optional[bool]
	tags     Optional[[]string]
	note     Optional[string]
	swatches map[string]string
}

var paintSchema = NewSchema("paint",
	Field[paint]{Name: "name", Value: func(p paint) Value { return TextValue(p.name) }},
	Field[paint]{Name: "shade", Value: func(p paint) Value { return OptionalToken(p.shade) }, Default: TokenValue("white")},
	Field[paint]{Name: "glossy", Value: func(p paint) Value { return OptionalBool(p.glossy) }},
	Field[paint]{Name: "tags", Value: func(p paint) Value { return OptionalList(p.tags) }},
	Field[paint]{Name: "note", Value: func(p paint) Value { return OptionalText(p.note) }},
	Field[paint]{Name: "swatches", Value: func(p paint) Value {
		if p.swatches == nil {
			return Value{}
		}
		members := make(map[string]Record, len(p.swatches))
		for name, hex := range p.swatches {
			members[name] = Record{{Key: "hex", Value: TextValue(hex)}}
		}
		return MappingValue(members)
	}},
)

func TestSchemaJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    paint
		expected string
	}{
		{
			name:     "required only plus default",
			value:    paint{name: "base"},
			expected: `{"name":"base","shade":"white"}`,
		},
		{
			name:     "token overrides default",
			value:    paint{name: "base", shade: Some(color("red"))},
			expected: `{"name":"base","shade":"red"}`,
		},
		{
			name:     "false boolean is present",
			value:    paint{name: "base", glossy: Some(false)},
			expected: `{"name":"base","shade":"white","glossy":false}`,
		},
		{
			name:     "list",
			value:    paint{name: "base", tags: Some([]string{"a", "b"})},
			expected: `{"name":"base","shade":"white","tags":["a","b"]}`,
		},
		{
			name:     "explicit empty list is present",
			value:    paint{name: "base", tags: Some([]string{})},
			expected: `{"name":"base","shade":"white","tags":[]}`,
		},
		{
			name:     "mapping members sorted by name",
			value:    paint{name: "base", swatches: map[string]string{"zeta": "#000", "alpha": "#fff"}},
			expected: `{"name":"base","shade":"white","swatches":{"alpha":{"hex":"#fff"},"zeta":{"hex":"#000"}}}`,
		},
		{
			name:     "escaping",
			value:    paint{name: "quote\" back\\slash\nline", note: Some("<b>&</b>")},
			expected: `{"name":"quote\" back\\slash\nline","shade":"white","note":"<b>&</b>"}`,
		},
		{
			name: "every field",
			value: paint{
				name:     "n",
				shade:    Some(color("blue")),
				glossy:   Some(true),
				tags:     Some([]string{"x"}),
				note:     Some("y"),
				swatches: map[string]string{"s": "#123"},
			},
			expected: `{"name":"n","shade":"blue","glossy":true,"tags":["x"],"note":"y","swatches":{"s":{"hex":"#123"}}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := string(paintSchema.JSON(test.value))
			if got != test.expected {
				t.Errorf("JSON:\n got  %s\n want %s", got, test.expected)
			}
		})
	}
}

func TestSchemaQuery(t *testing.T) {
	tests := []struct {
		name     string
		value    paint
		expected string
	}{
		{
			name:     "default substituted",
			value:    paint{name: "base"},
			expected: "name=base&shade=white",
		},
		{
			name:     "list joined before escaping",
			value:    paint{name: "base", tags: Some([]string{"foo", "bar"})},
			expected: "name=base&shade=white&tags=foo%2Cbar",
		},
		{
			name:     "reserved characters escaped",
			value:    paint{name: "a b&c=d", note: Some("100%/?#")},
			expected: "name=a+b%26c%3Dd&shade=white&note=100%25%2F%3F%23",
		},
		{
			name:     "boolean",
			value:    paint{name: "base", glossy: Some(true)},
			expected: "name=base&shade=white&glossy=true",
		},
		{
			name:     "empty required text is still emitted",
			value:    paint{},
			expected: "name=&shade=white",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := paintSchema.Query(test.value)
			if got != test.expected {
				t.Errorf("Query:\n got  %s\n want %s", got, test.expected)
			}
		})
	}
}

func TestSchemaOmitsUnsetFields(t *testing.T) {
	record := paintSchema.Record(paint{name: "base"})
	for _, key := range []string{"glossy", "tags", "note", "swatches"} {
		if _, ok := record.Get(key); ok {
			t.Errorf("unset field %q present in record", key)
		}
		if strings.Contains(string(record.JSON()), `"`+key+`"`) {
			t.Errorf("unset field %q present in JSON", key)
		}
	}
}

func TestSchemaDeterministic(t *testing.T) {
	value := paint{
		name:     "n",
		tags:     Some([]string{"x", "y"}),
		swatches: map[string]string{"c": "3", "a": "1", "b": "2", "d": "4", "e": "5"},
	}
	first := paintSchema.JSON(value)
	for i := 0; i < 50; i++ {
		if again := paintSchema.JSON(value); string(again) != string(first) {
			t.Fatalf("encoding %d differs:\n%s\n%s", i, again, first)
		}
	}
	firstQuery := paintSchema.Query(value)
	if again := paintSchema.Query(value); again != firstQuery {
		t.Fatalf("query differs: %s vs %s", again, firstQuery)
	}
}

func TestSchemaFieldNames(t *testing.T) {
	want := []string{"name", "shade", "glossy", "tags", "note", "swatches"}
	if diff := cmp.Diff(want, paintSchema.FieldNames()); diff != "" {
		t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
	}
	if paintSchema.Name() != "paint" {
		t.Errorf("Name = %q", paintSchema.Name())
	}
}

func TestRecordMap(t *testing.T) {
	record := paintSchema.Record(paint{
		name:     "n",
		glossy:   Some(true),
		tags:     Some([]string{"x"}),
		swatches: map[string]string{"s": "#123"},
	})
	want := map[string]any{
		"name":     "n",
		"shade":    "white",
		"glossy":   true,
		"tags":     []any{"x"},
		"swatches": map[string]any{"s": map[string]any{"hex": "#123"}},
	}
	if diff := cmp.Diff(want, record.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "shade", "glossy", "tags", "swatches"}, record.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordSkipsAbsentPairs(t *testing.T) {
	record := Record{
		{Key: "a", Value: TextValue("1")},
		{Key: "b"},
		{Key: "c", Value: BoolValue(false)},
	}
	if got := string(record.JSON()); got != `{"a":"1","c":false}` {
		t.Errorf("JSON = %s", got)
	}
	if got := record.Query(); got != "a=1&c=false" {
		t.Errorf("Query = %s", got)
	}
	if got := string(Record(nil).JSON()); got != "{}" {
		t.Errorf("empty JSON = %s", got)
	}
	if got := Record(nil).Query(); got != "" {
		t.Errorf("empty Query = %q", got)
	}
}

func TestListValueCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	value := ListValue(items)
	items[0] = "mutated"
	if diff := cmp.Diff([]string{"a", "b"}, value.List()); diff != "" {
		t.Errorf("ListValue aliased its input (-want +got):\n%s", diff)
	}
}

func TestOptional(t *testing.T) {
	var empty Optional[string]
	if empty.IsSet() {
		t.Error("zero Optional is set")
	}
	if got := empty.Or("fallback"); got != "fallback" {
		t.Errorf("Or = %q", got)
	}
	present := Some("")
	if value, ok := present.Get(); !ok || value != "" {
		t.Errorf("Get = %q, %v", value, ok)
	}
	if OptionalText(present).IsZero() {
		t.Error("Some(\"\") should produce a present value")
	}
	if !OptionalText(empty).IsZero() {
		t.Error("unset slot should produce the zero value")
	}
}

func TestValueKinds(t *testing.T) {
	if got := TokenOf(color("red")); got.Kind() != Token || got.Text() != "red" {
		t.Errorf("TokenOf = %v %q", got.Kind(), got.Text())
	}
	if got := BoolValue(true); got.Kind() != Bool || !got.Bool() {
		t.Errorf("BoolValue = %v %v", got.Kind(), got.Bool())
	}
	if got := (Value{}).Interface(); got != nil {
		t.Errorf("absent Interface = %v", got)
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
	mapping := MappingValue(map[string]Record{"b": nil, "a": nil})
	var names []string
	for _, member := range mapping.Members() {
		names = append(names, member.Name)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("Members order (-want +got):\n%s", diff)
	}
	if got := mapping.queryText(); got != `{"a":{},"b":{}}` {
		t.Errorf("mapping queryText = %s", got)
	}
}

func TestNewSchemaPanics(t *testing.T) {
	accessor := func(p paint) Value { return TextValue(p.name) }
	tests := []struct {
		name    string
		build   func()
		message string
	}{
		{"empty schema name", func() { NewSchema[paint]("") }, "schema name is required"},
		{"empty field name", func() { NewSchema("p", Field[paint]{Value: accessor}) }, "has no name"},
		{"duplicate field", func() {
			NewSchema("p", Field[paint]{Name: "a", Value: accessor}, Field[paint]{Name: "a", Value: accessor})
		}, `"a" declared twice`},
		{"nil accessor", func() { NewSchema("p", Field[paint]{Name: "a"}) }, "has no accessor"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					t.Fatal("expected panic")
				}
				if message := fmt.Sprint(recovered); !strings.Contains(message, test.message) {
					t.Errorf("panic %q does not contain %q", message, test.message)
				}
			}()
			test.build()
		})
	}
}
