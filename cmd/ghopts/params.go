// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

// params resolves option fields for one invocation. A field is taken
// from its flag when the flag was set on the command line, else from
// the --input document, else it stays unset. Flag "target-url" reads
// input key "target_url".
//
// The first error sticks; later lookups are no-ops, so a kind can
// apply every field and check err once.
type params struct {
	flags *pflag.FlagSet
	args  []string
	input map[string]any
	err   error

	// sending is set under --send. Fields only the API call needs are
	// required then and ignored otherwise.
	sending bool
}

// loadInput reads a JSONC option document. Comments and trailing commas
// are allowed. An empty path means no document.
func loadInput(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	var document map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &document); err != nil {
		return nil, fmt.Errorf("parsing input %s: %w", path, err)
	}
	return document, nil
}

func inputKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func (p *params) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *params) inputValue(name string) (any, bool) {
	value, ok := p.input[inputKey(name)]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (p *params) text(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	if p.flags.Changed(name) {
		value, err := p.flags.GetString(name)
		if err != nil {
			p.fail(err)
			return "", false
		}
		return value, true
	}
	raw, ok := p.inputValue(name)
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		p.fail(fmt.Errorf("input field %q must be a string, got %s", inputKey(name), jsonType(raw)))
		return "", false
	}
	return value, true
}

func (p *params) boolean(name string) (bool, bool) {
	if p.err != nil {
		return false, false
	}
	if p.flags.Changed(name) {
		value, err := p.flags.GetBool(name)
		if err != nil {
			p.fail(err)
			return false, false
		}
		return value, true
	}
	raw, ok := p.inputValue(name)
	if !ok {
		return false, false
	}
	value, ok := raw.(bool)
	if !ok {
		p.fail(fmt.Errorf("input field %q must be a boolean, got %s", inputKey(name), jsonType(raw)))
		return false, false
	}
	return value, true
}

func (p *params) list(name string) ([]string, bool) {
	if p.err != nil {
		return nil, false
	}
	if p.flags.Changed(name) {
		value, err := p.flags.GetStringSlice(name)
		if err != nil {
			p.fail(err)
			return nil, false
		}
		return value, true
	}
	raw, ok := p.inputValue(name)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		p.fail(fmt.Errorf("input field %q must be an array of strings, got %s", inputKey(name), jsonType(raw)))
		return nil, false
	}
	values := make([]string, len(items))
	for i, item := range items {
		text, ok := item.(string)
		if !ok {
			p.fail(fmt.Errorf("input field %q[%d] must be a string, got %s", inputKey(name), i, jsonType(item)))
			return nil, false
		}
		values[i] = text
	}
	return values, true
}

func (p *params) integer(name string) (int64, bool) {
	if p.err != nil {
		return 0, false
	}
	if p.flags.Changed(name) {
		value, err := p.flags.GetInt64(name)
		if err != nil {
			p.fail(err)
			return 0, false
		}
		return value, true
	}
	raw, ok := p.inputValue(name)
	if !ok {
		return 0, false
	}
	number, ok := raw.(float64)
	if !ok || number != math.Trunc(number) {
		p.fail(fmt.Errorf("input field %q must be an integer, got %s", inputKey(name), jsonType(raw)))
		return 0, false
	}
	return int64(number), true
}

// timestamp reads an RFC 3339 time.
func (p *params) timestamp(name string) (time.Time, bool) {
	text, ok := p.text(name)
	if !ok {
		return time.Time{}, false
	}
	value, err := time.Parse(time.RFC3339, text)
	if err != nil {
		p.fail(fmt.Errorf("--%s: %w", name, err))
		return time.Time{}, false
	}
	return value, true
}

// required resolves a mandatory field: the positional argument at
// position if present, else the flag or input field.
func (p *params) required(name string, position int) string {
	if position >= 0 && position < len(p.args) {
		return p.args[position]
	}
	value, ok := p.text(name)
	if !ok {
		p.fail(fmt.Errorf("%s is required", name))
	}
	return value
}

// sendText resolves a field only the API call needs.
func (p *params) sendText(name string) string {
	if !p.sending {
		return ""
	}
	value, ok := p.text(name)
	if !ok {
		p.fail(fmt.Errorf("--%s is required with --send", name))
	}
	return value
}

func (p *params) sendInteger(name string) int64 {
	if !p.sending {
		return 0
	}
	value, ok := p.integer(name)
	if !ok {
		p.fail(fmt.Errorf("--%s is required with --send", name))
	}
	return value
}

// setText applies a text field to a builder setter when present.
func setText[B any](p *params, name string, set func(string) B) {
	if value, ok := p.text(name); ok {
		set(value)
	}
}

func setBool[B any](p *params, name string, set func(bool) B) {
	if value, ok := p.boolean(name); ok {
		set(value)
	}
}

func setList[B any](p *params, name string, set func(...string) B) {
	if value, ok := p.list(name); ok {
		set(value...)
	}
}

// setEnum parses a token field with the enumeration's parser. The
// unknown token is reported verbatim.
func setEnum[E any, B any](p *params, name string, parse func(string) (E, error), set func(E) B) {
	text, ok := p.text(name)
	if !ok {
		return
	}
	value, err := parse(text)
	if err != nil {
		p.fail(fmt.Errorf("--%s: %w", name, err))
		return
	}
	set(value)
}

func jsonType(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
