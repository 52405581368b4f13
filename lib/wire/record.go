// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Pair is one emitted key and its effective value.
type Pair struct {
	Key   string
	Value Value
}

// Record is an ordered set of present fields. It encodes as a single
// JSON object or a single query string, preserving order.
type Record []Pair

// AppendJSON appends the record as a JSON object to dst. Absent values
// are skipped, so a Record built by hand encodes the same way as one
// resolved by a Schema.
func (record Record) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	for _, pair := range record {
		if pair.Value.IsZero() {
			continue
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendString(dst, pair.Key)
		dst = append(dst, ':')
		dst = pair.Value.appendJSON(dst)
	}
	return append(dst, '}')
}

// JSON returns the record as a JSON object.
func (record Record) JSON() []byte {
	return record.AppendJSON(nil)
}

// Query returns the record as a URL query string with no leading "?".
// Keys and values are escaped with application/x-www-form-urlencoded
// rules; "&" and "=" between pairs are literal.
func (record Record) Query() string {
	var builder strings.Builder
	for _, pair := range record {
		if pair.Value.IsZero() {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value.queryText()))
	}
	return builder.String()
}

// Get returns the value stored under key.
func (record Record) Get(key string) (Value, bool) {
	for _, pair := range record {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the record's keys in order.
func (record Record) Keys() []string {
	keys := make([]string, 0, len(record))
	for _, pair := range record {
		if !pair.Value.IsZero() {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}

// Map returns the record as a map of plain Go values (see
// [Value.Interface]). Order is lost; use it only for encoders that
// impose their own deterministic key order.
func (record Record) Map() map[string]any {
	fields := make(map[string]any, len(record))
	for _, pair := range record {
		if !pair.Value.IsZero() {
			fields[pair.Key] = pair.Value.Interface()
		}
	}
	return fields
}

// appendString appends s as a JSON string literal. HTML characters are
// left unescaped: request bodies go to an API, not into a web page.
func appendString(dst []byte, s string) []byte {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	// Encoding a Go string never fails; invalid UTF-8 becomes U+FFFD.
	_ = encoder.Encode(s)
	return append(dst, bytes.TrimSuffix(buffer.Bytes(), []byte{'\n'})...)
}
