// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package enum maps closed sets of symbolic variants to the lowercase
// string tokens an API uses on the wire.
//
// A [Table] is declared once per variant type, at package init:
//
//	var States = enum.NewTable("state", StateOpen,
//	    enum.Entry[State]{Variant: StateOpen, Token: "open"},
//	    enum.Entry[State]{Variant: StateClosed, Token: "closed"},
//	)
//
// The table is a bijection: every declared variant has exactly one
// token and every declared token names exactly one variant. Encoding
// ([Table.Token]) never fails for a declared variant. Decoding
// ([Table.Parse]) fails with a [*ParseError] carrying the offending
// token verbatim; that is the only runtime failure the option encoding
// layer has. Unknown tokens are never silently mapped to the default.
//
// Variant types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler through [Table.MarshalText] and
// [Table.UnmarshalText], so JSON and CBOR decoding of API responses
// routes every state string through [Table.Parse].
package enum
