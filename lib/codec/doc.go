// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the deterministic CBOR encoding used when
// option records travel over Bureau service sockets instead of the
// GitHub REST API.
//
// JSON request bodies and query strings are produced by lib/wire, whose
// field order is part of the GitHub wire contract. CBOR carries the same
// effective records between Bureau processes, where no external party
// dictates key order, so the encoder uses Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same record always produces identical
// bytes, which keeps the CBOR form as reproducible as the JSON form.
//
//	data, err := codec.Marshal(options)   // options implements cbor.Marshaler
//	err = codec.Unmarshal(data, &fields)
//	text, err := codec.Diagnose(data)     // RFC 8949 §8 diagnostic notation
//
// Enumeration types implement encoding.TextMarshaler, and both modes are
// configured to use it, so variants cross the socket as their wire
// tokens rather than as integers.
package codec
