// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire renders API option values as JSON request bodies and URL
// query strings from a declarative per-schema field table.
//
// A [Schema] lists the fields of one option type in the order the API
// expects them. Each [Field] names its wire key, reads its [Value] out
// of the option value, and may declare a default:
//
//	var statusSchema = wire.NewSchema("status",
//	    wire.Field[StatusOptions]{Name: "state", Value: func(o StatusOptions) wire.Value {
//	        return wire.TokenOf(o.state)
//	    }},
//	    wire.Field[StatusOptions]{Name: "target_url", Value: func(o StatusOptions) wire.Value {
//	        return wire.OptionalText(o.targetURL)
//	    }},
//	)
//
// [Schema.Record] resolves each field's effective value (explicit value,
// else declared default, else absent) into an ordered [Record]. The two
// encoders consume that record:
//
//   - [Record.AppendJSON] writes a JSON object. Absent fields are omitted,
//     never written as null.
//   - [Record.Query] writes key=value pairs joined by "&". List values are
//     comma-joined before escaping, so the separator becomes %2C.
//
// Field order is data in the schema table, not an accident of struct
// layout or map iteration, and both encoders are pure: the same value
// always produces the same bytes. Encoding never fails.
//
// Optional field slots are modeled by [Optional]; the zero Optional is
// absent. Required slots are plain fields of the option type.
package wire
