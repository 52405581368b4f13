// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"maps"
	"slices"

	"github.com/bureau-foundation/ghopts/lib/codec"
	"github.com/bureau-foundation/ghopts/lib/wire"
)

// marshalRecordCBOR encodes an effective record as a Core Deterministic
// CBOR map. Absent fields are left out, as in JSON.
func marshalRecordCBOR(record wire.Record) ([]byte, error) {
	return codec.Marshal(record.Map())
}

// cloneList copies a set list slot so a built value never shares
// storage with its builder.
func cloneList(slot wire.Optional[[]string]) wire.Optional[[]string] {
	if items, ok := slot.Get(); ok {
		return wire.Some(slices.Clone(items))
	}
	return slot
}

func cloneFiles(files map[string]string) map[string]string {
	cloned := make(map[string]string, len(files))
	maps.Copy(cloned, files)
	return cloned
}
