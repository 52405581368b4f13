// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// GistOptions is the body of a create-gist request.
type GistOptions struct {
	description wire.Optional[string]
	public      bool
	files       map[string]string
}

var gistSchema = wire.NewSchema("gist",
	wire.Field[GistOptions]{Name: "description", Value: func(o GistOptions) wire.Value { return wire.OptionalText(o.description) }},
	wire.Field[GistOptions]{Name: "public", Value: func(o GistOptions) wire.Value { return wire.BoolValue(o.public) }},
	wire.Field[GistOptions]{Name: "files", Value: func(o GistOptions) wire.Value {
		members := make(map[string]wire.Record, len(o.files))
		for name, content := range o.files {
			members[name] = wire.Record{{Key: "content", Value: wire.TextValue(content)}}
		}
		return wire.MappingValue(members)
	}},
)

func (options GistOptions) Public() bool { return options.public }

// Files returns a copy of the file name to content mapping.
func (options GistOptions) Files() map[string]string { return cloneFiles(options.files) }

// Record returns the effective fields in wire order. Files are ordered
// by name.
func (options GistOptions) Record() wire.Record { return gistSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options GistOptions) MarshalJSON() ([]byte, error) {
	return gistSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options GistOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// GistBuilder accumulates GistOptions. Not safe for concurrent use.
type GistBuilder struct {
	options GistOptions
}

// NewGistOptions starts a gist holding files, a mapping of file name to
// content. The mapping is copied.
func NewGistOptions(public bool, files map[string]string) *GistBuilder {
	return &GistBuilder{options: GistOptions{public: public, files: cloneFiles(files)}}
}

func (builder *GistBuilder) Description(description string) *GistBuilder {
	builder.options.description = wire.Some(description)
	return builder
}

// File adds or replaces one file.
func (builder *GistBuilder) File(name, content string) *GistBuilder {
	builder.options.files[name] = content
	return builder
}

// Build returns the accumulated options.
func (builder *GistBuilder) Build() GistOptions {
	options := builder.options
	options.files = cloneFiles(options.files)
	return options
}

// CreateGist creates a gist owned by the authenticated user.
func (client *Client) CreateGist(ctx context.Context, options GistOptions) (*Gist, error) {
	var gist Gist
	if err := client.post(ctx, "/gists", options, &gist); err != nil {
		return nil, fmt.Errorf("creating gist: %w", err)
	}
	return &gist, nil
}
