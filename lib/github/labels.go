// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// LabelOptions is the body of a create-label request.
type LabelOptions struct {
	name        string
	color       string
	description wire.Optional[string]
}

var labelSchema = wire.NewSchema("label",
	wire.Field[LabelOptions]{Name: "name", Value: func(o LabelOptions) wire.Value { return wire.TextValue(o.name) }},
	wire.Field[LabelOptions]{Name: "color", Value: func(o LabelOptions) wire.Value { return wire.TextValue(o.color) }},
	wire.Field[LabelOptions]{Name: "description", Value: func(o LabelOptions) wire.Value { return wire.OptionalText(o.description) }},
)

func (options LabelOptions) Name() string  { return options.name }
func (options LabelOptions) Color() string { return options.color }

// Record returns the effective fields in wire order.
func (options LabelOptions) Record() wire.Record { return labelSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options LabelOptions) MarshalJSON() ([]byte, error) {
	return labelSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options LabelOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// LabelBuilder accumulates LabelOptions. Not safe for concurrent use.
type LabelBuilder struct {
	options LabelOptions
}

// NewLabelOptions starts a label. The color is six hex digits without
// the leading "#".
func NewLabelOptions(name, color string) *LabelBuilder {
	return &LabelBuilder{options: LabelOptions{name: name, color: color}}
}

func (builder *LabelBuilder) Description(description string) *LabelBuilder {
	builder.options.description = wire.Some(description)
	return builder
}

// Build returns the accumulated options.
func (builder *LabelBuilder) Build() LabelOptions {
	return builder.options
}

// CreateLabel creates a repository label.
func (client *Client) CreateLabel(ctx context.Context, owner, repo string, options LabelOptions) (*Label, error) {
	var label Label
	path := fmt.Sprintf("/repos/%s/%s/labels", owner, repo)
	if err := client.post(ctx, path, options, &label); err != nil {
		return nil, fmt.Errorf("creating label %q in %s/%s: %w", options.name, owner, repo, err)
	}
	return &label, nil
}
