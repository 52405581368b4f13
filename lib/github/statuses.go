// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// StatusOptions is the body of a create-commit-status request.
type StatusOptions struct {
	state       StatusState
	targetURL   wire.Optional[string]
	description wire.Optional[string]
	context     wire.Optional[string]
}

var statusSchema = wire.NewSchema("commit status",
	wire.Field[StatusOptions]{Name: "state", Value: func(o StatusOptions) wire.Value { return wire.TokenOf(o.state) }},
	wire.Field[StatusOptions]{Name: "target_url", Value: func(o StatusOptions) wire.Value { return wire.OptionalText(o.targetURL) }},
	wire.Field[StatusOptions]{Name: "description", Value: func(o StatusOptions) wire.Value { return wire.OptionalText(o.description) }},
	wire.Field[StatusOptions]{Name: "context", Value: func(o StatusOptions) wire.Value { return wire.OptionalText(o.context) }},
)

func (options StatusOptions) State() StatusState { return options.state }

// Record returns the effective fields in wire order.
func (options StatusOptions) Record() wire.Record { return statusSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options StatusOptions) MarshalJSON() ([]byte, error) {
	return statusSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options StatusOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// StatusBuilder accumulates StatusOptions. Not safe for concurrent use.
type StatusBuilder struct {
	options StatusOptions
}

// NewStatusOptions starts a commit status in state.
func NewStatusOptions(state StatusState) *StatusBuilder {
	return &StatusBuilder{options: StatusOptions{state: state}}
}

// TargetURL is shown as the "Details" link in the GitHub UI.
func (builder *StatusBuilder) TargetURL(targetURL string) *StatusBuilder {
	builder.options.targetURL = wire.Some(targetURL)
	return builder
}

// Description is a short human-readable summary. GitHub truncates it
// at 140 characters.
func (builder *StatusBuilder) Description(description string) *StatusBuilder {
	builder.options.description = wire.Some(description)
	return builder
}

// Context distinguishes this status from others on the same SHA, e.g.
// "ci/build". GitHub uses "default" when it is absent.
func (builder *StatusBuilder) Context(context string) *StatusBuilder {
	builder.options.context = wire.Some(context)
	return builder
}

// Build returns the accumulated options.
func (builder *StatusBuilder) Build() StatusOptions {
	return builder.options
}

// CreateCommitStatus creates a status on a commit. The sha is the full
// 40-character commit SHA.
func (client *Client) CreateCommitStatus(ctx context.Context, owner, repo, sha string, options StatusOptions) (*CommitStatus, error) {
	var status CommitStatus
	path := fmt.Sprintf("/repos/%s/%s/statuses/%s", owner, repo, sha)
	if err := client.post(ctx, path, options, &status); err != nil {
		return nil, fmt.Errorf("creating status on %s/%s@%s: %w", owner, repo, shortSHA(sha), err)
	}
	return &status, nil
}
