// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// ReleaseOptions is the body of a create-release request.
type ReleaseOptions struct {
	tagName         string
	targetCommitish wire.Optional[string]
	name            wire.Optional[string]
	body            wire.Optional[string]
	draft           wire.Optional[bool]
	prerelease      wire.Optional[bool]
}

var releaseSchema = wire.NewSchema("release",
	wire.Field[ReleaseOptions]{Name: "tag_name", Value: func(o ReleaseOptions) wire.Value { return wire.TextValue(o.tagName) }},
	wire.Field[ReleaseOptions]{Name: "target_commitish", Value: func(o ReleaseOptions) wire.Value { return wire.OptionalText(o.targetCommitish) }},
	wire.Field[ReleaseOptions]{Name: "name", Value: func(o ReleaseOptions) wire.Value { return wire.OptionalText(o.name) }},
	wire.Field[ReleaseOptions]{Name: "body", Value: func(o ReleaseOptions) wire.Value { return wire.OptionalText(o.body) }},
	wire.Field[ReleaseOptions]{Name: "draft", Value: func(o ReleaseOptions) wire.Value { return wire.OptionalBool(o.draft) }},
	wire.Field[ReleaseOptions]{Name: "prerelease", Value: func(o ReleaseOptions) wire.Value { return wire.OptionalBool(o.prerelease) }},
)

func (options ReleaseOptions) TagName() string { return options.tagName }

// Record returns the effective fields in wire order.
func (options ReleaseOptions) Record() wire.Record { return releaseSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options ReleaseOptions) MarshalJSON() ([]byte, error) {
	return releaseSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options ReleaseOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// ReleaseBuilder accumulates ReleaseOptions. Not safe for concurrent
// use.
type ReleaseBuilder struct {
	options ReleaseOptions
}

// NewReleaseOptions starts a release of tagName. GitHub creates the tag
// if it does not exist.
func NewReleaseOptions(tagName string) *ReleaseBuilder {
	return &ReleaseBuilder{options: ReleaseOptions{tagName: tagName}}
}

// TargetCommitish is the branch or SHA a new tag is created from.
func (builder *ReleaseBuilder) TargetCommitish(commitish string) *ReleaseBuilder {
	builder.options.targetCommitish = wire.Some(commitish)
	return builder
}

func (builder *ReleaseBuilder) Name(name string) *ReleaseBuilder {
	builder.options.name = wire.Some(name)
	return builder
}

func (builder *ReleaseBuilder) Body(body string) *ReleaseBuilder {
	builder.options.body = wire.Some(body)
	return builder
}

func (builder *ReleaseBuilder) Draft(draft bool) *ReleaseBuilder {
	builder.options.draft = wire.Some(draft)
	return builder
}

func (builder *ReleaseBuilder) Prerelease(prerelease bool) *ReleaseBuilder {
	builder.options.prerelease = wire.Some(prerelease)
	return builder
}

// Build returns the accumulated options.
func (builder *ReleaseBuilder) Build() ReleaseOptions {
	return builder.options
}

// CreateRelease publishes (or drafts) a release.
func (client *Client) CreateRelease(ctx context.Context, owner, repo string, options ReleaseOptions) (*Release, error) {
	var release Release
	path := fmt.Sprintf("/repos/%s/%s/releases", owner, repo)
	if err := client.post(ctx, path, options, &release); err != nil {
		return nil, fmt.Errorf("creating release %s in %s/%s: %w", options.tagName, owner, repo, err)
	}
	return &release, nil
}
