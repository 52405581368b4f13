// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// PullOptions is the body of a create-pull-request request.
type PullOptions struct {
	title string
	head  string
	base  string
	body  wire.Optional[string]
}

var pullSchema = wire.NewSchema("pull request",
	wire.Field[PullOptions]{Name: "title", Value: func(o PullOptions) wire.Value { return wire.TextValue(o.title) }},
	wire.Field[PullOptions]{Name: "head", Value: func(o PullOptions) wire.Value { return wire.TextValue(o.head) }},
	wire.Field[PullOptions]{Name: "base", Value: func(o PullOptions) wire.Value { return wire.TextValue(o.base) }},
	wire.Field[PullOptions]{Name: "body", Value: func(o PullOptions) wire.Value { return wire.OptionalText(o.body) }},
)

func (options PullOptions) Title() string { return options.title }
func (options PullOptions) Head() string  { return options.head }
func (options PullOptions) Base() string  { return options.base }

// Record returns the effective fields in wire order.
func (options PullOptions) Record() wire.Record { return pullSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options PullOptions) MarshalJSON() ([]byte, error) {
	return pullSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options PullOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// PullBuilder accumulates PullOptions. Not safe for concurrent use.
type PullBuilder struct {
	options PullOptions
}

// NewPullOptions starts a pull request merging head into base. For a
// cross-repository pull request head is "owner:branch".
func NewPullOptions(title, head, base string) *PullBuilder {
	return &PullBuilder{options: PullOptions{title: title, head: head, base: base}}
}

func (builder *PullBuilder) Body(body string) *PullBuilder {
	builder.options.body = wire.Some(body)
	return builder
}

// Build returns the accumulated options.
func (builder *PullBuilder) Build() PullOptions {
	return builder.options
}

// PullEditOptions is the body of an edit-pull-request request. Every
// field is optional; an empty edit encodes as {}.
type PullEditOptions struct {
	title wire.Optional[string]
	body  wire.Optional[string]
	state wire.Optional[State]
}

var pullEditSchema = wire.NewSchema("pull request edit",
	wire.Field[PullEditOptions]{Name: "title", Value: func(o PullEditOptions) wire.Value { return wire.OptionalText(o.title) }},
	wire.Field[PullEditOptions]{Name: "body", Value: func(o PullEditOptions) wire.Value { return wire.OptionalText(o.body) }},
	wire.Field[PullEditOptions]{Name: "state", Value: func(o PullEditOptions) wire.Value { return wire.OptionalToken(o.state) }},
)

// Record returns the effective fields in wire order.
func (options PullEditOptions) Record() wire.Record { return pullEditSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options PullEditOptions) MarshalJSON() ([]byte, error) {
	return pullEditSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options PullEditOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// PullEditBuilder accumulates PullEditOptions. Not safe for concurrent
// use.
type PullEditBuilder struct {
	options PullEditOptions
}

func NewPullEditOptions() *PullEditBuilder {
	return &PullEditBuilder{}
}

func (builder *PullEditBuilder) Title(title string) *PullEditBuilder {
	builder.options.title = wire.Some(title)
	return builder
}

func (builder *PullEditBuilder) Body(body string) *PullEditBuilder {
	builder.options.body = wire.Some(body)
	return builder
}

// State opens or closes the pull request. GitHub rejects StateAll.
func (builder *PullEditBuilder) State(state State) *PullEditBuilder {
	builder.options.state = wire.Some(state)
	return builder
}

// Build returns the accumulated options.
func (builder *PullEditBuilder) Build() PullEditOptions {
	return builder.options
}

// PullListOptions filters the pull request list endpoint. State is
// always sent and defaults to open; the other filters are sent only
// when set.
type PullListOptions struct {
	state     wire.Optional[State]
	head      wire.Optional[string]
	base      wire.Optional[string]
	sort      wire.Optional[PullSort]
	direction wire.Optional[SortDirection]
}

var pullListSchema = wire.NewSchema("pull request list",
	wire.Field[PullListOptions]{
		Name:    "state",
		Value:   func(o PullListOptions) wire.Value { return wire.OptionalToken(o.state) },
		Default: wire.TokenOf(StateOpen),
	},
	wire.Field[PullListOptions]{Name: "head", Value: func(o PullListOptions) wire.Value { return wire.OptionalText(o.head) }},
	wire.Field[PullListOptions]{Name: "base", Value: func(o PullListOptions) wire.Value { return wire.OptionalText(o.base) }},
	wire.Field[PullListOptions]{Name: "sort", Value: func(o PullListOptions) wire.Value { return wire.OptionalToken(o.sort) }},
	wire.Field[PullListOptions]{Name: "direction", Value: func(o PullListOptions) wire.Value { return wire.OptionalToken(o.direction) }},
)

// Record returns the effective fields, defaults included, in wire order.
func (options PullListOptions) Record() wire.Record { return pullListSchema.Record(options) }

// Query returns the URL query string, without the leading "?".
func (options PullListOptions) Query() string {
	return pullListSchema.Query(options)
}

// MarshalCBOR implements cbor.Marshaler.
func (options PullListOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// PullListBuilder accumulates PullListOptions. Not safe for concurrent
// use.
type PullListBuilder struct {
	options PullListOptions
}

func NewPullListOptions() *PullListBuilder {
	return &PullListBuilder{}
}

func (builder *PullListBuilder) State(state State) *PullListBuilder {
	builder.options.state = wire.Some(state)
	return builder
}

// Head filters by "user:ref-name".
func (builder *PullListBuilder) Head(head string) *PullListBuilder {
	builder.options.head = wire.Some(head)
	return builder
}

func (builder *PullListBuilder) Base(base string) *PullListBuilder {
	builder.options.base = wire.Some(base)
	return builder
}

func (builder *PullListBuilder) Sort(sort PullSort) *PullListBuilder {
	builder.options.sort = wire.Some(sort)
	return builder
}

func (builder *PullListBuilder) Direction(direction SortDirection) *PullListBuilder {
	builder.options.direction = wire.Some(direction)
	return builder
}

// Build returns the accumulated options.
func (builder *PullListBuilder) Build() PullListOptions {
	return builder.options
}

// CreatePullRequest opens a new pull request.
func (client *Client) CreatePullRequest(ctx context.Context, owner, repo string, options PullOptions) (*PullRequest, error) {
	var pullRequest PullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	if err := client.post(ctx, path, options, &pullRequest); err != nil {
		return nil, fmt.Errorf("creating pull request in %s/%s: %w", owner, repo, err)
	}
	return &pullRequest, nil
}

// EditPullRequest updates the title, body or state of a pull request.
func (client *Client) EditPullRequest(ctx context.Context, owner, repo string, number int, options PullEditOptions) (*PullRequest, error) {
	var pullRequest PullRequest
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number)
	if err := client.patch(ctx, path, options, &pullRequest); err != nil {
		return nil, fmt.Errorf("updating pull request %s/%s#%d: %w", owner, repo, number, err)
	}
	return &pullRequest, nil
}

// ListPullRequests returns the first page of pull requests matching the
// filters.
func (client *Client) ListPullRequests(ctx context.Context, owner, repo string, options PullListOptions) ([]PullRequest, error) {
	pulls, err := list[PullRequest](ctx, client, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), options)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests in %s/%s: %w", owner, repo, err)
	}
	return pulls, nil
}
