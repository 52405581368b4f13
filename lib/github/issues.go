// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"time"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// IssueOptions is the body of a create-issue or edit-issue request.
type IssueOptions struct {
	title    string
	body     wire.Optional[string]
	assignee wire.Optional[string]
	labels   wire.Optional[[]string]
}

var issueSchema = wire.NewSchema("issue",
	wire.Field[IssueOptions]{Name: "title", Value: func(o IssueOptions) wire.Value { return wire.TextValue(o.title) }},
	wire.Field[IssueOptions]{Name: "body", Value: func(o IssueOptions) wire.Value { return wire.OptionalText(o.body) }},
	wire.Field[IssueOptions]{Name: "assignee", Value: func(o IssueOptions) wire.Value { return wire.OptionalText(o.assignee) }},
	wire.Field[IssueOptions]{Name: "labels", Value: func(o IssueOptions) wire.Value { return wire.OptionalList(o.labels) }},
)

func (options IssueOptions) Title() string { return options.title }

// Record returns the effective fields in wire order.
func (options IssueOptions) Record() wire.Record { return issueSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options IssueOptions) MarshalJSON() ([]byte, error) {
	return issueSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options IssueOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// IssueBuilder accumulates IssueOptions. Not safe for concurrent use.
type IssueBuilder struct {
	options IssueOptions
}

// NewIssueOptions starts an issue titled title.
func NewIssueOptions(title string) *IssueBuilder {
	return &IssueBuilder{options: IssueOptions{title: title}}
}

func (builder *IssueBuilder) Body(body string) *IssueBuilder {
	builder.options.body = wire.Some(body)
	return builder
}

func (builder *IssueBuilder) Assignee(login string) *IssueBuilder {
	builder.options.assignee = wire.Some(login)
	return builder
}

// Labels replaces the label set. On an edit, an empty list clears
// every label.
func (builder *IssueBuilder) Labels(labels ...string) *IssueBuilder {
	builder.options.labels = wire.Some(append([]string{}, labels...))
	return builder
}

// Build returns the accumulated options.
func (builder *IssueBuilder) Build() IssueOptions {
	options := builder.options
	options.labels = cloneList(options.labels)
	return options
}

// CommentOptions is the body of a create-comment request.
type CommentOptions struct {
	body string
}

var commentSchema = wire.NewSchema("comment",
	wire.Field[CommentOptions]{Name: "body", Value: func(o CommentOptions) wire.Value { return wire.TextValue(o.body) }},
)

func (options CommentOptions) Body() string { return options.body }

// Record returns the effective fields in wire order.
func (options CommentOptions) Record() wire.Record { return commentSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options CommentOptions) MarshalJSON() ([]byte, error) {
	return commentSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options CommentOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// CommentBuilder accumulates CommentOptions. Comments have no optional
// fields; the builder exists so every option value is built the same
// way.
type CommentBuilder struct {
	options CommentOptions
}

func NewCommentOptions(body string) *CommentBuilder {
	return &CommentBuilder{options: CommentOptions{body: body}}
}

// Build returns the accumulated options.
func (builder *CommentBuilder) Build() CommentOptions {
	return builder.options
}

// IssueListOptions filters the issue list endpoint. State, sort and
// direction are always sent; unset, they take the values open, created
// and asc.
type IssueListOptions struct {
	state     wire.Optional[State]
	sort      wire.Optional[IssueSort]
	direction wire.Optional[SortDirection]
	labels    wire.Optional[[]string]
	milestone wire.Optional[string]
	assignee  wire.Optional[string]
	creator   wire.Optional[string]
	mentioned wire.Optional[string]
	since     wire.Optional[time.Time]
}

var issueListSchema = wire.NewSchema("issue list",
	wire.Field[IssueListOptions]{
		Name:    "state",
		Value:   func(o IssueListOptions) wire.Value { return wire.OptionalToken(o.state) },
		Default: wire.TokenOf(StateOpen),
	},
	wire.Field[IssueListOptions]{
		Name:    "sort",
		Value:   func(o IssueListOptions) wire.Value { return wire.OptionalToken(o.sort) },
		Default: wire.TokenOf(IssueSortCreated),
	},
	wire.Field[IssueListOptions]{
		Name:    "direction",
		Value:   func(o IssueListOptions) wire.Value { return wire.OptionalToken(o.direction) },
		Default: wire.TokenOf(SortAscending),
	},
	wire.Field[IssueListOptions]{Name: "labels", Value: func(o IssueListOptions) wire.Value { return wire.OptionalList(o.labels) }},
	wire.Field[IssueListOptions]{Name: "milestone", Value: func(o IssueListOptions) wire.Value { return wire.OptionalText(o.milestone) }},
	wire.Field[IssueListOptions]{Name: "assignee", Value: func(o IssueListOptions) wire.Value { return wire.OptionalText(o.assignee) }},
	wire.Field[IssueListOptions]{Name: "creator", Value: func(o IssueListOptions) wire.Value { return wire.OptionalText(o.creator) }},
	wire.Field[IssueListOptions]{Name: "mentioned", Value: func(o IssueListOptions) wire.Value { return wire.OptionalText(o.mentioned) }},
	wire.Field[IssueListOptions]{Name: "since", Value: func(o IssueListOptions) wire.Value {
		if since, ok := o.since.Get(); ok {
			return wire.TextValue(since.UTC().Format(time.RFC3339))
		}
		return wire.Value{}
	}},
)

// Record returns the effective fields, defaults included, in wire order.
func (options IssueListOptions) Record() wire.Record { return issueListSchema.Record(options) }

// Query returns the URL query string, without the leading "?".
func (options IssueListOptions) Query() string {
	return issueListSchema.Query(options)
}

// MarshalCBOR implements cbor.Marshaler.
func (options IssueListOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// IssueListBuilder accumulates IssueListOptions. Not safe for
// concurrent use.
type IssueListBuilder struct {
	options IssueListOptions
}

// NewIssueListOptions starts a listing of open issues, oldest first.
func NewIssueListOptions() *IssueListBuilder {
	return &IssueListBuilder{}
}

func (builder *IssueListBuilder) State(state State) *IssueListBuilder {
	builder.options.state = wire.Some(state)
	return builder
}

func (builder *IssueListBuilder) Sort(sort IssueSort) *IssueListBuilder {
	builder.options.sort = wire.Some(sort)
	return builder
}

func (builder *IssueListBuilder) Direction(direction SortDirection) *IssueListBuilder {
	builder.options.direction = wire.Some(direction)
	return builder
}

// Labels keeps issues carrying every one of labels. The names are sent
// as one comma-separated value.
func (builder *IssueListBuilder) Labels(labels ...string) *IssueListBuilder {
	builder.options.labels = wire.Some(append([]string{}, labels...))
	return builder
}

// Milestone is a milestone number, "*" for any or "none".
func (builder *IssueListBuilder) Milestone(milestone string) *IssueListBuilder {
	builder.options.milestone = wire.Some(milestone)
	return builder
}

// Assignee is a login, "*" for any or "none".
func (builder *IssueListBuilder) Assignee(assignee string) *IssueListBuilder {
	builder.options.assignee = wire.Some(assignee)
	return builder
}

func (builder *IssueListBuilder) Creator(creator string) *IssueListBuilder {
	builder.options.creator = wire.Some(creator)
	return builder
}

func (builder *IssueListBuilder) Mentioned(mentioned string) *IssueListBuilder {
	builder.options.mentioned = wire.Some(mentioned)
	return builder
}

// Since keeps issues updated at or after since. It is sent in UTC.
func (builder *IssueListBuilder) Since(since time.Time) *IssueListBuilder {
	builder.options.since = wire.Some(since)
	return builder
}

// Build returns the accumulated options.
func (builder *IssueListBuilder) Build() IssueListOptions {
	options := builder.options
	options.labels = cloneList(options.labels)
	return options
}

// CreateIssue creates a new issue in a repository.
func (client *Client) CreateIssue(ctx context.Context, owner, repo string, options IssueOptions) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, repo)
	if err := client.post(ctx, path, options, &issue); err != nil {
		return nil, fmt.Errorf("creating issue in %s/%s: %w", owner, repo, err)
	}
	return &issue, nil
}

// EditIssue updates an existing issue.
func (client *Client) EditIssue(ctx context.Context, owner, repo string, number int, options IssueOptions) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number)
	if err := client.patch(ctx, path, options, &issue); err != nil {
		return nil, fmt.Errorf("updating issue %s/%s#%d: %w", owner, repo, number, err)
	}
	return &issue, nil
}

// ListIssues returns the first page of issues matching the filters.
// GitHub includes pull requests in this listing.
func (client *Client) ListIssues(ctx context.Context, owner, repo string, options IssueListOptions) ([]Issue, error) {
	issues, err := list[Issue](ctx, client, fmt.Sprintf("/repos/%s/%s/issues", owner, repo), options)
	if err != nil {
		return nil, fmt.Errorf("listing issues in %s/%s: %w", owner, repo, err)
	}
	return issues, nil
}

// CreateIssueComment creates a comment on an issue or pull request.
func (client *Client) CreateIssueComment(ctx context.Context, owner, repo string, number int, options CommentOptions) (*Comment, error) {
	var comment Comment
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, number)
	if err := client.post(ctx, path, options, &comment); err != nil {
		return nil, fmt.Errorf("creating comment on %s/%s#%d: %w", owner, repo, number, err)
	}
	return &comment, nil
}
