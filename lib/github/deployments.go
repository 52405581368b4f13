// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/ghopts/lib/wire"
)

// DeploymentOptions is the body of a create-deployment request.
type DeploymentOptions struct {
	ref              string
	task             wire.Optional[string]
	autoMerge        wire.Optional[bool]
	requiredContexts wire.Optional[[]string]
	environment      wire.Optional[string]
	description      wire.Optional[string]
}

var deploymentSchema = wire.NewSchema("deployment",
	wire.Field[DeploymentOptions]{Name: "ref", Value: func(o DeploymentOptions) wire.Value { return wire.TextValue(o.ref) }},
	wire.Field[DeploymentOptions]{Name: "task", Value: func(o DeploymentOptions) wire.Value { return wire.OptionalText(o.task) }},
	wire.Field[DeploymentOptions]{Name: "auto_merge", Value: func(o DeploymentOptions) wire.Value { return wire.OptionalBool(o.autoMerge) }},
	wire.Field[DeploymentOptions]{Name: "required_contexts", Value: func(o DeploymentOptions) wire.Value { return wire.OptionalList(o.requiredContexts) }},
	wire.Field[DeploymentOptions]{Name: "environment", Value: func(o DeploymentOptions) wire.Value { return wire.OptionalText(o.environment) }},
	wire.Field[DeploymentOptions]{Name: "description", Value: func(o DeploymentOptions) wire.Value { return wire.OptionalText(o.description) }},
)

// Ref returns the branch, tag or SHA to deploy.
func (options DeploymentOptions) Ref() string { return options.ref }

// Record returns the effective fields in wire order.
func (options DeploymentOptions) Record() wire.Record { return deploymentSchema.Record(options) }

// MarshalJSON implements json.Marshaler.
func (options DeploymentOptions) MarshalJSON() ([]byte, error) {
	return deploymentSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options DeploymentOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// DeploymentBuilder accumulates DeploymentOptions. Not safe for
// concurrent use.
type DeploymentBuilder struct {
	options DeploymentOptions
}

// NewDeploymentOptions starts a deployment of ref.
func NewDeploymentOptions(ref string) *DeploymentBuilder {
	return &DeploymentBuilder{options: DeploymentOptions{ref: ref}}
}

// Task names the deployment task, e.g. "deploy:migrations".
func (builder *DeploymentBuilder) Task(task string) *DeploymentBuilder {
	builder.options.task = wire.Some(task)
	return builder
}

// AutoMerge controls whether GitHub merges the default branch into ref
// before deploying.
func (builder *DeploymentBuilder) AutoMerge(autoMerge bool) *DeploymentBuilder {
	builder.options.autoMerge = wire.Some(autoMerge)
	return builder
}

// RequiredContexts lists the status contexts that must pass. An empty
// list is sent as [] and bypasses the check.
func (builder *DeploymentBuilder) RequiredContexts(contexts ...string) *DeploymentBuilder {
	builder.options.requiredContexts = wire.Some(append([]string{}, contexts...))
	return builder
}

func (builder *DeploymentBuilder) Environment(environment string) *DeploymentBuilder {
	builder.options.environment = wire.Some(environment)
	return builder
}

func (builder *DeploymentBuilder) Description(description string) *DeploymentBuilder {
	builder.options.description = wire.Some(description)
	return builder
}

// Build returns the accumulated options.
func (builder *DeploymentBuilder) Build() DeploymentOptions {
	options := builder.options
	options.requiredContexts = cloneList(options.requiredContexts)
	return options
}

// DeploymentStatusOptions is the body of a create-deployment-status
// request.
type DeploymentStatusOptions struct {
	state       StatusState
	targetURL   wire.Optional[string]
	description wire.Optional[string]
}

var deploymentStatusSchema = wire.NewSchema("deployment status",
	wire.Field[DeploymentStatusOptions]{Name: "state", Value: func(o DeploymentStatusOptions) wire.Value { return wire.TokenOf(o.state) }},
	wire.Field[DeploymentStatusOptions]{Name: "target_url", Value: func(o DeploymentStatusOptions) wire.Value { return wire.OptionalText(o.targetURL) }},
	wire.Field[DeploymentStatusOptions]{Name: "description", Value: func(o DeploymentStatusOptions) wire.Value { return wire.OptionalText(o.description) }},
)

func (options DeploymentStatusOptions) State() StatusState { return options.state }

// Record returns the effective fields in wire order.
func (options DeploymentStatusOptions) Record() wire.Record {
	return deploymentStatusSchema.Record(options)
}

// MarshalJSON implements json.Marshaler.
func (options DeploymentStatusOptions) MarshalJSON() ([]byte, error) {
	return deploymentStatusSchema.JSON(options), nil
}

// MarshalCBOR implements cbor.Marshaler.
func (options DeploymentStatusOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// DeploymentStatusBuilder accumulates DeploymentStatusOptions. Not safe
// for concurrent use.
type DeploymentStatusBuilder struct {
	options DeploymentStatusOptions
}

// NewDeploymentStatusOptions starts a deployment status in state.
func NewDeploymentStatusOptions(state StatusState) *DeploymentStatusBuilder {
	return &DeploymentStatusBuilder{options: DeploymentStatusOptions{state: state}}
}

// TargetURL links the status to a log or dashboard.
func (builder *DeploymentStatusBuilder) TargetURL(targetURL string) *DeploymentStatusBuilder {
	builder.options.targetURL = wire.Some(targetURL)
	return builder
}

func (builder *DeploymentStatusBuilder) Description(description string) *DeploymentStatusBuilder {
	builder.options.description = wire.Some(description)
	return builder
}

// Build returns the accumulated options.
func (builder *DeploymentStatusBuilder) Build() DeploymentStatusOptions {
	return builder.options
}

// DeploymentListOptions filters the deployment list endpoint. None of
// its filters has a default.
type DeploymentListOptions struct {
	sha         wire.Optional[string]
	ref         wire.Optional[string]
	task        wire.Optional[string]
	environment wire.Optional[string]
}

var deploymentListSchema = wire.NewSchema("deployment list",
	wire.Field[DeploymentListOptions]{Name: "sha", Value: func(o DeploymentListOptions) wire.Value { return wire.OptionalText(o.sha) }},
	wire.Field[DeploymentListOptions]{Name: "ref", Value: func(o DeploymentListOptions) wire.Value { return wire.OptionalText(o.ref) }},
	wire.Field[DeploymentListOptions]{Name: "task", Value: func(o DeploymentListOptions) wire.Value { return wire.OptionalText(o.task) }},
	wire.Field[DeploymentListOptions]{Name: "environment", Value: func(o DeploymentListOptions) wire.Value { return wire.OptionalText(o.environment) }},
)

// Record returns the effective fields in wire order.
func (options DeploymentListOptions) Record() wire.Record {
	return deploymentListSchema.Record(options)
}

// Query returns the URL query string, without the leading "?".
func (options DeploymentListOptions) Query() string {
	return deploymentListSchema.Query(options)
}

// MarshalCBOR implements cbor.Marshaler.
func (options DeploymentListOptions) MarshalCBOR() ([]byte, error) {
	return marshalRecordCBOR(options.Record())
}

// DeploymentListBuilder accumulates DeploymentListOptions. Not safe for
// concurrent use.
type DeploymentListBuilder struct {
	options DeploymentListOptions
}

// NewDeploymentListOptions starts an unfiltered deployment listing.
func NewDeploymentListOptions() *DeploymentListBuilder {
	return &DeploymentListBuilder{}
}

func (builder *DeploymentListBuilder) SHA(sha string) *DeploymentListBuilder {
	builder.options.sha = wire.Some(sha)
	return builder
}

func (builder *DeploymentListBuilder) Ref(ref string) *DeploymentListBuilder {
	builder.options.ref = wire.Some(ref)
	return builder
}

func (builder *DeploymentListBuilder) Task(task string) *DeploymentListBuilder {
	builder.options.task = wire.Some(task)
	return builder
}

func (builder *DeploymentListBuilder) Environment(environment string) *DeploymentListBuilder {
	builder.options.environment = wire.Some(environment)
	return builder
}

// Build returns the accumulated options.
func (builder *DeploymentListBuilder) Build() DeploymentListOptions {
	return builder.options
}

// CreateDeployment creates a deployment in a repository.
func (client *Client) CreateDeployment(ctx context.Context, owner, repo string, options DeploymentOptions) (*Deployment, error) {
	var deployment Deployment
	path := fmt.Sprintf("/repos/%s/%s/deployments", owner, repo)
	if err := client.post(ctx, path, options, &deployment); err != nil {
		return nil, fmt.Errorf("creating deployment of %s in %s/%s: %w", options.ref, owner, repo, err)
	}
	return &deployment, nil
}

// ListDeployments returns the first page of deployments matching the
// filters.
func (client *Client) ListDeployments(ctx context.Context, owner, repo string, options DeploymentListOptions) ([]Deployment, error) {
	deployments, err := list[Deployment](ctx, client, fmt.Sprintf("/repos/%s/%s/deployments", owner, repo), options)
	if err != nil {
		return nil, fmt.Errorf("listing deployments in %s/%s: %w", owner, repo, err)
	}
	return deployments, nil
}

// CreateDeploymentStatus records a status on an existing deployment.
func (client *Client) CreateDeploymentStatus(ctx context.Context, owner, repo string, deploymentID int64, options DeploymentStatusOptions) (*DeploymentStatus, error) {
	var status DeploymentStatus
	path := fmt.Sprintf("/repos/%s/%s/deployments/%d/statuses", owner, repo, deploymentID)
	if err := client.post(ctx, path, options, &status); err != nil {
		return nil, fmt.Errorf("creating status on deployment %d in %s/%s: %w", deploymentID, owner, repo, err)
	}
	return &status, nil
}
