// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ghopts/cmd/ghopts/cli"
	"github.com/bureau-foundation/ghopts/lib/github"
)

// kind is one option type exposed as a subcommand.
type kind struct {
	name        string
	summary     string
	description string
	usage       string
	examples    []cli.Example

	// list kinds accept --fail-empty.
	list bool

	// positional is how many positional arguments the kind takes.
	// variadic kinds take any number.
	positional int
	variadic   bool

	// define registers the kind's own flags.
	define func(*pflag.FlagSet)

	build func(*params) (*request, error)
}

func kinds() []kind {
	return []kind{
		deploymentKind(),
		deploymentStatusKind(),
		deploymentListKind(),
		statusKind(),
		issueKind(),
		commentKind(),
		issueListKind(),
		pullKind(),
		pullEditKind(),
		pullListKind(),
		labelKind(),
		releaseKind(),
		gistKind(),
	}
}

func deploymentKind() kind {
	return kind{
		name:       "deployment",
		summary:    "Create-deployment body",
		usage:      "ghopts deployment REF [flags]",
		positional: 1,
		examples: []cli.Example{
			{Description: "Encode a deployment of main", Command: "ghopts deployment main --task deploy:migrations"},
			{Description: "Deploy without waiting for status checks", Command: "ghopts deployment v1.2.0 --required-contexts= --send"},
		},
		define: func(flags *pflag.FlagSet) {
			flags.String("task", "", "deployment task, e.g. deploy:migrations")
			flags.Bool("auto-merge", false, "merge the default branch into ref first")
			flags.StringSlice("required-contexts", nil, "status contexts that must pass (empty to skip checks)")
			flags.String("environment", "", "target environment")
			flags.String("description", "", "short description")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewDeploymentOptions(p.required("ref", 0))
			setText(p, "task", builder.Task)
			setBool(p, "auto-merge", builder.AutoMerge)
			setList(p, "required-contexts", builder.RequiredContexts)
			setText(p, "environment", builder.Environment)
			setText(p, "description", builder.Description)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateDeployment(ctx, repo.owner, repo.name, options)
			})
		},
	}
}

func deploymentStatusKind() kind {
	return kind{
		name:       "deployment-status",
		summary:    "Create-deployment-status body",
		usage:      "ghopts deployment-status STATE [flags]",
		positional: 1,
		description: `Encode a deployment status. STATE is one of pending, success, error
or failure. --deployment-id is required with --send.`,
		define: func(flags *pflag.FlagSet) {
			flags.String("target-url", "", "link to logs or dashboard")
			flags.String("description", "", "short description")
			flags.Int64("deployment-id", 0, "deployment to attach the status to")
		},
		build: func(p *params) (*request, error) {
			state := parseRequired(p, "state", 0, github.ParseStatusState)
			builder := github.NewDeploymentStatusOptions(state)
			setText(p, "target-url", builder.TargetURL)
			setText(p, "description", builder.Description)
			deploymentID := p.sendInteger("deployment-id")
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateDeploymentStatus(ctx, repo.owner, repo.name, deploymentID, options)
			})
		},
	}
}

func deploymentListKind() kind {
	return kind{
		name:    "deployment-list",
		summary: "Deployment list query",
		usage:   "ghopts deployment-list [flags]",
		list:    true,
		define: func(flags *pflag.FlagSet) {
			flags.String("sha", "", "filter by commit SHA")
			flags.String("ref", "", "filter by branch, tag or SHA")
			flags.String("task", "", "filter by task")
			flags.String("environment", "", "filter by environment")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewDeploymentListOptions()
			setText(p, "sha", builder.SHA)
			setText(p, "ref", builder.Ref)
			setText(p, "task", builder.Task)
			setText(p, "environment", builder.Environment)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return queryRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.ListDeployments(ctx, repo.owner, repo.name, options)
			}), nil
		},
	}
}

func statusKind() kind {
	return kind{
		name:       "status",
		summary:    "Create-commit-status body",
		usage:      "ghopts status STATE [flags]",
		positional: 1,
		description: `Encode a commit status. STATE is one of pending, success, error or
failure. --sha is required with --send.`,
		examples: []cli.Example{
			{Command: "ghopts status failure --target-url http://acme.com --description desc"},
		},
		define: func(flags *pflag.FlagSet) {
			flags.String("target-url", "", "details link")
			flags.String("description", "", "short description")
			flags.String("context", "", "status context, e.g. ci/build")
			flags.String("sha", "", "commit to attach the status to")
		},
		build: func(p *params) (*request, error) {
			state := parseRequired(p, "state", 0, github.ParseStatusState)
			builder := github.NewStatusOptions(state)
			setText(p, "target-url", builder.TargetURL)
			setText(p, "description", builder.Description)
			setText(p, "context", builder.Context)
			sha := p.sendText("sha")
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateCommitStatus(ctx, repo.owner, repo.name, sha, options)
			})
		},
	}
}

func issueKind() kind {
	return kind{
		name:       "issue",
		summary:    "Create- or edit-issue body",
		usage:      "ghopts issue TITLE [flags]",
		positional: 1,
		description: `Encode an issue. With --send, creates the issue, or edits issue
--number when it is given.`,
		define: func(flags *pflag.FlagSet) {
			flags.String("body", "", "issue body")
			flags.String("assignee", "", "login to assign")
			flags.StringSlice("labels", nil, "labels (replaces the set on edit)")
			flags.Int64("number", 0, "issue to edit instead of creating one")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewIssueOptions(p.required("title", 0))
			setText(p, "body", builder.Body)
			setText(p, "assignee", builder.Assignee)
			setList(p, "labels", builder.Labels)
			number, editing := p.integer("number")
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				if editing {
					return client.EditIssue(ctx, repo.owner, repo.name, int(number), options)
				}
				return client.CreateIssue(ctx, repo.owner, repo.name, options)
			})
		},
	}
}

func commentKind() kind {
	return kind{
		name:       "comment",
		summary:    "Issue comment body",
		usage:      "ghopts comment BODY [flags]",
		positional: 1,
		define: func(flags *pflag.FlagSet) {
			flags.Int64("number", 0, "issue or pull request to comment on")
		},
		build: func(p *params) (*request, error) {
			options := github.NewCommentOptions(p.required("body", 0)).Build()
			number := p.sendInteger("number")
			if p.err != nil {
				return nil, p.err
			}
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateIssueComment(ctx, repo.owner, repo.name, int(number), options)
			})
		},
	}
}

func issueListKind() kind {
	return kind{
		name:    "issue-list",
		summary: "Issue list query",
		usage:   "ghopts issue-list [flags]",
		description: `Encode an issue listing query. state, sort and direction are always
present and default to open, created and asc.`,
		examples: []cli.Example{
			{Description: "Open issues labelled foo and bar", Command: "ghopts issue-list --labels foo,bar"},
		},
		list: true,
		define: func(flags *pflag.FlagSet) {
			flags.String("state", "", "open, closed or all")
			flags.String("sort", "", "created, updated or comments")
			flags.String("direction", "", "asc or desc")
			flags.StringSlice("labels", nil, "issues carrying all of these labels")
			flags.String("milestone", "", "milestone number, * or none")
			flags.String("assignee", "", "login, * or none")
			flags.String("creator", "", "issue author")
			flags.String("mentioned", "", "mentioned login")
			flags.String("since", "", "updated at or after this RFC 3339 time")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewIssueListOptions()
			setEnum(p, "state", github.ParseState, builder.State)
			setEnum(p, "sort", github.ParseIssueSort, builder.Sort)
			setEnum(p, "direction", github.ParseSortDirection, builder.Direction)
			setList(p, "labels", builder.Labels)
			setText(p, "milestone", builder.Milestone)
			setText(p, "assignee", builder.Assignee)
			setText(p, "creator", builder.Creator)
			setText(p, "mentioned", builder.Mentioned)
			if since, ok := p.timestamp("since"); ok {
				builder.Since(since)
			}
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return queryRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.ListIssues(ctx, repo.owner, repo.name, options)
			}), nil
		},
	}
}

func pullKind() kind {
	return kind{
		name:       "pull",
		summary:    "Create-pull-request body",
		usage:      "ghopts pull TITLE HEAD BASE [flags]",
		positional: 3,
		define: func(flags *pflag.FlagSet) {
			flags.String("body", "", "pull request description")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewPullOptions(p.required("title", 0), p.required("head", 1), p.required("base", 2))
			setText(p, "body", builder.Body)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreatePullRequest(ctx, repo.owner, repo.name, options)
			})
		},
	}
}

func pullEditKind() kind {
	return kind{
		name:    "pull-edit",
		summary: "Edit-pull-request body",
		usage:   "ghopts pull-edit [flags]",
		examples: []cli.Example{
			{Description: "Close pull request 7", Command: "ghopts pull-edit --state closed --number 7 --send"},
		},
		define: func(flags *pflag.FlagSet) {
			flags.String("title", "", "new title")
			flags.String("body", "", "new description")
			flags.String("state", "", "open or closed")
			flags.Int64("number", 0, "pull request to edit")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewPullEditOptions()
			setText(p, "title", builder.Title)
			setText(p, "body", builder.Body)
			setEnum(p, "state", github.ParseState, builder.State)
			number := p.sendInteger("number")
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.EditPullRequest(ctx, repo.owner, repo.name, int(number), options)
			})
		},
	}
}

func pullListKind() kind {
	return kind{
		name:    "pull-list",
		summary: "Pull request list query",
		usage:   "ghopts pull-list [flags]",
		list:    true,
		define: func(flags *pflag.FlagSet) {
			flags.String("state", "", "open, closed or all (default open)")
			flags.String("head", "", "filter by user:ref-name")
			flags.String("base", "", "filter by base branch")
			flags.String("sort", "", "created, updated, popularity or long-running")
			flags.String("direction", "", "asc or desc")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewPullListOptions()
			setEnum(p, "state", github.ParseState, builder.State)
			setText(p, "head", builder.Head)
			setText(p, "base", builder.Base)
			setEnum(p, "sort", github.ParsePullSort, builder.Sort)
			setEnum(p, "direction", github.ParseSortDirection, builder.Direction)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return queryRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.ListPullRequests(ctx, repo.owner, repo.name, options)
			}), nil
		},
	}
}

func labelKind() kind {
	return kind{
		name:       "label",
		summary:    "Create-label body",
		usage:      "ghopts label NAME COLOR [flags]",
		positional: 2,
		define: func(flags *pflag.FlagSet) {
			flags.String("description", "", "label description")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewLabelOptions(p.required("name", 0), p.required("color", 1))
			setText(p, "description", builder.Description)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateLabel(ctx, repo.owner, repo.name, options)
			})
		},
	}
}

func releaseKind() kind {
	return kind{
		name:       "release",
		summary:    "Create-release body",
		usage:      "ghopts release TAG [flags]",
		positional: 1,
		define: func(flags *pflag.FlagSet) {
			flags.String("target-commitish", "", "branch or SHA to tag")
			flags.String("name", "", "release title")
			flags.String("body", "", "release notes")
			flags.Bool("draft", false, "create an unpublished draft")
			flags.Bool("prerelease", false, "mark as a prerelease")
		},
		build: func(p *params) (*request, error) {
			builder := github.NewReleaseOptions(p.required("tag-name", 0))
			setText(p, "target-commitish", builder.TargetCommitish)
			setText(p, "name", builder.Name)
			setText(p, "body", builder.Body)
			setBool(p, "draft", builder.Draft)
			setBool(p, "prerelease", builder.Prerelease)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			return bodyRequest(options, func(ctx context.Context, client *github.Client, repo repository) (any, error) {
				return client.CreateRelease(ctx, repo.owner, repo.name, options)
			})
		},
	}
}

func gistKind() kind {
	return kind{
		name:     "gist",
		summary:  "Create-gist body",
		usage:    "ghopts gist [FILE...] [flags]",
		variadic: true,
		description: `Encode a gist. Each FILE is read from disk and stored under its base
name. An --input document may also carry "files": {"name": "content"}.`,
		examples: []cli.Example{
			{Description: "Share two files publicly", Command: "ghopts gist --public main.go go.mod --send"},
		},
		define: func(flags *pflag.FlagSet) {
			flags.String("description", "", "gist description")
			flags.Bool("public", false, "make the gist public")
		},
		build: func(p *params) (*request, error) {
			files, err := gistFiles(p)
			if err != nil {
				return nil, err
			}
			if len(files) == 0 {
				return nil, errors.New("files is required")
			}
			public, _ := p.boolean("public")
			builder := github.NewGistOptions(public, files)
			setText(p, "description", builder.Description)
			if p.err != nil {
				return nil, p.err
			}
			options := builder.Build()
			built, err := bodyRequest(options, func(ctx context.Context, client *github.Client, _ repository) (any, error) {
				return client.CreateGist(ctx, options)
			})
			if err != nil {
				return nil, err
			}
			built.global = true
			return built, nil
		},
	}
}

// gistFiles merges the input document's files with the files named on
// the command line. Command-line files win on a name clash.
func gistFiles(p *params) (map[string]string, error) {
	files := make(map[string]string)
	if raw, ok := p.inputValue("files"); ok {
		document, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("input field \"files\" must be an object, got %s", jsonType(raw))
		}
		for name, content := range document {
			text, ok := content.(string)
			if !ok {
				return nil, fmt.Errorf("input field \"files\".%q must be a string, got %s", name, jsonType(content))
			}
			files[name] = text
		}
	}
	for _, path := range p.args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading gist file: %w", err)
		}
		files[filepath.Base(path)] = string(data)
	}
	return files, nil
}

// parseRequired resolves a mandatory enumeration field.
func parseRequired[E any](p *params, name string, position int, parse func(string) (E, error)) E {
	var zero E
	text := p.required(name, position)
	if p.err != nil {
		return zero
	}
	value, err := parse(text)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", name, err))
		return zero
	}
	return value
}
