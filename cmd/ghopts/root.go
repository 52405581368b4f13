// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ghopts/cmd/ghopts/cli"
	"github.com/bureau-foundation/ghopts/lib/codec"
	"github.com/bureau-foundation/ghopts/lib/config"
	"github.com/bureau-foundation/ghopts/lib/github"
	"github.com/bureau-foundation/ghopts/lib/version"
)

// app holds what the command tree writes to and sends through.
type app struct {
	stdout io.Writer

	// httpClient overrides the client built from the configured timeout.
	httpClient *http.Client

	// logger overrides the stderr command logger.
	logger *slog.Logger
}

func (a *app) root() *cli.Command {
	root := &cli.Command{
		Name:    "ghopts",
		Summary: "Encode GitHub REST option values",
		Description: `Build a GitHub REST request body or list query from flags and an
optional JSONC --input document, and print its wire form. With --send,
the request is made against the configured API and the response is
printed as JSON.`,
	}
	for _, k := range kinds() {
		root.Subcommands = append(root.Subcommands, a.kindCommand(k))
	}
	root.Subcommands = append(root.Subcommands, a.versionCommand())
	return root
}

func (a *app) kindCommand(k kind) *cli.Command {
	return &cli.Command{
		Name:        k.name,
		Summary:     k.summary,
		Description: k.description,
		Usage:       k.usage,
		Examples:    k.examples,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet(k.name, pflag.ContinueOnError)
			k.define(flags)
			flags.String("input", "", "JSONC document of option fields")
			flags.Bool("cbor", false, "print the CBOR diagnostic form instead of JSON")
			flags.Bool("send", false, "make the API request and print the response")
			flags.String("config", "", "config file (default $"+config.EnvVar+")")
			flags.String("repo", "", "OWNER/NAME (default from config)")
			flags.BoolP("verbose", "v", false, "log API requests")
			if k.list {
				flags.Bool("fail-empty", false, "exit 1 when the listing is empty")
			}
			return flags
		},
		Run: func(ctx context.Context, flags *pflag.FlagSet, args []string) error {
			return a.runKind(ctx, k, flags, args)
		},
	}
}

func (a *app) runKind(ctx context.Context, k kind, flags *pflag.FlagSet, args []string) error {
	inputPath, _ := flags.GetString("input")
	useCBOR, _ := flags.GetBool("cbor")
	sending, _ := flags.GetBool("send")
	if useCBOR && sending {
		return errors.New("--cbor and --send are mutually exclusive")
	}

	if !k.variadic && len(args) > k.positional {
		return fmt.Errorf("unexpected argument: %s", args[k.positional])
	}

	input, err := loadInput(inputPath)
	if err != nil {
		return err
	}
	built, err := k.build(&params{flags: flags, args: args, input: input, sending: sending})
	if err != nil {
		return fmt.Errorf("%s: %w", k.name, err)
	}

	if !sending {
		return a.print(built, useCBOR)
	}

	result, err := a.send(ctx, built, flags)
	if err != nil {
		return err
	}
	if err := cli.WriteJSON(a.stdout, result); err != nil {
		return err
	}
	if failEmpty, _ := flags.GetBool("fail-empty"); failEmpty && isEmpty(result) {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func (a *app) print(built *request, useCBOR bool) error {
	if !useCBOR {
		_, err := fmt.Fprintf(a.stdout, "%s\n", built.encoded)
		return err
	}
	data, err := built.marshalCBOR()
	if err != nil {
		return fmt.Errorf("encoding CBOR: %w", err)
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("diagnosing CBOR: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, diagnostic)
	return err
}

func (a *app) send(ctx context.Context, built *request, flags *pflag.FlagSet) (any, error) {
	configPath, _ := flags.GetString("config")
	repoFlag, _ := flags.GetString("repo")
	verbose, _ := flags.GetBool("verbose")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var repo repository
	if !built.global {
		repo, err = resolveRepository(repoFlag, cfg)
		if err != nil {
			return nil, err
		}
	}

	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	httpClient := a.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := a.logger
	if logger == nil {
		logger = cli.NewCommandLogger(verbose)
	}

	client, err := github.NewClient(github.Config{
		BaseURL:    cfg.API.BaseURL,
		Token:      token,
		UserAgent:  cfg.API.UserAgent + "/" + version.Short(),
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("sending request", "repository", repo.String(), "environment", cfg.Environment)
	return built.send(ctx, client, repo)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// resolveRepository prefers --repo over the configured defaults.
func resolveRepository(flag string, cfg *config.Config) (repository, error) {
	if flag != "" {
		return parseRepository(flag)
	}
	if cfg.Defaults.Owner == "" {
		return repository{}, errors.New("no repository: pass --repo OWNER/NAME or set defaults in the config")
	}
	return repository{owner: cfg.Defaults.Owner, name: cfg.Defaults.Repo}, nil
}

// isEmpty reports whether a listing result has no elements.
func isEmpty(result any) bool {
	value := reflect.ValueOf(result)
	return value.Kind() == reflect.Slice && value.Len() == 0
}

func (a *app) versionCommand() *cli.Command {
	var jsonOutput bool
	return &cli.Command{
		Name:    "version",
		Summary: "Print build information",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flags.BoolVar(&jsonOutput, "json", false, "print as JSON")
			return flags
		},
		Run: func(_ context.Context, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if jsonOutput {
				return cli.WriteJSON(a.stdout, version.Current())
			}
			_, err := fmt.Fprintln(a.stdout, version.Full())
			return err
		},
	}
}
