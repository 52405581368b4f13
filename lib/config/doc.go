// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for ghopts.
//
// Configuration is loaded from a single file specified by either the
// GHOPTS_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches, so one file can point at github.com
// in development and a GitHub Enterprise host in production.
//
// The access token is never stored in the file itself; api.token_file
// names the file that holds it, and ${HOME} and ${VAR:-default}
// patterns are expanded in that path. No other environment variables
// override config values.
//
// Key exports:
//
//   - [Config] -- master struct with API and Defaults
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other ghopts packages.
package config
