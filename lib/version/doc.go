// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for ghopts
// binaries.
//
// [GitCommit], [GitDirty], [BuildTime] and [Version] are injected at
// build time via -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/ghopts/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit is not injected, [Current] falls back to the VCS
// stamp in the binary's embedded build info.
//
// [Info] formats "0.1.0-dev (abc1234, 2026-02-10T...)" for --version
// output. [Full] adds the Go version and platform, and [Short] returns
// just the version number.
package version
