// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the ghopts binary:
// a tree of [Command] values with pflag flag sets, structured help,
// typo suggestions for unknown commands and flags, and the shared
// output helpers (logger, JSON writer, exit codes).
package cli
