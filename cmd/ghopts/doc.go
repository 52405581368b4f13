// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Ghopts builds GitHub REST option values and prints their wire form.
//
// Each subcommand is one option kind. Fields come from flags, from a
// JSONC --input document (keys use underscores: --target-url reads
// "target_url"), or from positional arguments for the kind's required
// fields. A flag given on the command line overrides the document; a
// field set by neither is absent from the output.
//
//	ghopts deployment main --task deploy:migrations
//	{"ref":"main","task":"deploy:migrations"}
//
//	ghopts issue-list --labels foo,bar
//	state=open&sort=created&direction=asc&labels=foo%2Cbar
//
// --cbor prints the CBOR diagnostic form instead. --send makes the API
// call using the configuration named by --config or $GHOPTS_CONFIG and
// prints the decoded response as JSON.
package main
