// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for ghopts packages.
//
// [RecordingServer] is an HTTPS server that answers every request with
// a canned response and remembers the last request it saw. Pair it
// with the server's own Client so the client trusts its certificate:
//
//	server, last := testutil.RecordingServer(t, http.StatusCreated, `{"id":1}`)
//	client, _ := github.NewClient(github.Config{
//		BaseURL:    server.URL,
//		Token:      "test-token",
//		HTTPClient: server.Client(),
//	})
//	... make a call ...
//	if got := last().Body; got != want { ... }
//
// [WriteFile] puts a file in the test's temporary directory.
package testutil
