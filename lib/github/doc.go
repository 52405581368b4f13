// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package github builds the request bodies and query strings of the
// GitHub REST API and sends them.
//
// Every request is an immutable option value (DeploymentOptions,
// IssueListOptions, GistOptions, ...) produced by a builder. The
// builder constructor takes the fields the endpoint requires, setters
// fill optional fields, and Build snapshots the result:
//
//	options := github.NewDeploymentStatusOptions(github.StatusPending).
//		TargetURL("https://ci.example.com/run/42").
//		Build()
//	body, _ := options.MarshalJSON()
//	// {"state":"pending","target_url":"https://ci.example.com/run/42"}
//
// Unset optional fields never appear on the wire, not even as null.
// Key order is fixed per option type. List endpoints encode to a query
// string in which state, sort and direction fall back to the API's
// defaults when unset.
//
// The enumerations (StatusState, State, SortDirection, IssueSort,
// PullSort) encode as their lowercase wire tokens. Decoding a response
// that carries an unknown token fails with *enum.ParseError rather than
// falling back to a default.
//
// Client is a thin HTTPS transport: it sends the encoded bytes
// unchanged and maps non-2xx responses to *APIError. It does not retry,
// paginate or track rate limits.
package github
