// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureau-foundation/ghopts/lib/github"
)

// repository is an owner/name pair.
type repository struct {
	owner string
	name  string
}

func (r repository) String() string { return r.owner + "/" + r.name }

func parseRepository(text string) (repository, error) {
	owner, name, ok := strings.Cut(text, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return repository{}, fmt.Errorf("invalid repository %q: want OWNER/NAME", text)
	}
	return repository{owner: owner, name: name}, nil
}

type sendFunc func(ctx context.Context, client *github.Client, repo repository) (any, error)

// request is one built option value: its wire text, its CBOR form, and
// the API call that sends it.
type request struct {
	// encoded is the JSON body, or the query string of a list kind.
	encoded []byte

	marshalCBOR func() ([]byte, error)

	send sendFunc

	// global requests (gists) are not scoped to a repository.
	global bool
}

type bodyOptions interface {
	json.Marshaler
	MarshalCBOR() ([]byte, error)
}

type listOptions interface {
	Query() string
	MarshalCBOR() ([]byte, error)
}

func bodyRequest(options bodyOptions, send sendFunc) (*request, error) {
	body, err := options.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return &request{encoded: body, marshalCBOR: options.MarshalCBOR, send: send}, nil
}

func queryRequest(options listOptions, send sendFunc) *request {
	return &request{encoded: []byte(options.Query()), marshalCBOR: options.MarshalCBOR, send: send}
}
