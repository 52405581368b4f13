// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "github.com/bureau-foundation/ghopts/lib/enum"

// StatusState is the state of a deployment status or a commit status.
// The zero value is StatusPending.
type StatusState int

const (
	StatusPending StatusState = iota
	StatusSuccess
	StatusError
	StatusFailure
)

// StatusStates maps StatusState variants to their wire tokens.
var StatusStates = enum.NewTable("status state", StatusPending,
	enum.Entry[StatusState]{Variant: StatusPending, Token: "pending"},
	enum.Entry[StatusState]{Variant: StatusSuccess, Token: "success"},
	enum.Entry[StatusState]{Variant: StatusError, Token: "error"},
	enum.Entry[StatusState]{Variant: StatusFailure, Token: "failure"},
)

// ParseStatusState returns the StatusState named by token.
func ParseStatusState(token string) (StatusState, error) { return StatusStates.Parse(token) }

// Token returns the wire token. An undeclared value renders as
// "status state(n)".
func (state StatusState) Token() string {
	return StatusStates.Token(state)
}

func (state StatusState) String() string {
	return StatusStates.Token(state)
}

// MarshalText encodes the wire token. It fails for undeclared values.
func (state StatusState) MarshalText() ([]byte, error) {
	return StatusStates.MarshalText(state)
}

// UnmarshalText decodes a wire token, returning *enum.ParseError for
// an unknown one.
func (state *StatusState) UnmarshalText(text []byte) error {
	return StatusStates.UnmarshalText(state, text)
}

// State is the open/closed state of an issue or pull request, and the
// state filter of list endpoints. The zero value is StateOpen.
type State int

const (
	StateOpen State = iota
	StateClosed
	// StateAll is only meaningful as a list filter.
	StateAll
)

// States maps State variants to their wire tokens.
var States = enum.NewTable("state", StateOpen,
	enum.Entry[State]{Variant: StateOpen, Token: "open"},
	enum.Entry[State]{Variant: StateClosed, Token: "closed"},
	enum.Entry[State]{Variant: StateAll, Token: "all"},
)

// ParseState returns the State named by token.
func ParseState(token string) (State, error) { return States.Parse(token) }

// Token returns the wire token. An undeclared value renders as
// "state(n)".
func (state State) Token() string {
	return States.Token(state)
}

func (state State) String() string {
	return States.Token(state)
}

// MarshalText encodes the wire token. It fails for undeclared values.
func (state State) MarshalText() ([]byte, error) {
	return States.MarshalText(state)
}

// UnmarshalText decodes a wire token, returning *enum.ParseError for
// an unknown one.
func (state *State) UnmarshalText(text []byte) error {
	return States.UnmarshalText(state, text)
}

// SortDirection orders list results. The zero value is SortAscending.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// SortDirections maps SortDirection variants to their wire tokens.
var SortDirections = enum.NewTable("sort direction", SortAscending,
	enum.Entry[SortDirection]{Variant: SortAscending, Token: "asc"},
	enum.Entry[SortDirection]{Variant: SortDescending, Token: "desc"},
)

// ParseSortDirection returns the SortDirection named by token.
func ParseSortDirection(token string) (SortDirection, error) { return SortDirections.Parse(token) }

// Token returns the wire token. An undeclared value renders as
// "sort direction(n)".
func (direction SortDirection) Token() string {
	return SortDirections.Token(direction)
}

func (direction SortDirection) String() string {
	return SortDirections.Token(direction)
}

// MarshalText encodes the wire token. It fails for undeclared values.
func (direction SortDirection) MarshalText() ([]byte, error) {
	return SortDirections.MarshalText(direction)
}

// UnmarshalText decodes a wire token, returning *enum.ParseError for
// an unknown one.
func (direction *SortDirection) UnmarshalText(text []byte) error {
	return SortDirections.UnmarshalText(direction, text)
}

// IssueSort is the sort key of the issue list endpoint. The zero value
// is IssueSortCreated.
type IssueSort int

const (
	IssueSortCreated IssueSort = iota
	IssueSortUpdated
	IssueSortComments
)

// IssueSorts maps IssueSort variants to their wire tokens.
var IssueSorts = enum.NewTable("issue sort", IssueSortCreated,
	enum.Entry[IssueSort]{Variant: IssueSortCreated, Token: "created"},
	enum.Entry[IssueSort]{Variant: IssueSortUpdated, Token: "updated"},
	enum.Entry[IssueSort]{Variant: IssueSortComments, Token: "comments"},
)

// ParseIssueSort returns the IssueSort named by token.
func ParseIssueSort(token string) (IssueSort, error) { return IssueSorts.Parse(token) }

// Token returns the wire token. An undeclared value renders as
// "issue sort(n)".
func (sort IssueSort) Token() string {
	return IssueSorts.Token(sort)
}

func (sort IssueSort) String() string {
	return IssueSorts.Token(sort)
}

// MarshalText encodes the wire token. It fails for undeclared values.
func (sort IssueSort) MarshalText() ([]byte, error) {
	return IssueSorts.MarshalText(sort)
}

// UnmarshalText decodes a wire token, returning *enum.ParseError for
// an unknown one.
func (sort *IssueSort) UnmarshalText(text []byte) error {
	return IssueSorts.UnmarshalText(sort, text)
}

// PullSort is the sort key of the pull request list endpoint. The zero
// value is PullSortCreated.
type PullSort int

const (
	PullSortCreated PullSort = iota
	PullSortUpdated
	PullSortPopularity
	PullSortLongRunning
)

// PullSorts maps PullSort variants to their wire tokens.
var PullSorts = enum.NewTable("pull sort", PullSortCreated,
	enum.Entry[PullSort]{Variant: PullSortCreated, Token: "created"},
	enum.Entry[PullSort]{Variant: PullSortUpdated, Token: "updated"},
	enum.Entry[PullSort]{Variant: PullSortPopularity, Token: "popularity"},
	enum.Entry[PullSort]{Variant: PullSortLongRunning, Token: "long-running"},
)

// ParsePullSort returns the PullSort named by token.
func ParsePullSort(token string) (PullSort, error) { return PullSorts.Parse(token) }

// Token returns the wire token. An undeclared value renders as
// "pull sort(n)".
func (sort PullSort) Token() string {
	return PullSorts.Token(sort)
}

func (sort PullSort) String() string {
	return PullSorts.Token(sort)
}

// MarshalText encodes the wire token. It fails for undeclared values.
func (sort PullSort) MarshalText() ([]byte, error) {
	return PullSorts.MarshalText(sort)
}

// UnmarshalText decodes a wire token, returning *enum.ParseError for
// an unknown one.
func (sort *PullSort) UnmarshalText(text []byte) error {
	return PullSorts.UnmarshalText(sort, text)
}

