// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package enum

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type phase int

const (
	phaseQueued phase = iota
	phaseRunning
	phaseDone
)

var phases = NewTable("phase", phaseQueued,
	Entry[phase]{Variant: phaseQueued, Token: "queued"},
	Entry[phase]{Variant: phaseRunning, Token: "running"},
	Entry[phase]{Variant: phaseDone, Token: "done"},
)

func (p phase) MarshalText() ([]byte, error)     { return phases.MarshalText(p) }
func (p *phase) UnmarshalText(text []byte) error { return phases.UnmarshalText(p, text) }

// signal formats itself through its table, as the github enums do.
type signal int

const (
	signalGreen signal = iota
	signalRed
)

var signals = NewTable("signal", signalGreen,
	Entry[signal]{Variant: signalGreen, Token: "green"},
	Entry[signal]{Variant: signalRed, Token: "red"},
)

func (s signal) String() string { return signals.Token(s) }

func TestTableRoundTrip(t *testing.T) {
	for _, token := range phases.Tokens() {
		variant, err := phases.Parse(token)
		if err != nil {
			t.Fatalf("Parse(%q): %v", token, err)
		}
		if got := phases.Token(variant); got != token {
			t.Errorf("Token(Parse(%q)) = %q", token, got)
		}
	}
}

func TestTableParseRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "Queued", "QUEUED", " queued", "queued ", "finished", "done,running"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := phases.Parse(input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsParseError(err) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			want := fmt.Sprintf("enum: unknown phase token %q", input)
			if err.Error() != want {
				t.Errorf("error = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestTableDefault(t *testing.T) {
	if got := phases.Default(); got != phaseQueued {
		t.Errorf("Default() = %v, want %v", got, phaseQueued)
	}
}

func TestTableDeclarationOrder(t *testing.T) {
	if diff := cmp.Diff([]string{"queued", "running", "done"}, phases.Tokens()); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]phase{phaseQueued, phaseRunning, phaseDone}, phases.Variants()); diff != "" {
		t.Errorf("Variants() mismatch (-want +got):\n%s", diff)
	}

	// The returned slices are copies.
	tokens := phases.Tokens()
	tokens[0] = "mutated"
	if phases.Tokens()[0] != "queued" {
		t.Error("Tokens() exposed internal state")
	}
}

func TestTableUndeclaredVariant(t *testing.T) {
	undeclared := phase(42)
	if got := phases.Token(undeclared); got != "phase(42)" {
		t.Errorf("Token(42) = %q, want %q", got, "phase(42)")
	}
	if _, ok := phases.Lookup(undeclared); ok {
		t.Error("Lookup(42) reported a declared variant")
	}
	if _, err := phases.MarshalText(undeclared); err == nil {
		t.Error("MarshalText(42) succeeded")
	}
}

func TestTableUndeclaredStringerVariant(t *testing.T) {
	undeclared := signal(9)
	if got := undeclared.String(); got != "signal(9)" {
		t.Errorf("String() = %q, want %q", got, "signal(9)")
	}
	if got := fmt.Sprintf("%v", undeclared); got != "signal(9)" {
		t.Errorf("%%v = %q, want %q", got, "signal(9)")
	}
	_, err := signals.MarshalText(undeclared)
	if err == nil {
		t.Fatal("MarshalText(9) succeeded")
	}
	if want := "enum: cannot marshal undeclared signal 9"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestTableTextMarshaling(t *testing.T) {
	data, err := json.Marshal(struct {
		Phase phase `json:"phase"`
	}{Phase: phaseRunning})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"phase":"running"}` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded struct {
		Phase phase `json:"phase"`
	}
	if err := json.Unmarshal([]byte(`{"phase":"done"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Phase != phaseDone {
		t.Errorf("Phase = %v, want %v", decoded.Phase, phaseDone)
	}

	decoded.Phase = phaseRunning
	err = json.Unmarshal([]byte(`{"phase":"exploded"}`), &decoded)
	if !IsParseError(err) {
		t.Fatalf("Unmarshal error = %v, want *ParseError", err)
	}
	if !strings.Contains(err.Error(), `"exploded"`) {
		t.Errorf("error %q does not name the token", err)
	}
	if decoded.Phase != phaseRunning {
		t.Errorf("failed decode changed Phase to %v", decoded.Phase)
	}
}

func TestIsParseErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("decoding response: %w", &ParseError{Type: "phase", Token: "x"})
	if !IsParseError(wrapped) {
		t.Error("IsParseError should see through fmt.Errorf wrapping")
	}
	if IsParseError(fmt.Errorf("network error")) {
		t.Error("unexpected IsParseError for plain error")
	}
}

func TestNewTablePanics(t *testing.T) {
	tests := []struct {
		name    string
		build   func()
		message string
	}{
		{
			name:    "no entries",
			build:   func() { NewTable[phase]("phase", phaseQueued) },
			message: "has no entries",
		},
		{
			name: "duplicate token",
			build: func() {
				NewTable("phase", phaseQueued,
					Entry[phase]{Variant: phaseQueued, Token: "queued"},
					Entry[phase]{Variant: phaseRunning, Token: "queued"},
				)
			},
			message: `token "queued" declared twice`,
		},
		{
			name: "duplicate variant",
			build: func() {
				NewTable("phase", phaseQueued,
					Entry[phase]{Variant: phaseQueued, Token: "queued"},
					Entry[phase]{Variant: phaseQueued, Token: "waiting"},
				)
			},
			message: "declared twice",
		},
		{
			name: "empty token",
			build: func() {
				NewTable("phase", phaseQueued, Entry[phase]{Variant: phaseQueued, Token: ""})
			},
			message: "empty token",
		},
		{
			name: "undeclared default",
			build: func() {
				NewTable("phase", phaseDone, Entry[phase]{Variant: phaseQueued, Token: "queued"})
			},
			message: "is not a declared variant",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					t.Fatal("expected panic")
				}
				if message := fmt.Sprint(recovered); !strings.Contains(message, test.message) {
					t.Errorf("panic %q does not contain %q", message, test.message)
				}
			}()
			test.build()
		})
	}
}
