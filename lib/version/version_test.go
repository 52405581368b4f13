// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestBuildString(t *testing.T) {
	tests := []struct {
		name  string
		build Build
		want  string
	}{
		{
			name:  "clean",
			build: Build{Version: "1.2.0", Commit: "abc1234", BuildTime: "2026-03-01T00:00:00Z"},
			want:  "1.2.0 (abc1234, 2026-03-01T00:00:00Z)",
		},
		{
			name:  "dirty",
			build: Build{Version: "1.2.0", Commit: "abc1234", Dirty: true, BuildTime: "unknown"},
			want:  "1.2.0 (abc1234-dirty, unknown)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.build.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestCurrentPrefersLinkerValues(t *testing.T) {
	saved := []string{GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2] })

	GitCommit, GitDirty, BuildTime = "deadbeef", "true", "2026-01-02T03:04:05Z"
	build := Current()
	if build.Commit != "deadbeef" || !build.Dirty || build.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("Current() = %+v", build)
	}
	if build.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", build.Platform)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Version+" (") {
		t.Errorf("Full() = %q, want prefix %q", full, Version)
	}
	if !strings.Contains(full, "Go: "+runtime.Version()) {
		t.Errorf("Full() = %q, missing Go version", full)
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("0123456789abcdef0123"); got != "0123456789ab" {
		t.Errorf("shorten = %q", got)
	}
	if got := shorten("abc"); got != "abc" {
		t.Errorf("shorten = %q", got)
	}
}
