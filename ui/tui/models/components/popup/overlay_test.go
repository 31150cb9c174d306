// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"
	"testing"
)

func TestOverlay_Centers(t *testing.T) {
	base := strings.Join([]string{".......", ".......", ".......", "......."}, "\n")
	got := overlay(base, "ab\ncd")
	want := strings.Join([]string{".......", "..ab...", "..cd...", "......."}, "\n")
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestOverlay_ShortBaseLines(t *testing.T) {
	base := strings.Join([]string{"......", "", "......"}, "\n")
	got := strings.Split(overlay(base, "xx"), "\n")
	if got[1] != "  xx" {
		t.Fatalf("short line not padded: %q", got[1])
	}
}

func TestOverlay_CutsToBase(t *testing.T) {
	got := overlay("....\n....", "abcdefgh\n1\n2\n3")
	if lines := strings.Split(got, "\n"); len(lines) != 2 || len(lines[0]) != 4 {
		t.Fatalf("overlay grew the base: %q", got)
	}
}
