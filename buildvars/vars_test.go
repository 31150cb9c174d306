// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("got %q, want dev", got)
	}
	Version = "v1.2.3"
	if got := VersionOrDefault("dev"); got != "v1.2.3" {
		t.Fatalf("got %q, want v1.2.3", got)
	}
}
