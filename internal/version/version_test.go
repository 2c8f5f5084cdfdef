// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "eqshell "+Version) || !strings.Contains(s, "commit: "+GitCommit) {
		t.Errorf("String() = %q", s)
	}
}
