// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs string
		wantRaw  string
	}{
		{"", "", "[]", ""},
		{"   ", "", "[]", ""},
		{"help", "help", "[]", ""},
		{"set unlockValue.accountInput acct1", "set", "[unlockValue.accountInput acct1]", "unlockValue.accountInput acct1"},
		{"  clause\trepay  ", "clause", "[repay]", "repay"},
		{`js print("a b")`, "js", "[print(a b)]", `print("a b")`},
		{`set contractParameters.x.stringInput "two words"`, "set", "[contractParameters.x.stringInput two words]", `contractParameters.x.stringInput "two words"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, args, raw := Parse(tt.input)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if fmt.Sprint(args) != tt.wantArgs && !(len(args) == 0 && tt.wantArgs == "[]") {
				t.Errorf("args = %v, want %s", args, tt.wantArgs)
			}
			if raw != tt.wantRaw {
				t.Errorf("raw = %q, want %q", raw, tt.wantRaw)
			}
		})
	}
}
