// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"math"
	"strings"
	"testing"
)

func TestFormatNeu(t *testing.T) {
	tests := []struct {
		name string
		neu  uint64
		unit string
		want string
	}{
		{"default gas", 40000000, "btm", "0.4 btm"},
		{"empty unit is btm", 100000000, "", "1 btm"},
		{"mbtm", 40000000, "mbtm", "400 mbtm"},
		{"upper case unit", 150000, "MBTM", "1.5 mbtm"},
		{"one neu", 1, "btm", "0.00000001 btm"},
		{"zero", 0, "btm", "0 btm"},
		{"unknown unit", 12, "eth", "12 neu"},
		{"max uint64", math.MaxUint64, "btm", "184467440737.09551615 btm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNeu(tt.neu, tt.unit); got != tt.want {
				t.Errorf("FormatNeu(%d, %q) = %q, want %q", tt.neu, tt.unit, got, tt.want)
			}
		})
	}
}

func TestShortHex(t *testing.T) {
	if got := ShortHex("0014abcd"); got != "0014abcd" {
		t.Errorf("ShortHex(short) = %q", got)
	}
	long := strings.Repeat("ab", 32)
	got := ShortHex(long)
	if !strings.HasPrefix(got, "abababab") || !strings.HasSuffix(got, "ababab") || len([]rune(got)) != 15 {
		t.Errorf("ShortHex(long) = %q", got)
	}
}
