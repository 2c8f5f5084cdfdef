// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNeu renders an amount of neu (the smallest BTM unit) in unit,
// which is "btm" (1e8 neu) or "mbtm" (1e5 neu). Any other unit prints raw neu.
func FormatNeu(neu uint64, unit string) string {
	var exp int32
	switch strings.ToLower(unit) {
	case "btm", "":
		exp = -8
		unit = "btm"
	case "mbtm":
		exp = -5
	default:
		return fmt.Sprintf("%d neu", neu)
	}
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(neu), exp)
	return d.String() + " " + strings.ToLower(unit)
}

// ShortHex abbreviates long hex strings such as asset or output ids for tables.
func ShortHex(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:8] + "…" + s[len(s)-6:]
}
