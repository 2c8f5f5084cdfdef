// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package inputs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Gas units accepted by btmUnitInput.
const (
	UnitBTM  = "btm"
	UnitMBTM = "mbtm"
)

var (
	neuPerBTM  = decimal.New(1, 8)
	neuPerMBTM = decimal.New(1, 5)
)

func unitScale(unit string) (decimal.Decimal, error) {
	switch strings.ToLower(unit) {
	case UnitBTM, "":
		return neuPerBTM, nil
	case UnitMBTM:
		return neuPerMBTM, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown gas unit %q (want %s or %s)", unit, UnitBTM, UnitMBTM)
	}
}

// GasNeu converts a decimal gas amount in the given unit to neu,
// the smallest BTM denomination. An empty unit means BTM.
func GasNeu(amount, unit string) (uint64, error) {
	scale, err := unitScale(unit)
	if err != nil {
		return 0, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("invalid gas amount %q: %w", amount, err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("gas must be greater than 0")
	}

	neu := d.Mul(scale)
	if !neu.IsInteger() {
		return 0, fmt.Errorf("gas %s %s is not a whole number of neu", amount, unit)
	}
	if neu.BigInt().BitLen() > 63 {
		return 0, fmt.Errorf("gas %s %s is too large", amount, unit)
	}
	return uint64(neu.IntPart()), nil
}
