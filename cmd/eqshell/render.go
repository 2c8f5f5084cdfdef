// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/util"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable draws rows under headers with a rounded border.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(w, t.String())
}

// actionRow describes one action for display. Amounts in the gas asset are
// shown in BTM.
func actionRow(i int, a action.Action, gasAssetID string) []string {
	amount := func(asset string, n uint64) string {
		if asset == gasAssetID {
			return util.FormatNeu(n, "btm")
		}
		return strconv.FormatUint(n, 10)
	}

	idx := strconv.Itoa(i + 1)
	switch v := a.(type) {
	case action.SpendFromAccount:
		return []string{idx, v.Type(), util.ShortHex(v.AssetID), amount(v.AssetID, v.Amount), "account " + v.AccountID}
	case action.SpendUnspentOutput:
		return []string{idx, v.Type(), "", "", "output " + util.ShortHex(v.OutputID)}
	case action.ControlWithProgram:
		return []string{idx, v.Type(), util.ShortHex(v.AssetID), amount(v.AssetID, v.Amount), "program " + util.ShortHex(v.ControlProgram)}
	default:
		return []string{idx, a.Type(), "", "", ""}
	}
}

// renderActions prints an action list as a table.
func renderActions(w io.Writer, actions []action.Action, gasAssetID string) {
	rows := make([][]string, len(actions))
	for i, a := range actions {
		rows[i] = actionRow(i, a, gasAssetID)
	}
	renderTable(w, []string{"#", "Action", "Asset", "Amount", "Target"}, rows)
}
