// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grouping

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/danielhkuo/hr-toolkit/models"
)

// Print renders groups as a plain text table for printing
func Print(w io.Writer, groups []models.Group) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "#", "Name"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	total := 0
	for _, g := range groups {
		for i, m := range g.Members {
			label := ""
			if i == 0 {
				label = fmt.Sprintf("%s (%d)", Label(g), len(g.Members))
			}
			table.Append([]string{label, strconv.Itoa(i + 1), m.Name})
		}
		total += len(g.Members)
	}

	table.SetFooter([]string{fmt.Sprintf("%d groups", len(groups)), "", fmt.Sprintf("%d people", total)})
	table.Render()
}
