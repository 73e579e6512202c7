// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	discountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	renderedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderTable formats the catalog as an aligned, styled table.
func renderTable(items []catalog.Item) string {
	if len(items) == 0 {
		return "catalog is empty\n"
	}

	headers := []string{"ID", "NAME", "PRICE", "STOCK", "CARD"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", item.ID),
			item.Name,
			priceCell(item),
			stockCell(item.Stock),
			cardCell(item.RenderLink),
		})
	}

	widths := make([]int, len(headers))
	for column, header := range headers {
		widths[column] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for column, cell := range row {
			if width := lipgloss.Width(cell); width > widths[column] {
				widths[column] = width
			}
		}
	}

	var out strings.Builder
	for column, header := range headers {
		out.WriteString(headerStyle.Render(pad(header, widths[column])))
		out.WriteString("  ")
	}
	out.WriteByte('\n')

	for _, row := range rows {
		for column, cell := range row {
			padded := pad(cell, widths[column])
			switch column {
			case 0:
				padded = idStyle.Render(padded)
			case 4:
				padded = renderedStyle.Render(padded)
			}
			out.WriteString(padded)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func priceCell(item catalog.Item) string {
	if item.DiscountPercent > 0 {
		return fmt.Sprintf("$%.2f %s", item.Price,
			discountStyle.Render(fmt.Sprintf("(-%d%% → $%.2f)", item.DiscountPercent, item.EffectivePrice())))
	}
	return fmt.Sprintf("$%.2f", item.Price)
}

func stockCell(stock *int64) string {
	if stock == nil {
		return "∞"
	}
	return fmt.Sprintf("%d", *stock)
}

func cardCell(link *catalog.RenderLink) string {
	if link == nil {
		return "-"
	}
	return fmt.Sprintf("%s/%s", link.SurfaceID, link.AnchorID)
}

// pad right-pads cell to width using display width, so styled and
// multi-byte cells align.
func pad(cell string, width int) string {
	if gap := width - lipgloss.Width(cell); gap > 0 {
		return cell + strings.Repeat(" ", gap)
	}
	return cell
}
