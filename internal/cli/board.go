package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/wordtiles/internal/services/board"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	confirmedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#f5deb3"))
	pendingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	centerStyle    = lipgloss.NewStyle().Bold(true)
)

// cellWidth is the printed width of one board cell
const cellWidth = 3

// RenderBoard draws a board snapshot for the terminal. Empty cells show
// their bonus label, tiles show their letter. Pending tiles are highlighted.
func RenderBoard(snap board.Snapshot) string {
	var b strings.Builder

	// Column headers
	b.WriteString(strings.Repeat(" ", cellWidth))
	for col := 0; col < snap.Size; col++ {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%*d", cellWidth, col)))
	}
	b.WriteString("\n")

	for _, row := range snap.Rows {
		if len(row) == 0 {
			continue
		}
		b.WriteString(headerStyle.Render(fmt.Sprintf("%*d", cellWidth, row[0].Row)))
		for _, cell := range row {
			b.WriteString(renderCell(cell))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell board.CellView) string {
	text := fmt.Sprintf("%*s", cellWidth, cellText(cell))

	switch cell.State {
	case board.CellConfirmed:
		return confirmedStyle.Render(text)
	case board.CellPending:
		return pendingStyle.Render(text)
	}

	style := lipgloss.NewStyle()
	if cell.Bonus != "none" && cell.Style.Color != "" {
		style = style.Background(lipgloss.Color(cell.Style.Color)).Foreground(lipgloss.Color("0"))
	}
	if cell.Center {
		style = style.Inherit(centerStyle)
	}
	return style.Render(text)
}

func cellText(cell board.CellView) string {
	switch {
	case cell.Letter != "":
		return cell.Letter
	case cell.Center:
		return "*"
	case cell.Style.Label != "":
		return cell.Style.Label
	default:
		return "."
	}
}
