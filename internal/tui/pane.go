package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// pane frames content with a rounded border and the title embedded in the
// top edge, the way the hosting dashboard frames its widgets.
type pane struct {
	Title   string
	Content string
}

func (p pane) Render(width int) string {
	if width < 10 {
		width = 10
	}
	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := " " + strings.TrimSpace(p.Title) + " "
	if ansi.StringWidth(title) > innerWidth-2 {
		title = " " + ansi.Truncate(strings.TrimSpace(p.Title), contentWidth-2, "…") + " "
	}
	dashes := innerWidth - ansi.StringWidth(title) - 1
	if dashes < 0 {
		dashes = 0
	}

	top := styleBorder.Render("╭─") +
		stylePaneTitle.Render(title) +
		styleBorder.Render(strings.Repeat("─", dashes)+"╮")
	bottom := styleBorder.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	v := styleBorder.Render("│")

	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, top)
	for _, line := range lines {
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func padRight(s string, w int) string {
	gap := w - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
