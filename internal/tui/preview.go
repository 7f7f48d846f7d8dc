// Package tui renders a widget locally the way the hosting dashboard would:
// it runs the renderer, parses the emitted protocol, and draws the result in
// a bordered pane, re-rendering on the widget's refresh interval.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/statuspane/statuspane/internal/protocol"
	"github.com/statuspane/statuspane/internal/widget"
)

const (
	defaultRefresh = 30 * time.Second
	maxPaneWidth   = 72
)

// Preview is the bubbletea model for the preview screen.
type Preview struct {
	renderer   *widget.Renderer
	mode       widget.Mode
	doc        protocol.Document
	renderErr  error
	renderedAt time.Time
	width      int
	height     int
}

func NewPreview(r *widget.Renderer, mode widget.Mode) *Preview {
	return &Preview{renderer: r, mode: mode, width: 80, height: 24}
}

type renderedMsg struct {
	doc protocol.Document
	err error
	at  time.Time
}

type tickMsg time.Time

func (p *Preview) Init() tea.Cmd {
	return tea.Batch(p.renderCmd(), p.tickCmd())
}

func (p *Preview) renderCmd() tea.Cmd {
	r, mode := p.renderer, p.mode
	return func() tea.Msg {
		lines, err := r.Render(context.Background(), mode)
		if err != nil {
			return renderedMsg{err: err, at: time.Now()}
		}
		return renderedMsg{doc: protocol.Parse(lines), at: time.Now()}
	}
}

// refreshEvery parses the widget's refresh field as a duration. The protocol
// only promises free-form text there, so unparseable values fall back.
func (p *Preview) refreshEvery() time.Duration {
	if d, err := time.ParseDuration(p.doc.Refresh); err == nil && d >= time.Second {
		return d
	}
	return defaultRefresh
}

func (p *Preview) tickCmd() tea.Cmd {
	return tea.Tick(p.refreshEvery(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "e":
			if p.mode == widget.Extended {
				p.mode = widget.Compact
			} else {
				p.mode = widget.Extended
			}
			return p, p.renderCmd()
		case "r":
			return p, p.renderCmd()
		}
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case renderedMsg:
		p.doc, p.renderErr, p.renderedAt = msg.doc, msg.err, msg.at
	case tickMsg:
		return p, tea.Batch(p.renderCmd(), p.tickCmd())
	}
	return p, nil
}

func (p *Preview) View() string {
	width := p.width
	if width > maxPaneWidth {
		width = maxPaneWidth
	}
	title := p.doc.Title
	if title == "" {
		title = "widget"
	}
	body := pane{Title: title, Content: p.renderBody(width - 4)}.Render(width)
	return body + "\n" + p.footer()
}

func (p *Preview) renderBody(width int) string {
	if p.renderErr != nil {
		return styleError.Render("● ") + styleText.Render("Error: "+p.renderErr.Error())
	}

	var out []string
	var table [][]string
	flush := func() {
		if table != nil {
			out = append(out, renderTable(table)...)
			table = nil
		}
	}
	for _, d := range p.doc.Body {
		switch d.Kind {
		case protocol.KindTable:
			flush()
			table = [][]string{d.Columns}
		case protocol.KindTableRow:
			if table == nil {
				// headerless table rows still align with each other
				table = [][]string{}
			}
			table = append(table, d.Columns)
		default:
			flush()
			out = append(out, p.renderRow(d, width))
		}
	}
	flush()
	return strings.Join(out, "\n")
}

func (p *Preview) renderRow(d protocol.Directive, width int) string {
	if d.Text == "" {
		return ""
	}
	m := protocol.ParseRowMarkup(d.Text)
	switch {
	case m.Sparkline != nil:
		return styleSpark.Render(sparkline(m.Sparkline))
	case m.Graph != nil:
		return styleSpark.Render(strings.Join(barGraph(m.Graph, width), "\n"))
	}

	var prefix string
	switch m.Status {
	case "ok":
		prefix = styleOK.Render("● ")
	case "error":
		prefix = styleError.Render("● ")
	}
	if m.Bold {
		return prefix + styleBold.Render(m.Text)
	}
	return prefix + styleText.Render(m.Text)
}

func renderTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	widths := make([]int, cols)
	for _, r := range rows {
		for i, c := range r {
			if w := ansi.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	out := make([]string, 0, len(rows))
	for ri, r := range rows {
		cells := make([]string, 0, cols)
		for i := 0; i < cols; i++ {
			c := ""
			if i < len(r) {
				c = r[i]
			}
			cells = append(cells, padRight(c, widths[i]))
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if ri == 0 {
			out = append(out, styleTableHeader.Render(line))
		} else {
			out = append(out, styleText.Render(line))
		}
	}
	return out
}

func (p *Preview) footer() string {
	var b strings.Builder
	for _, a := range p.doc.Actions {
		b.WriteString(styleAction.Render("["+a.Label+"] ") + styleSubtle.Render(a.Command) + "\n")
	}
	status := p.mode.String()
	if !p.renderedAt.IsZero() {
		status += "  rendered " + p.renderedAt.Format("15:04:05")
	}
	b.WriteString(styleSubtle.Render(status + "  |  r refresh  e mode  q quit"))
	return b.String()
}
