// Package protocol parses the line-oriented directive protocol that widgets
// emit. It is the consuming side of the contract: each line carries one
// directive, identified by its prefix, and line order is significant.
package protocol

import (
	"strconv"
	"strings"
)

// Kind identifies a directive.
type Kind int

const (
	KindRow Kind = iota
	KindTitle
	KindRefresh
	KindAction
	KindTable
	KindTableRow
)

// Directive is one parsed protocol line.
type Directive struct {
	Kind    Kind
	Text    string   // title/refresh/row payload
	Columns []string // table headers or tablerow values
	Label   string   // action label
	Command string   // action shell command
}

// Document is a parsed widget output: header fields plus the ordered body.
type Document struct {
	Title   string
	Refresh string
	Body    []Directive
	Actions []Directive
}

// Parse consumes whole widget output. Title and refresh lines populate the
// header; actions collect separately; everything else stays in Body in
// emission order. Unknown lines are kept as opaque rows, never rejected.
func Parse(lines []string) Document {
	var doc Document
	for _, line := range lines {
		d := ParseLine(line)
		switch d.Kind {
		case KindTitle:
			doc.Title = d.Text
		case KindRefresh:
			doc.Refresh = d.Text
		case KindAction:
			doc.Actions = append(doc.Actions, d)
		default:
			doc.Body = append(doc.Body, d)
		}
	}
	return doc
}

// ParseLine classifies a single line by prefix.
func ParseLine(line string) Directive {
	switch {
	case strings.HasPrefix(line, "title: "):
		return Directive{Kind: KindTitle, Text: line[len("title: "):]}
	case strings.HasPrefix(line, "refresh: "):
		return Directive{Kind: KindRefresh, Text: line[len("refresh: "):]}
	case line == "row:":
		return Directive{Kind: KindRow}
	case strings.HasPrefix(line, "row: "):
		return Directive{Kind: KindRow, Text: line[len("row: "):]}
	case strings.HasPrefix(line, "action: "):
		label, command, _ := strings.Cut(line[len("action: "):], ":")
		return Directive{Kind: KindAction, Label: label, Command: command}
	case strings.HasPrefix(line, "[table:") && strings.HasSuffix(line, "]"):
		inner := line[len("[table:") : len(line)-1]
		return Directive{Kind: KindTable, Columns: strings.Split(inner, "|")}
	case strings.HasPrefix(line, "[tablerow:") && strings.HasSuffix(line, "]"):
		inner := line[len("[tablerow:") : len(line)-1]
		return Directive{Kind: KindTableRow, Columns: strings.Split(inner, "|")}
	default:
		return Directive{Kind: KindRow, Text: line}
	}
}

// RowMarkup is the style markup extracted from a row's text.
type RowMarkup struct {
	Status    string // "", "ok", or "error"
	Bold      bool
	Sparkline []int
	Graph     []int
	Text      string // remaining plain text
}

// ParseRowMarkup strips the inline tags a row may embed. Tags that fail to
// parse are left in the plain text untouched.
func ParseRowMarkup(text string) RowMarkup {
	m := RowMarkup{Text: text}

	if strings.HasPrefix(m.Text, "[status:") {
		if end := strings.Index(m.Text, "]"); end > 0 {
			m.Status = m.Text[len("[status:"):end]
			m.Text = strings.TrimLeft(m.Text[end+1:], " ")
		}
	}

	if inner, ok := cutWrapped(m.Text, "[bold]", "[/]"); ok {
		m.Bold = true
		m.Text = inner
	}

	if values, ok := cutSeries(m.Text, "[sparkline:"); ok {
		m.Sparkline = values
		m.Text = ""
	} else if values, ok := cutSeries(m.Text, "[graph:"); ok {
		m.Graph = values
		m.Text = ""
	}

	return m
}

func cutWrapped(s, open, closing string) (string, bool) {
	if !strings.HasPrefix(s, open) || !strings.HasSuffix(s, closing) {
		return "", false
	}
	return s[len(open) : len(s)-len(closing)], true
}

func cutSeries(s, open string) ([]int, bool) {
	if !strings.HasPrefix(s, open) || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	inner := s[len(open) : len(s)-1]
	parts := strings.Split(inner, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}
