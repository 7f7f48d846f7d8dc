package widget

import (
	"fmt"
	"strings"
)

// The consuming dashboard parses output lines positionally and by prefix, so
// this file is the only place that spells the directive syntax.

// statusThreshold is the fixed alert cutoff for the current reading.
const statusThreshold = 80

// Mode selects between the compact dashboard rendering and the extended
// detail rendering. It is decided once at startup and immutable for the run.
type Mode int

const (
	Compact Mode = iota
	Extended
)

func (m Mode) String() string {
	if m == Extended {
		return "extended"
	}
	return "compact"
}

// ModeFromArgs scans an argument list for the literal --extended token.
// Position is irrelevant and every other argument is ignored.
func ModeFromArgs(args []string) Mode {
	for _, a := range args {
		if a == "--extended" {
			return Extended
		}
	}
	return Compact
}

// Status classifies a reading against the alert threshold.
func Status(current int) string {
	if current < statusThreshold {
		return "ok"
	}
	return "error"
}

func TitleLine(text string) string   { return "title: " + text }
func RefreshLine(text string) string { return "refresh: " + text }

// RowLine emits one display row. Empty text produces the bare "row:" spacer
// the protocol uses between sections.
func RowLine(text string) string {
	if text == "" {
		return "row:"
	}
	return "row: " + text
}

// ActionLine emits a user-triggerable action, label and shell command
// separated by a colon.
func ActionLine(label, command string) string {
	return fmt.Sprintf("action: %s:%s", label, command)
}

func TableLine(columns ...string) string {
	return "[table:" + strings.Join(columns, "|") + "]"
}

func TableRowLine(values ...string) string {
	return "[tablerow:" + strings.Join(values, "|") + "]"
}

// Markup helpers for text embedded inside row directives.

func Bold(text string) string        { return "[bold]" + text + "[/]" }
func StatusTag(status string) string { return "[status:" + status + "]" }
func SparklineTag(s Series) string   { return "[sparkline:" + s.Join() + "]" }
func GraphTag(s Series) string       { return "[graph:" + s.Join() + "]" }
