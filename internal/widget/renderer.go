package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Renderer produces the directive lines for one widget.
type Renderer struct {
	cfg    Config
	source Source
}

// NewRenderer builds a renderer for the given widget config. A nil source
// falls back to the placeholder sample data.
func NewRenderer(cfg Config, source Source) *Renderer {
	if source == nil {
		source = DefaultSource()
	}
	return &Renderer{cfg: cfg, source: source}
}

// Render returns the ordered output lines for the given mode, or an error if
// the sample could not be produced. Callers that want the forgiving script
// behavior go through WriteTo, which folds the error back into the protocol.
func (r *Renderer) Render(ctx context.Context, mode Mode) ([]string, error) {
	sample, err := r.source.Sample(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	if sample.History.Len() == 0 {
		return nil, errors.New("empty history series")
	}

	status := Status(sample.Current)
	lines := []string{
		TitleLine(r.cfg.Title),
		RefreshLine(r.cfg.RefreshInterval),
	}

	if mode == Extended {
		lines = append(lines,
			RowLine(Bold("Current Status")),
			RowLine(StatusTag(status)+" Value: "+strconv.Itoa(sample.Current)),
			RowLine(""),
			RowLine(Bold("History Graph")),
			RowLine(GraphTag(sample.History)),
			RowLine(""),
			RowLine(Bold("Statistics")),
			TableLine("Metric", "Value"),
			TableRowLine("Average", strconv.Itoa(sample.History.Avg())),
			TableRowLine("Minimum", strconv.Itoa(sample.History.Min())),
			TableRowLine("Maximum", strconv.Itoa(sample.History.Max())),
			TableRowLine("Samples", strconv.Itoa(sample.History.Len())),
		)
	} else {
		lines = append(lines,
			RowLine(StatusTag(status)+" Current: "+strconv.Itoa(sample.Current)),
			RowLine(SparklineTag(sample.History)),
			RowLine("Average: "+strconv.Itoa(sample.History.Avg())),
		)
	}

	return append(lines, ActionLine("Refresh", r.cfg.RefreshCommand())), nil
}

// WriteTo renders one pass and prints it. A render failure is reported as the
// single error row the dashboard expects; the returned error covers only the
// write itself.
func (r *Renderer) WriteTo(ctx context.Context, w io.Writer, mode Mode) error {
	lines, err := r.Render(ctx, mode)
	if err != nil {
		lines = []string{ErrorRow(err)}
	}
	for _, line := range lines {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return werr
		}
	}
	return nil
}

// ErrorRow is the recovery line emitted in place of output when a render
// pass fails.
func ErrorRow(err error) string {
	return RowLine(StatusTag("error") + " Error: " + err.Error())
}
