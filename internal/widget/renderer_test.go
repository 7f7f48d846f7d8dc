package widget

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testConfig() Config {
	return Config{
		Title:           "CPU Load",
		Description:     "Five minute load",
		Author:          "ops",
		RefreshInterval: "30s",
		OutputFile:      "widgets/cpu.toml",
	}
}

func TestRenderCompactSequence(t *testing.T) {
	r := NewRenderer(testConfig(), nil)

	lines, err := r.Render(context.Background(), Compact)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"title: CPU Load",
		"refresh: 30s",
		"row: [status:ok] Current: 42",
		"row: [sparkline:30,35,40,42,45,50,48,42]",
		"row: Average: 41",
		"action: Refresh:statuspane render widgets/cpu.toml",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("compact output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderExtendedSequence(t *testing.T) {
	r := NewRenderer(testConfig(), nil)

	lines, err := r.Render(context.Background(), Extended)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"title: CPU Load",
		"refresh: 30s",
		"row: [bold]Current Status[/]",
		"row: [status:ok] Value: 42",
		"row:",
		"row: [bold]History Graph[/]",
		"row: [graph:30,35,40,42,45,50,48,42]",
		"row:",
		"row: [bold]Statistics[/]",
		"[table:Metric|Value]",
		"[tablerow:Average|41]",
		"[tablerow:Minimum|30]",
		"[tablerow:Maximum|50]",
		"[tablerow:Samples|8]",
		"action: Refresh:statuspane render widgets/cpu.toml",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("extended output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCompactHasExactlyThreeRows(t *testing.T) {
	r := NewRenderer(testConfig(), nil)
	lines, err := r.Render(context.Background(), Compact)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	rows := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "row:") {
			rows++
		}
	}
	if rows != 3 {
		t.Fatalf("compact mode emitted %d row lines, want 3", rows)
	}
}

func TestRenderExtendedTableHasFourRows(t *testing.T) {
	r := NewRenderer(testConfig(), nil)
	lines, err := r.Render(context.Background(), Extended)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	tableAt := -1
	tableRows := 0
	for i, l := range lines {
		if l == "[table:Metric|Value]" {
			tableAt = i
		}
		if strings.HasPrefix(l, "[tablerow:") {
			tableRows++
		}
	}
	if tableAt < 0 {
		t.Fatal("missing [table:Metric|Value] directive")
	}
	if tableRows != 4 {
		t.Fatalf("got %d tablerow directives, want 4", tableRows)
	}
	for off := 1; off <= 4; off++ {
		if !strings.HasPrefix(lines[tableAt+off], "[tablerow:") {
			t.Fatalf("line %d after table header is %q, want a tablerow", off, lines[tableAt+off])
		}
	}
}

func TestRenderStatusCrossesThreshold(t *testing.T) {
	src := StaticSource{Current: 80, History: Series{70, 75, 80}}
	r := NewRenderer(testConfig(), src)

	lines, err := r.Render(context.Background(), Compact)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if lines[2] != "row: [status:error] Current: 80" {
		t.Fatalf("current row = %q, want error status at threshold", lines[2])
	}
}

func TestRenderIsByteIdenticalAcrossRuns(t *testing.T) {
	r := NewRenderer(testConfig(), nil)

	var first, second bytes.Buffer
	if err := r.WriteTo(context.Background(), &first, Extended); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := r.WriteTo(context.Background(), &second, Extended); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("repeated renders differ")
	}
}

type failingSource struct{ err error }

func (f failingSource) Sample(context.Context) (Sample, error) {
	return Sample{}, f.err
}

func TestWriteToFoldsErrorIntoSingleRow(t *testing.T) {
	r := NewRenderer(testConfig(), failingSource{err: errors.New("probe timed out")})

	var out bytes.Buffer
	if err := r.WriteTo(context.Background(), &out, Compact); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimRight(out.String(), "\n")
	if got != "row: [status:error] Error: sample: probe timed out" {
		t.Fatalf("error output = %q", got)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Fatalf("error path emitted %d lines, want 1", strings.Count(out.String(), "\n"))
	}
}

func TestRenderEmptyHistoryFails(t *testing.T) {
	r := NewRenderer(testConfig(), StaticSource{Current: 1})
	if _, err := r.Render(context.Background(), Extended); err == nil {
		t.Fatal("expected error for empty history")
	}
}
