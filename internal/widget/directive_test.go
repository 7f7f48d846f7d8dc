package widget

import "testing"

func TestModeFromArgsScansLiteralToken(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Mode
	}{
		{"empty", nil, Compact},
		{"no flag", []string{"render", "cpu.toml"}, Compact},
		{"flag alone", []string{"--extended"}, Extended},
		{"flag first", []string{"--extended", "cpu.toml", "--verbose"}, Extended},
		{"flag last", []string{"cpu.toml", "--junk", "--extended"}, Extended},
		{"flag buried", []string{"a", "b", "--extended", "c"}, Extended},
		{"near miss prefix", []string{"--extended=true"}, Compact},
		{"near miss short", []string{"-extended"}, Compact},
	}
	for _, tc := range cases {
		if got := ModeFromArgs(tc.args); got != tc.want {
			t.Fatalf("%s: ModeFromArgs(%v) = %v, want %v", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestStatusThreshold(t *testing.T) {
	if Status(79) != "ok" {
		t.Fatal("79 should be ok")
	}
	if Status(80) != "error" {
		t.Fatal("80 should be error")
	}
	if Status(42) != "ok" {
		t.Fatal("42 should be ok")
	}
}

func TestRowLineBlankSpacer(t *testing.T) {
	if got := RowLine(""); got != "row:" {
		t.Fatalf("blank row = %q, want bare \"row:\"", got)
	}
	if got := RowLine("x"); got != "row: x" {
		t.Fatalf("row = %q", got)
	}
}

func TestDirectiveDelimiters(t *testing.T) {
	if got := ActionLine("Refresh", "statuspane render w.toml"); got != "action: Refresh:statuspane render w.toml" {
		t.Fatalf("action = %q", got)
	}
	if got := TableLine("Metric", "Value"); got != "[table:Metric|Value]" {
		t.Fatalf("table = %q", got)
	}
	if got := TableRowLine("Average", "41"); got != "[tablerow:Average|41]" {
		t.Fatalf("tablerow = %q", got)
	}
	if got := Bold("Statistics"); got != "[bold]Statistics[/]" {
		t.Fatalf("bold = %q", got)
	}
}
