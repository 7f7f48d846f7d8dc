package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/statuspane/statuspane/internal/manifest"
	"github.com/statuspane/statuspane/internal/tui"
	"github.com/statuspane/statuspane/internal/widget"
)

var commands = []string{"render", "preview", "scaffold", "help"}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "render":
		runRender(os.Stdout, args)
	case "preview":
		if err := runPreview(args); err != nil {
			log.Fatalf("preview: %v", err)
		}
	case "scaffold":
		if err := runScaffold(os.Stdout, args); err != nil {
			log.Fatalf("scaffold: %v", err)
		}
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		if s := suggestCommand(cmd); s != "" {
			fmt.Fprintf(os.Stderr, "did you mean %q?\n", s)
		}
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `statuspane renders status widgets for line-protocol dashboards.

Usage:
  statuspane render [manifest.toml] [--extended]   emit widget output
  statuspane preview [flags]                       live local preview
  statuspane scaffold -out <path> [flags]          write a starter manifest
  statuspane help                                  show this help
`)
}

// runRender is the widget contract: unknown arguments are ignored, the
// --extended token may appear anywhere, and any failure is folded into a
// single protocol error row. The process always exits zero from here.
func runRender(w io.Writer, args []string) {
	mode := widget.ModeFromArgs(args)
	cfg, err := renderConfig(args)
	if err != nil {
		fmt.Fprintln(w, widget.ErrorRow(err))
		return
	}
	_ = widget.NewRenderer(cfg, nil).WriteTo(context.Background(), w, mode)
}

// renderConfig scans the raw argument list: an optional manifest path comes
// either positionally or via --manifest; everything else is ignored.
func renderConfig(args []string) (widget.Config, error) {
	path := ""
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--extended":
		case strings.HasPrefix(a, "--manifest="):
			path = strings.TrimPrefix(a, "--manifest=")
		case a == "--manifest":
			if i+1 < len(args) {
				i++
				path = args[i]
			}
		case len(a) > 0 && a[0] == '-':
			// tolerated and ignored
		case path == "":
			path = a
		}
	}
	if path == "" {
		return widget.Defaults(), nil
	}
	m, err := manifest.Load(path)
	if err != nil {
		return widget.Config{}, err
	}
	return m.Config(), nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	manifestPath := fs.String("manifest", "", "widget manifest to preview")
	extended := fs.Bool("extended", false, "start in extended mode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" && fs.NArg() > 0 {
		*manifestPath = fs.Arg(0)
	}

	cfg := widget.Defaults()
	if *manifestPath != "" {
		m, err := manifest.Load(*manifestPath)
		if err != nil {
			return err
		}
		cfg = m.Config()
	}
	mode := widget.Compact
	if *extended {
		mode = widget.Extended
	}

	p := tea.NewProgram(tui.NewPreview(widget.NewRenderer(cfg, nil), mode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runScaffold is the Go rendition of the template generator: instead of
// substituting placeholders into a script copy, it writes a manifest the
// renderer consumes at construction time.
func runScaffold(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)
	out := fs.String("out", "", "manifest path to write (required)")
	title := fs.String("title", "", "widget display name")
	description := fs.String("description", "", "widget description")
	author := fs.String("author", "", "widget author")
	refresh := fs.String("refresh", "", "suggested refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("missing required -out path")
	}

	m := manifest.New()
	if *title != "" {
		m.Widget.Title = *title
	}
	if *description != "" {
		m.Widget.Description = *description
	}
	if *author != "" {
		m.Widget.Author = *author
	}
	if *refresh != "" {
		m.Widget.RefreshInterval = *refresh
	}
	m.Widget.OutputFile = *out

	if err := manifest.Save(*out, m); err != nil {
		return err
	}
	fmt.Fprintf(w, "Widget manifest written to %s\n", *out)
	fmt.Fprintf(w, "Run: statuspane render %s\n", *out)
	return nil
}

// suggestCommand finds the closest known command within a small edit
// distance, for typo hints on unknown subcommands.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, c := range commands {
		if d := levenshtein.ComputeDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
