package widget

// Config carries the widget metadata the upstream generator used to
// substitute into the script template. Callers populate it from flags or a
// manifest and hand it to the renderer at construction time.
type Config struct {
	Title           string
	Description     string
	Author          string
	RefreshInterval string
	OutputFile      string
}

// Defaults returns the placeholder values a freshly scaffolded widget ships
// with, until the author fills in real ones.
func Defaults() Config {
	return Config{
		Title:           "Status Widget",
		Description:     "Sample status widget",
		Author:          "statuspane",
		RefreshInterval: "30s",
	}
}

// RefreshCommand is the shell command the dashboard runs when the user
// triggers the Refresh action: re-invoke the renderer on the same widget.
func (c Config) RefreshCommand() string {
	if c.OutputFile == "" {
		return "statuspane render"
	}
	return "statuspane render " + c.OutputFile
}
