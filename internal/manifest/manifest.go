// Package manifest reads and writes the on-disk description of a widget.
// The manifest replaces the placeholder substitution the upstream generator
// performed on the script template: the fields that used to be spliced into
// the source now live in a small TOML file next to the widget.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/statuspane/statuspane/internal/widget"
)

// Manifest describes one widget.
type Manifest struct {
	ID     string
	Widget Fields
}

// Fields mirrors the template placeholders.
type Fields struct {
	Title           string
	Description     string
	Author          string
	RefreshInterval string `mapstructure:"refresh_interval"`
	OutputFile      string `mapstructure:"output_file"`
}

// New returns a manifest with a fresh id and placeholder fields.
func New() Manifest {
	def := widget.Defaults()
	return Manifest{
		ID: uuid.NewString(),
		Widget: Fields{
			Title:           def.Title,
			Description:     def.Description,
			Author:          def.Author,
			RefreshInterval: def.RefreshInterval,
		},
	}
}

// Load reads a widget manifest. Fields the file omits fall back to the same
// defaults a scaffolded manifest starts with; output_file defaults to the
// manifest's own path so the Refresh action round-trips.
func Load(path string) (Manifest, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	def := widget.Defaults()
	v.SetDefault("widget.title", def.Title)
	v.SetDefault("widget.description", def.Description)
	v.SetDefault("widget.author", def.Author)
	v.SetDefault("widget.refresh_interval", def.RefreshInterval)
	v.SetDefault("widget.output_file", path)

	if err := v.ReadInConfig(); err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return m, nil
}

// Save writes the manifest, creating its directory if needed.
func Save(path string, m Manifest) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir manifest dir: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("id", m.ID)
	v.Set("widget.title", m.Widget.Title)
	v.Set("widget.description", m.Widget.Description)
	v.Set("widget.author", m.Widget.Author)
	v.Set("widget.refresh_interval", m.Widget.RefreshInterval)
	v.Set("widget.output_file", m.Widget.OutputFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Config converts manifest fields into the renderer's construction config.
func (m Manifest) Config() widget.Config {
	return widget.Config{
		Title:           m.Widget.Title,
		Description:     m.Widget.Description,
		Author:          m.Widget.Author,
		RefreshInterval: m.Widget.RefreshInterval,
		OutputFile:      m.Widget.OutputFile,
	}
}
