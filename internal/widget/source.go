package widget

import "context"

// Sample is one observation handed to the renderer: the latest reading plus
// the history trace behind it.
type Sample struct {
	Current int
	History Series
}

// Source supplies the sample a render pass works from.
type Source interface {
	Sample(ctx context.Context) (Sample, error)
}

// StaticSource returns the same sample on every call, which keeps render
// output byte-identical across runs.
type StaticSource Sample

func (s StaticSource) Sample(context.Context) (Sample, error) {
	return Sample(s), nil
}

// DefaultSource is the placeholder trace scaffolded widgets start from.
func DefaultSource() StaticSource {
	return StaticSource{Current: 42, History: Series{30, 35, 40, 42, 45, 50, 48, 42}}
}
