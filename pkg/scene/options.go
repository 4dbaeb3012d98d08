package scene

import "github.com/go-render/whitted-raytracer/pkg/core"

// Option configures optional scene attributes at construction time.
type Option func(*Scene)

// WithBackground sets the constant background color
func WithBackground(c core.Color) Option {
	return func(s *Scene) { s.Background = c }
}

// WithEnvironment sets a direction-sampled environment; it takes
// precedence over the constant background color.
func WithEnvironment(env core.Environment) Option {
	return func(s *Scene) { s.Environment = env }
}
