package plica

import "github.com/tsawler/plica/model"

// settings holds the resolved per-call pipeline options.
type settings struct {
	cfg       model.Config
	side      model.Side
	detector  string
	rotate    bool
	smartCrop bool
}

// defaultSettings returns the default pipeline settings.
func defaultSettings() settings {
	return settings{
		cfg:      model.DefaultConfig(),
		side:     model.SideAuto,
		detector: "profile",
	}
}

// Option configures a pipeline call.
type Option func(*settings)

// WithConfig replaces the algorithm configuration.
func WithConfig(cfg model.Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithSide supplies a fold side hint, skipping auto-detection.
func WithSide(side model.Side) Option {
	return func(s *settings) { s.side = side }
}

// WithDetector selects a registered fold detector by name. The default is
// "profile".
func WithDetector(name string) Option {
	return func(s *settings) { s.detector = name }
}

// WithRotation straightens the fold to vertical before splitting.
func WithRotation() Option {
	return func(s *settings) { s.rotate = true }
}

// WithSmartCrop trims each page to the detected document edges.
func WithSmartCrop() Option {
	return func(s *settings) { s.smartCrop = true }
}

func resolve(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
