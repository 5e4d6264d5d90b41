package core

// DefaultSampleRate is the sample rate used when no option overrides it.
// All output of this module is mono 44.1 kHz unless configured otherwise.
const DefaultSampleRate = 44100.0

// RenderConfig defines settings shared by the synthesis pipeline stages.
type RenderConfig struct {
	SampleRate float64
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns the default offline rendering configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the rendering sample rate.
func WithSampleRate(sampleRate float64) RenderOption {
	return func(cfg *RenderConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyRenderOptions applies zero or more options to the default config.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
