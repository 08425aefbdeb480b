package vector

import "github.com/cwbudde/algo-lorentz/compute/lorentz"

// Option configures tolerance-taking comparisons.
type Option func(*config)

type config struct {
	relTol       float64
	absTol       float64
	equalNaN     bool
	tolerance    float64
	hasTolerance bool
}

func defaultConfig() config {
	return config{
		relTol: lorentz.DefaultRelTol,
		absTol: lorentz.DefaultAbsTol,
	}
}

// WithRelTol sets the relative tolerance of IsClose.
func WithRelTol(rtol float64) Option {
	return func(cfg *config) {
		if rtol >= 0 {
			cfg.relTol = rtol
		}
	}
}

// WithAbsTol sets the absolute tolerance of IsClose.
func WithAbsTol(atol float64) Option {
	return func(cfg *config) {
		if atol >= 0 {
			cfg.absTol = atol
		}
	}
}

// WithEqualNaN makes IsClose treat NaN components as equal to each other.
func WithEqualNaN(equal bool) Option {
	return func(cfg *config) {
		cfg.equalNaN = equal
	}
}

// WithTolerance sets the tolerance of IsTimelike, IsSpacelike and IsLightlike.
func WithTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol >= 0 {
			cfg.tolerance = tol
			cfg.hasTolerance = true
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) toleranceOr(def float64) float64 {
	if c.hasTolerance {
		return c.tolerance
	}
	return def
}
