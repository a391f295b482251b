package quickswipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "QUICKSWIPE_"

// Config holds the device-wide gesture thresholds.
type Config struct {
	TouchSlop            float64       `env:"TOUCH_SLOP"             envDefault:"24"`
	TouchSlopRatio       float64       `env:"TOUCH_SLOP_RATIO"       envDefault:"3"`
	MaxFlingVelocity     float64       `env:"MAX_FLING_VELOCITY"     envDefault:"8000"`
	SafetyNetDelay       time.Duration `env:"SAFETY_NET_DELAY"       envDefault:"100ms"`
	PauseMinDisplacement float64       `env:"PAUSE_MIN_DISPLACEMENT" envDefault:"108"`
	Pause                PauseConfig   `envPrefix:"PAUSE_"`
	Debug                bool          `env:"DEBUG"`
}

var (
	ErrInvalidTouchSlop  = errors.New("touch slop must be positive")
	ErrInvalidSlopRatio  = errors.New("touch slop ratio must be greater than 1")
	ErrInvalidFling      = errors.New("max fling velocity must be positive")
	ErrNegativeSafetyNet = errors.New("safety net delay must not be negative")
)

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() Config {
	return Config{
		TouchSlop:            24,
		TouchSlopRatio:       DefaultTouchSlopRatio,
		MaxFlingVelocity:     8000,
		SafetyNetDelay:       100 * time.Millisecond,
		PauseMinDisplacement: 108,
		Pause:                DefaultPauseConfig(),
	}
}

// LoadConfig reads QUICKSWIPE_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{Prefix: EnvPrefix})
}

// LoadConfigFrom reads the configuration from vars (keys include the
// QUICKSWIPE_ prefix) instead of the process environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	return loadConfig(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the thresholds. The slop ratio must exceed 1 so the pilfer
// radius always encloses the move distance.
func (c Config) Validate() error {
	switch {
	case c.TouchSlop <= 0:
		return ErrInvalidTouchSlop
	case c.TouchSlopRatio <= 1:
		return ErrInvalidSlopRatio
	case c.MaxFlingVelocity <= 0:
		return ErrInvalidFling
	case c.SafetyNetDelay < 0:
		return ErrNegativeSafetyNet
	}
	return nil
}

// Slop returns the move and pilfer thresholds.
func (c Config) Slop() Slop {
	return NewSlop(c.TouchSlop, c.TouchSlopRatio)
}
