package quickswipe

import (
	"math"
	"time"
)

// rapidDecelerationFactor: a sample this much slower than the previous one
// counts as a deliberate stop before the first pause of a gesture.
const rapidDecelerationFactor = 0.6

// PauseListener is told when the motion pause state flips.
type PauseListener interface {
	OnMotionPauseChanged(paused bool)
}

// PauseConfig holds the speed thresholds (pixels per millisecond) of the
// motion pause detector.
type PauseConfig struct {
	SpeedVerySlow     float64       `env:"SPEED_VERY_SLOW"     envDefault:"0.0855"`
	SpeedSomewhatFast float64       `env:"SPEED_SOMEWHAT_FAST" envDefault:"0.855"`
	SpeedFast         float64       `env:"SPEED_FAST"          envDefault:"1.5"`
	ForcePauseTimeout time.Duration `env:"FORCE_PAUSE_TIMEOUT" envDefault:"300ms"`
}

// DefaultPauseConfig returns the thresholds used when no environment is
// loaded.
func DefaultPauseConfig() PauseConfig {
	return PauseConfig{
		SpeedVerySlow:     0.0855,
		SpeedSomewhatFast: 0.855,
		SpeedFast:         1.5,
		ForcePauseTimeout: 300 * time.Millisecond,
	}
}

// MotionPauseDetector watches a 1D displacement signal and reports when the
// user deliberately pauses mid-gesture. A gesture that stops producing samples
// for ForcePauseTimeout is treated as paused.
type MotionPauseDetector struct {
	cfg        PauseConfig
	listener   PauseListener
	forcePause TimerSlot

	prevPosition    float64
	prevVelocity    float64
	prevTime        int64
	hasPrevTime     bool
	hasPrevVelocity bool

	paused        bool
	hasEverPaused bool
	disallow      bool
}

// NewMotionPauseDetector returns a detector whose force-pause alarm runs on
// sched.
func NewMotionPauseDetector(cfg PauseConfig, sched Scheduler) *MotionPauseDetector {
	return &MotionPauseDetector{cfg: cfg, forcePause: NewTimerSlot(sched)}
}

// SetOnMotionPauseListener replaces the listener. Nil disables notifications.
func (d *MotionPauseDetector) SetOnMotionPauseListener(l PauseListener) {
	d.listener = l
}

// SetDisallowPause gates the detector; while disallowed it never reports a
// pause and an active pause is released.
func (d *MotionPauseDetector) SetDisallowPause(disallow bool) {
	d.disallow = disallow
	d.updatePaused(d.paused)
}

// AddPosition feeds one displacement sample taken at timeMs.
func (d *MotionPauseDetector) AddPosition(position float64, timeMs int64) {
	d.forcePause.Schedule(d.cfg.ForcePauseTimeout, func() { d.updatePaused(true) })
	if d.hasPrevTime {
		dt := max(timeMs-d.prevTime, 1)
		velocity := (position - d.prevPosition) / float64(dt)
		if d.hasPrevVelocity {
			d.checkMotionPaused(velocity, d.prevVelocity)
		}
		d.prevVelocity = velocity
		d.hasPrevVelocity = true
	}
	d.prevTime = timeMs
	d.prevPosition = position
	d.hasPrevTime = true
}

func (d *MotionPauseDetector) checkMotionPaused(velocity, prevVelocity float64) {
	speed := math.Abs(velocity)
	prevSpeed := math.Abs(prevVelocity)
	var paused bool
	switch {
	case d.paused:
		// Stay paused until the user clearly accelerates again.
		paused = speed < d.cfg.SpeedFast || speed < prevSpeed
	case (velocity < 0) != (prevVelocity < 0):
		paused = false
	default:
		paused = speed < d.cfg.SpeedVerySlow && prevSpeed < d.cfg.SpeedVerySlow
		if !paused && !d.hasEverPaused {
			rapidDecel := speed < prevSpeed*rapidDecelerationFactor
			paused = rapidDecel && speed < d.cfg.SpeedSomewhatFast
		}
	}
	d.updatePaused(paused)
}

func (d *MotionPauseDetector) updatePaused(paused bool) {
	if d.disallow {
		paused = false
	}
	if d.paused == paused {
		return
	}
	d.paused = paused
	if paused {
		d.hasEverPaused = true
	}
	if d.listener != nil {
		d.listener.OnMotionPauseChanged(paused)
	}
}

// IsPaused reports the current pause state.
func (d *MotionPauseDetector) IsPaused() bool {
	return d.paused
}

// Clear drops the sample history and the force-pause alarm. Listeners are
// not notified.
func (d *MotionPauseDetector) Clear() {
	d.hasPrevTime = false
	d.hasPrevVelocity = false
	d.paused = false
	d.hasEverPaused = false
	d.forcePause.Cancel()
}
