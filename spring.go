package liquidglass

import "math"

// Default spring constants. Damping 20 against stiffness 300 sits just under
// critical (2·√300 ≈ 34.6 would be critical for unit mass), giving a fast
// approach with a small, tightly bounded overshoot.
const (
	DefaultStiffness = 300.0
	DefaultDamping   = 20.0
)

// MaxSpringDT is the largest time step the integrator accepts per Update call.
// Semi-implicit Euler diverges for large steps at the stiffnesses used here,
// so Update clamps dt to this value; frame drivers recovering from a long
// stall should expect the animation to slow rather than explode.
const MaxSpringDT = 1.0 / 30

// settleTolerance bounds both |Target−Value| and |Velocity| for Settled.
const settleTolerance = 1e-3

// Spring advances a scalar toward a target under damped harmonic motion.
// Every animated parameter of a Glass owns one Spring; they are never shared.
// All fields may be read freely; write Value/Velocity only through SnapTo so
// the two stay consistent.
//
// Stiffness and Damping must be positive. They are not validated — a
// non-positive stiffness diverges, which is a caller bug, not a runtime
// condition this package detects.
type Spring struct {
	Value     float64
	Velocity  float64
	Target    float64
	Stiffness float64
	Damping   float64
}

// NewSpring creates a spring at rest at initial, with the default stiffness
// and damping.
func NewSpring(initial float64) *Spring {
	return NewSpringFull(initial, DefaultStiffness, DefaultDamping)
}

// NewSpringFull creates a spring at rest at initial with explicit constants.
func NewSpringFull(initial, stiffness, damping float64) *Spring {
	return &Spring{
		Value:     initial,
		Target:    initial,
		Stiffness: stiffness,
		Damping:   damping,
	}
}

// SetTarget sets the value the spring accelerates toward. Takes effect on the
// next Update.
func (s *Spring) SetTarget(t float64) {
	s.Target = t
}

// SnapTo jumps the spring to v at rest: value, target, and zero velocity.
func (s *Spring) SnapTo(v float64) {
	s.Value = v
	s.Target = v
	s.Velocity = 0
}

// Update advances the spring by dt seconds using semi-implicit Euler
// integration and returns the new value. dt above MaxSpringDT is clamped.
func (s *Spring) Update(dt float64) float64 {
	if dt > MaxSpringDT {
		dt = MaxSpringDT
	}
	force := (s.Target - s.Value) * s.Stiffness
	dampingForce := s.Velocity * s.Damping
	s.Velocity += (force - dampingForce) * dt
	s.Value += s.Velocity * dt
	return s.Value
}

// Settled reports whether the spring has effectively come to rest at its
// target: both the remaining distance and the velocity are within tolerance.
// Frame drivers use this to stop scheduling updates until the next target
// change.
func (s *Spring) Settled() bool {
	return math.Abs(s.Target-s.Value) < settleTolerance &&
		math.Abs(s.Velocity) < settleTolerance
}
