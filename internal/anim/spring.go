// Package anim provides the damped spring used for every moving value in the
// menu: the selection cursor, the list and carousel scroll offsets, and the
// carousel label pop-in.
package anim

import "math"

// DefaultThreshold is the distance and speed below which a spring snaps to
// its target.
const DefaultThreshold = 0.05

// Spring is a second-order spring-damper integrated with semi-implicit Euler.
type Spring struct {
	Position  float64
	Velocity  float64
	Target    float64
	Stiffness float64
	Damping   float64
	Threshold float64
}

// NewSpring returns a spring at rest on start.
func NewSpring(start, stiffness, damping float64) *Spring {
	return &Spring{
		Position:  start,
		Target:    start,
		Stiffness: stiffness,
		Damping:   damping,
		Threshold: DefaultThreshold,
	}
}

// SetTarget retargets the spring. Velocity is kept so motion stays continuous.
func (s *Spring) SetTarget(target float64) {
	s.Target = target
}

// Snap places the spring at rest on v.
func (s *Spring) Snap(v float64) {
	s.Position = v
	s.Target = v
	s.Velocity = 0
}

// SetTuning changes stiffness and damping without disturbing the current motion.
func (s *Spring) SetTuning(stiffness, damping float64) {
	s.Stiffness = stiffness
	s.Damping = damping
}

// Update advances the spring by dt seconds and returns the new position.
func (s *Spring) Update(dt float64) float64 {
	if dt <= 0 {
		return s.Position
	}
	acc := s.Stiffness*(s.Target-s.Position) - s.Damping*s.Velocity
	s.Velocity += acc * dt
	s.Position += s.Velocity * dt
	if s.near() {
		s.Position = s.Target
		s.Velocity = 0
	}
	return s.Position
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return s.Position == s.Target && s.Velocity == 0
}

func (s *Spring) near() bool {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return math.Abs(s.Target-s.Position) < threshold && math.Abs(s.Velocity) < threshold
}
