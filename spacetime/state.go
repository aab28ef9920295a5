// Package spacetime implements the Schwarzschild metric's geodesic
// right-hand side and an RK4 integrator for stepping a photon's
// world-line through it.
package spacetime

import "math"

// State is the eight-dimensional world-line state of a photon in
// Schwarzschild-Droste coordinates: position (T, R, Theta, Phi) and
// four-velocity (Ut, Ur, Utheta, Uphi), both parameterised by the photon's
// affine parameter. It is a pure value; every operation below produces a
// new State rather than mutating one in place.
//
// A Derivative is represented by the same type: its T/R/Theta/Phi fields
// hold d(position)/dLambda (i.e. the four-velocity components) and its
// Ut/Ur/Utheta/Uphi fields hold d(four-velocity)/dLambda (the four
// accelerations).
type State struct {
	T, R, Theta, Phi      float64
	Ut, Ur, Utheta, Uphi  float64
}

// Add returns the component-wise sum of two states (or a state and a
// derivative, which share a representation).
func Add(a, b State) State {
	return State{
		T: a.T + b.T, R: a.R + b.R, Theta: a.Theta + b.Theta, Phi: a.Phi + b.Phi,
		Ut: a.Ut + b.Ut, Ur: a.Ur + b.Ur, Utheta: a.Utheta + b.Utheta, Uphi: a.Uphi + b.Uphi,
	}
}

// Scale returns a copy of s with every component multiplied by f.
func Scale(s State, f float64) State {
	return State{
		T: s.T * f, R: s.R * f, Theta: s.Theta * f, Phi: s.Phi * f,
		Ut: s.Ut * f, Ur: s.Ur * f, Utheta: s.Utheta * f, Uphi: s.Uphi * f,
	}
}

// ReflectPolar enforces Theta in [0, pi] by reflecting across a pole and
// flipping the sign of Utheta, exactly compensating the reflection so the
// geodesic is preserved. It is idempotent once Theta is in range.
func ReflectPolar(s State) State {
	for s.Theta < 0 || s.Theta > math.Pi {
		if s.Theta < 0 {
			s.Theta = -s.Theta
			s.Utheta = -s.Utheta
		}
		if s.Theta > math.Pi {
			s.Theta = 2*math.Pi - s.Theta
			s.Utheta = -s.Utheta
		}
	}
	return s
}
