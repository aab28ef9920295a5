package spacetime

import "math"

// DefaultH0 is the base affine step size passed to AdaptiveStepSize
// before scaling by sqrt(r/rs); the ray tracer uses it to shrink steps
// near the horizon and lengthen them far away.
const DefaultH0 = 0.1

// Stepper advances a State one affine step at a time under a given
// metric's geodesic equation, using classical fourth-order Runge-Kutta.
// It is a stateless function object: the same Stepper value can be shared
// by any number of goroutines.
type Stepper struct {
	Metric Schwarzschild
}

// NewStepper returns a Stepper for the given metric.
func NewStepper(metric Schwarzschild) Stepper {
	return Stepper{Metric: metric}
}

// Step advances state by one affine step of size h using RK4, then
// reflects the polar angle back into [0, pi] if the step carried it past a
// pole. It does not re-project the null condition; drift is left to the
// caller to monitor.
func (st Stepper) Step(state State, h float64) State {
	k1 := st.Metric.Derivative(state)
	k2 := st.Metric.Derivative(Add(state, Scale(k1, 0.5*h)))
	k3 := st.Metric.Derivative(Add(state, Scale(k2, 0.5*h)))
	k4 := st.Metric.Derivative(Add(state, Scale(k3, h)))

	sum := Add(Add(k1, Scale(k2, 2)), Add(Scale(k3, 2), k4))
	next := Add(state, Scale(sum, h/6))

	return ReflectPolar(next)
}

// AdaptiveStepSize returns h = h0 * sqrt(r / rs), the step-size rule the
// ray tracer applies before every call to Step: steps shrink near the
// horizon and grow in the far field.
func AdaptiveStepSize(r, rs, h0 float64) float64 {
	return h0 * math.Sqrt(r/rs)
}
