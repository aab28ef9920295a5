package spacetime

import "math"

// Schwarzschild is the non-rotating black hole metric, parameterised only
// by its Schwarzschild radius. It is immutable and safe to share by value
// or pointer across any number of goroutines.
type Schwarzschild struct {
	Rs float64
}

// NewSchwarzschild returns the metric for a black hole with Schwarzschild
// radius rs (metres).
func NewSchwarzschild(rs float64) Schwarzschild {
	return Schwarzschild{Rs: rs}
}

// christoffels holds the nine non-zero Christoffel symbols of the
// Schwarzschild metric at a given (r, theta). When r <= Rs all nine
// symbols, diverging or not, are reported as zero: the metric does not decide
// termination, it just refuses to produce infinities, leaving the horizon
// check to the integrator's caller.
type christoffels struct {
	tTr                    float64 // Gamma^t_tr
	rTt, rRr, rThTh, rPhPh float64 // Gamma^r_tt, Gamma^r_rr, Gamma^r_thth, Gamma^r_phph
	thRTh, thPhPh          float64 // Gamma^th_rth, Gamma^th_phph
	phRPh, phThPh          float64 // Gamma^ph_rph, Gamma^ph_thph
}

func (m Schwarzschild) christoffelsAt(r, theta float64) christoffels {
	if r <= m.Rs {
		return christoffels{}
	}
	rs := m.Rs
	var c christoffels
	c.tTr = rs / (2 * r * (r - rs))
	c.rTt = rs * (r - rs) / (2 * r * r * r)
	c.rRr = -rs / (2 * r * (r - rs))
	c.rThTh = -(r - rs)
	sinTheta := math.Sin(theta)
	c.rPhPh = -(r - rs) * sinTheta * sinTheta
	c.thRTh = 1 / r
	cosTheta := math.Cos(theta)
	c.thPhPh = -sinTheta * cosTheta
	c.phRPh = 1 / r
	if sinTheta != 0 {
		c.phThPh = cosTheta / sinTheta
	}
	return c
}

// Derivative evaluates the geodesic right-hand side f(s) = ds/dLambda at
// state s: the position derivatives are just the current four-velocity,
// and the four-velocity derivatives are a^mu = -Gamma^mu_{alpha beta} u^alpha
// u^beta, with symmetric off-diagonal pairs doubled.
func (m Schwarzschild) Derivative(s State) State {
	c := m.christoffelsAt(s.R, s.Theta)

	at := -2 * c.tTr * s.Ut * s.Ur
	ar := -(c.rTt*s.Ut*s.Ut + c.rRr*s.Ur*s.Ur + c.rThTh*s.Utheta*s.Utheta + c.rPhPh*s.Uphi*s.Uphi)
	ath := -(2*c.thRTh*s.Ur*s.Utheta + c.thPhPh*s.Uphi*s.Uphi)
	aph := -(2*c.phRPh*s.Ur*s.Uphi + 2*c.phThPh*s.Utheta*s.Uphi)

	return State{
		T: s.Ut, R: s.Ur, Theta: s.Utheta, Phi: s.Uphi,
		Ut: at, Ur: ar, Utheta: ath, Uphi: aph,
	}
}

// NullResidual evaluates g_munu u^mu u^nu for diagnostic purposes: it
// should be ~0 for any valid photon state. The integrator never consults
// this; it exists for tests and for callers who want to monitor drift.
func (m Schwarzschild) NullResidual(s State) float64 {
	f := 1 - m.Rs/s.R
	sinTheta := math.Sin(s.Theta)
	return -f*s.Ut*s.Ut + s.Ur*s.Ur/f + s.R*s.R*s.Utheta*s.Utheta + s.R*s.R*sinTheta*sinTheta*s.Uphi*s.Uphi
}
