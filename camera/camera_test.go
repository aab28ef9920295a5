package camera

import (
	"math"
	"testing"

	"github.com/bob-anderson-ok/schwarzschildray/units"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func testRs() float64 {
	return units.SchwarzschildRadius(units.SolarMasses(10))
}

func TestNewScalesObserverRadiusOnce(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 75, 45, 800, 600)
	want := 100 * rs
	if !almostEqual(c.RObs, want, 1e-6) {
		t.Errorf("RObs = %v, want %v", c.RObs, want)
	}
}

func TestInclinationMapsToThetaObs(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 90, 45, 800, 600)
	if !almostEqual(c.ThetaObs, 0, 1e-9) {
		t.Errorf("ThetaObs at inclination=90 = %v, want 0 (looking down the pole)", c.ThetaObs)
	}
}

func TestInclinationZeroGivesEquatorialThetaObs(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 0, 45, 800, 600)
	want := math.Pi / 2
	if !almostEqual(c.ThetaObs, want, 1e-9) {
		t.Errorf("ThetaObs at inclination=0 = %v, want %v", c.ThetaObs, want)
	}
}

func TestFovVScalesByAspectRatio(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 75, 45, 800, 600)
	wantFovH := 45 * math.Pi / 180
	wantFovV := wantFovH * 600.0 / 800.0
	if !almostEqual(c.FovH, wantFovH, 1e-9) {
		t.Errorf("FovH = %v, want %v", c.FovH, wantFovH)
	}
	if !almostEqual(c.FovV, wantFovV, 1e-9) {
		t.Errorf("FovV = %v, want %v", c.FovV, wantFovV)
	}
}

func TestImpactParametersCenterPixelNearZero(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 75, 45, 800, 600)
	alpha, beta := c.ImpactParameters(400, 300)
	if math.Abs(alpha) > 1e-6*c.RObs || math.Abs(beta) > 1e-6*c.RObs {
		t.Errorf("center pixel impact parameters = (%v, %v), want ~(0, 0)", alpha, beta)
	}
}

func TestImpactParametersMatchClosedForm(t *testing.T) {
	rs := testRs()
	w, h := 800, 600
	c := New(rs, 100, 75, 45, w, h)
	for _, i := range []int{0, 1, 399, 400, 799} {
		alpha, _ := c.ImpactParameters(i, 300)
		want := ((float64(i) - float64(w)/2) / float64(w)) * c.FovH * c.RObs
		if !almostEqual(alpha, want, 1e-6) {
			t.Errorf("alpha(i=%d) = %v, want %v", i, alpha, want)
		}
	}
}

func TestInitialStateNullCondition(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 75, 45, 800, 600)
	for _, i := range []int{0, 200, 400, 600, 799} {
		for _, j := range []int{0, 150, 300, 450, 599} {
			alpha, beta := c.ImpactParameters(i, j)
			s := c.InitialState(alpha, beta)
			f := 1 - rs/c.RObs
			residual := -f*s.Ut*s.Ut + s.Ur*s.Ur/f + c.RObs*c.RObs*s.Utheta*s.Utheta +
				c.RObs*c.RObs*math.Sin(c.ThetaObs)*math.Sin(c.ThetaObs)*s.Uphi*s.Uphi
			if math.Abs(residual) > 1e-6 {
				t.Errorf("pixel (%d,%d): null residual = %v, want ~0", i, j, residual)
			}
		}
	}
}

func TestInitialStateUrIsInbound(t *testing.T) {
	rs := testRs()
	c := New(rs, 100, 75, 45, 800, 600)
	s := c.InitialState(0, 0)
	if s.Ur > 0 {
		t.Errorf("Ur = %v, want <= 0 (inbound)", s.Ur)
	}
}
