// Package camera turns a pixel grid and an observer's position into the
// impact parameters and initial photon states the ray tracer integrates.
package camera

import (
	"math"

	"github.com/bob-anderson-ok/schwarzschildray/spacetime"
	"gonum.org/v1/gonum/floats"
)

// Camera is an immutable observer geometry: position, orientation, and
// field of view, plus the precomputed pixel grid used to avoid
// recomputing the impact-parameter formula inside the hot per-pixel loop.
// A Camera is built once per run by New and then only ever read, so it is
// safe to share across every rendering goroutine.
type Camera struct {
	Rs       float64 // Schwarzschild radius, metres
	RObs     float64 // observer radius, metres (already scaled by Rs)
	ThetaObs float64 // observer polar inclination, radians
	FovH     float64 // horizontal field of view, radians
	FovV     float64 // vertical field of view, radians
	Width    int
	Height   int

	alphaGrid []float64 // impact parameter alpha per column
	betaGrid  []float64 // impact parameter beta per row
}

// New builds a Camera. observerRadiusRs is the observer's distance from
// the black hole expressed as a multiple of the Schwarzschild radius; it
// is converted to metres exactly once, here, which is the only place in
// this package that multiplication happens — there is no setter that
// could be called a second time and double-scale it.
//
// inclinationDeg and fovDeg are in degrees, matching the external
// run-configuration record; everything else in this package and its
// callers works in radians.
func New(rs, observerRadiusRs, inclinationDeg, fovDeg float64, width, height int) Camera {
	thetaObs := (90 - inclinationDeg) * math.Pi / 180
	fovH := fovDeg * math.Pi / 180
	fovV := fovH * float64(height) / float64(width)

	c := Camera{
		Rs:       rs,
		RObs:     observerRadiusRs * rs,
		ThetaObs: thetaObs,
		FovH:     fovH,
		FovV:     fovV,
		Width:    width,
		Height:   height,
	}
	c.alphaGrid = impactGrid(width, fovH, c.RObs)
	c.betaGrid = impactGrid(height, fovV, c.RObs)
	return c
}

// impactGrid returns, for each pixel index i in [0, n), the impact
// parameter ((i - n/2) / n) * fov * rObs, computed once via an evenly
// spaced span rather than re-evaluated per access.
func impactGrid(n int, fov, rObs float64) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		// floats.Span needs at least two points; the formula at i=0, n=1
		// is -1/2.
		return []float64{-0.5 * fov * rObs}
	}
	grid := make([]float64, n)
	// floats.Span fills grid with n values evenly spaced over
	// [(0-n/2)/n, (n-1-n/2)/n] * fov * rObs, which is exactly the
	// pixel-index formula evaluated at every integer i.
	lo := (0 - float64(n)/2) / float64(n)
	hi := (float64(n-1) - float64(n)/2) / float64(n)
	floats.Span(grid, lo, hi)
	for i := range grid {
		grid[i] *= fov * rObs
	}
	return grid
}

// ImpactParameters returns the (alpha, beta) impact parameters for pixel
// (i, j): i indexes columns (width), j indexes rows (height).
func (c Camera) ImpactParameters(i, j int) (alpha, beta float64) {
	return c.alphaGrid[i], c.betaGrid[j]
}

// InitialState builds the photon state at the observer that will, under
// back-propagation, land on impact parameters (alpha, beta). u^r is
// negative (inbound); the max(0, ...) inside the square root absorbs
// roundoff on the null condition.
func (c Camera) InitialState(alpha, beta float64) spacetime.State {
	f := 1 - c.Rs/c.RObs
	ut := 1 / f
	utheta := beta / c.RObs
	uphi := alpha / (c.RObs * math.Sin(c.ThetaObs))

	radicand := f * (f*ut*ut - c.RObs*c.RObs*utheta*utheta - c.RObs*c.RObs*math.Sin(c.ThetaObs)*math.Sin(c.ThetaObs)*uphi*uphi)
	if radicand < 0 {
		radicand = 0
	}
	ur := -math.Sqrt(radicand)

	return spacetime.State{
		T: 0, R: c.RObs, Theta: c.ThetaObs, Phi: 0,
		Ut: ut, Ur: ur, Utheta: utheta, Uphi: uphi,
	}
}

// PixelState is a convenience combining ImpactParameters and InitialState
// for pixel (i, j).
func (c Camera) PixelState(i, j int) spacetime.State {
	alpha, beta := c.ImpactParameters(i, j)
	return c.InitialState(alpha, beta)
}
