// Package disk implements the Shakura-Sunyaev thin accretion disk: its
// temperature profile, the blackbody-to-RGB color it implies, and the
// relativistic corrections (gravitational redshift, Doppler beaming) that
// turn an emitted color into an observed one.
package disk

import (
	"math"

	"github.com/bob-anderson-ok/schwarzschildray/units"
)

// Disk is an immutable, geometrically flat, optically thick annulus in the
// equatorial plane of a Schwarzschild black hole. A Disk value is
// configured once per run and may be read concurrently by any number of
// goroutines.
type Disk struct {
	Rs          float64 // Schwarzschild radius, metres
	MassKg      float64 // black hole mass, kilograms
	Rin, Rout   float64 // disk inner/outer radius, metres
	MdotKgPerS  float64 // mass accretion rate, kg/s
	tStar       float64 // characteristic temperature, precomputed
}

// New builds a Disk for a black hole of the given mass (kilograms) and
// Schwarzschild radius, with a mass accretion rate implied by the given
// Eddington fraction.
func New(massKg, rs, eddingtonFraction float64) Disk {
	massSolar := massKg / units.SolarMassKg
	rin := units.ISCORadius(rs)
	rout := units.OuterDiskRadius(rs)
	mdot := units.AccretionRate(massSolar, eddingtonFraction)

	d := Disk{
		Rs:         rs,
		MassKg:     massKg,
		Rin:        rin,
		Rout:       rout,
		MdotKgPerS: mdot,
	}
	d.tStar = math.Pow(
		3*units.GravitationalConst*massKg*mdot/(8*math.Pi*units.StefanBoltzmann*rin*rin*rin),
		0.25,
	)
	return d
}

// InDisk reports whether radius r (metres) lies within the disk annulus.
func (d Disk) InDisk(r float64) bool {
	return r >= d.Rin && r <= d.Rout
}

// Temperature returns the Shakura-Sunyaev effective temperature at radius
// r (metres), in kelvin. It is zero outside [Rin, Rout] and vanishes
// continuously as r approaches Rin from above.
func (d Disk) Temperature(r float64) float64 {
	if !d.InDisk(r) {
		return 0
	}
	inner := 1 - math.Sqrt(d.Rin/r)
	if inner < 0 {
		inner = 0
	}
	return d.tStar * math.Pow(r/d.Rin, -0.75) * math.Pow(inner, 0.25)
}

// KeplerSpeed returns the Newtonian circular-orbit speed v_K = sqrt(GM/r)
// at radius r (metres), in units of c (dimensionless), consistent with the
// geometric units used by the rest of the disk and spacetime math.
func (d Disk) KeplerSpeed(r float64) float64 {
	return math.Sqrt(units.GravitationalConst*d.MassKg/r) / units.SpeedOfLight
}

// GravitationalRedshift returns z(r) = sqrt(1 - rs/r) for r > rs, and 0
// otherwise (a photon cannot escape from at or inside the horizon).
func (d Disk) GravitationalRedshift(r float64) float64 {
	if r <= d.Rs {
		return 0
	}
	return math.Sqrt(1 - d.Rs/r)
}

// DopplerFactor returns D(r, phi) = 1 / (gamma * (1 - beta*cos(phi))) for
// matter in circular Keplerian orbit at radius r, observed along a sight
// line at in-plane angle phi. As documented in the spec this uses cos(phi)
// directly as the angle between the orbital velocity and the line of
// sight: an approximation valid only near the equatorial plane, preserved
// here exactly rather than silently corrected.
func (d Disk) DopplerFactor(r, phi float64) float64 {
	beta := d.KeplerSpeed(r)
	gamma := 1 / math.Sqrt(1-beta*beta)
	return 1 / (gamma * (1 - beta*math.Cos(phi)))
}

// ObservedIntensity returns the observed linear RGB radiance at disk
// radius r, in-plane angle phi: the blackbody color at the local
// temperature, beamed and redshifted by (D*z)^4.
func (d Disk) ObservedIntensity(r, phi float64) (red, green, blue float64) {
	t := d.Temperature(r)
	er, eg, eb := BlackbodyRGB(t)

	factor := d.DopplerFactor(r, phi) * d.GravitationalRedshift(r)
	factor4 := factor * factor * factor * factor

	return clamp01(er * factor4), clamp01(eg * factor4), clamp01(eb * factor4)
}
