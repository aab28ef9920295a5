package render

import (
	"math"

	"github.com/bob-anderson-ok/schwarzschildray/camera"
	"github.com/bob-anderson-ok/schwarzschildray/disk"
	"github.com/bob-anderson-ok/schwarzschildray/spacetime"
)

// MaxSteps is the per-pixel step budget. Hitting it never happens on a
// well-posed configuration; it is a diagnostic backstop, not a normal
// termination path.
const MaxSteps = 10000

var (
	black    = RGB{0, 0, 0}
	sentinel = RGB{1, 0, 1} // magenta: step-count exhaustion
)

// Tracer bundles everything a single pixel trace needs: the metric (via
// its stepper), the disk, the camera, and the sky. All of it is immutable
// after construction, so a Tracer value can be shared by every rendering
// goroutine without synchronization.
type Tracer struct {
	Metric  spacetime.Schwarzschild
	Stepper spacetime.Stepper
	Disk    disk.Disk
	Camera  camera.Camera
	Sky     Sky
}

// New builds a Tracer from its already-constructed components.
func New(metric spacetime.Schwarzschild, d disk.Disk, cam camera.Camera, sky Sky) Tracer {
	return Tracer{
		Metric:  metric,
		Stepper: spacetime.NewStepper(metric),
		Disk:    d,
		Camera:  cam,
		Sky:     sky,
	}
}

// TracePixel integrates the geodesic for pixel (i, j) and returns its
// observed color, checking termination events in the fixed order the
// spec requires: horizon capture, then disk intersection, then escape.
func (tr Tracer) TracePixel(i, j int) RGB {
	state := tr.Camera.PixelState(i, j)
	rs := tr.Metric.Rs
	robs := tr.Camera.RObs

	for step := 0; step < MaxSteps; step++ {
		if state.R < rs*1.001 {
			return black
		}
		if math.Abs(state.Theta-math.Pi/2) < 0.01 && tr.Disk.InDisk(state.R) {
			r, g, b := tr.Disk.ObservedIntensity(state.R, state.Phi)
			return RGB{r, g, b}
		}
		if state.R > 2*robs {
			return tr.Sky.Background(state.Theta, state.Phi)
		}

		h := spacetime.AdaptiveStepSize(state.R, rs, spacetime.DefaultH0)
		state = tr.Stepper.Step(state, h)
	}

	return sentinel
}
