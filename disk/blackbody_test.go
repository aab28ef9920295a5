package disk

import "testing"

func TestBlackbodyRGBZeroAtZeroTemperature(t *testing.T) {
	r, g, b := BlackbodyRGB(0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("BlackbodyRGB(0) = (%v, %v, %v), want (0, 0, 0)", r, g, b)
	}
}

func TestBlackbodyRGBNearWhiteAt6500K(t *testing.T) {
	r, g, b := BlackbodyRGB(6500)
	if r < 0.9 || g < 0.9 || b < 0.9 {
		t.Errorf("BlackbodyRGB(6500) = (%v, %v, %v), want all channels >= 0.9", r, g, b)
	}
}

func TestBlackbodyRGBChannelsAreClamped(t *testing.T) {
	temps := []float64{1, 100, 500, 1000, 3000, 6500, 10000, 40000, 1e6}
	for _, temp := range temps {
		r, g, b := BlackbodyRGB(temp)
		for name, v := range map[string]float64{"r": r, "g": g, "b": b} {
			if v < 0 || v > 1 {
				t.Errorf("BlackbodyRGB(%v).%s = %v, want in [0, 1]", temp, name, v)
			}
		}
	}
}

func TestBlackbodyRGBRedShiftsWarmAtLowTemperature(t *testing.T) {
	r, g, b := BlackbodyRGB(2000)
	if !(r >= g && g >= b) {
		t.Errorf("BlackbodyRGB(2000) = (%v, %v, %v), expected warm ordering r >= g >= b", r, g, b)
	}
}
