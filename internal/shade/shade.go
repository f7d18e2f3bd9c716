// Package shade recommends how far to close window blinds given where the
// sun stands relative to each window.
//
// The model is purely geometric: a window receives the most direct light
// when the sun is low and dead ahead, none once the sun is behind the
// window's wall or below the horizon. Glass, curtains and neighboring
// buildings are the user's problem.
package shade

import "math"

// A Window is a window orientation to evaluate: Facing is the azimuth the
// window looks out at, in degrees from North.
type Window struct {
	Name   string
	Facing float64
}

// A Recommendation is the suggested closure level for one window.
type Recommendation struct {
	Window  Window
	Closure int // percent, 0 open .. 100 fully closed
}

// Closure returns the recommended blind closure in percent for a window
// facing the given azimuth, with the sun at sunAzimuth/sunAltitude
// (degrees). Zero whenever the sun is down or behind the window's wall.
func Closure(sunAzimuth, sunAltitude, facing float64) int {
	if sunAltitude <= 0 {
		return 0
	}

	offset := angularOffset(sunAzimuth, facing)
	if offset >= 90 {
		return 0
	}

	// Head-on and near the horizon is the worst glare; light from high
	// above or far off axis barely enters.
	level := math.Cos(offset*math.Pi/180) * math.Cos(sunAltitude*math.Pi/180) * 100
	return int(math.Round(level))
}

// Plan evaluates all windows for one sun position.
func Plan(sunAzimuth, sunAltitude float64, windows []Window) []Recommendation {
	recommendations := make([]Recommendation, 0, len(windows))
	for _, w := range windows {
		recommendations = append(recommendations, Recommendation{
			Window:  w,
			Closure: Closure(sunAzimuth, sunAltitude, w.Facing),
		})
	}
	return recommendations
}

// angularOffset returns the absolute angle between two azimuths, in
// degrees, in [0, 180].
func angularOffset(a, b float64) float64 {
	diff := math.Mod(a-b, 360)
	if diff < -180 {
		diff += 360
	} else if diff > 180 {
		diff -= 360
	}
	return math.Abs(diff)
}
