package astro

import (
	"math"
	"time"
)

// Phase names in cycle order. The four principal phases each own a narrow
// band (0.05 of the cycle, about a day and a half) centered on their exact
// moment; the transitional names fill the gaps between them.
const (
	PhaseNew            = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFull           = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// MeanElongation returns the Moon's mean elongation from the Sun in
// degrees, normalized to [0, 360). 0 is new moon, 180 full moon.
func MeanElongation(t time.Time) float64 {
	T := JulianCenturies(JulianDate(t))
	return lunarArgsAt(T).D
}

// PhaseFraction maps an elongation in degrees to the fraction of the
// synodic cycle completed, in [0, 1).
func PhaseFraction(elongationDeg float64) float64 {
	return Normalize360(elongationDeg) / 360
}

// Illumination returns the illuminated fraction of the lunar disk as a
// whole-number percentage, treating the phase angle as 180 degrees minus
// the elongation.
func Illumination(elongationDeg float64) float64 {
	return math.Round((1 - math.Cos(deg2rad(elongationDeg))) / 2 * 100)
}

// PhaseName returns the common name for a point in the synodic cycle.
func PhaseName(fraction float64) string {
	switch {
	case fraction < 0.025 || fraction >= 0.975:
		return PhaseNew
	case fraction < 0.225:
		return PhaseWaxingCrescent
	case fraction < 0.275:
		return PhaseFirstQuarter
	case fraction < 0.475:
		return PhaseWaxingGibbous
	case fraction < 0.525:
		return PhaseFull
	case fraction < 0.725:
		return PhaseWaningGibbous
	case fraction < 0.775:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}
