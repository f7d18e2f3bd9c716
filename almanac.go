// Package almanac computes where the Sun and Moon stand in the sky.
//
// Given a place and a time it answers the everyday questions an almanac
// answers: where is the Sun right now, when does it rise and set, what does
// the Moon look like tonight and which way should you face to see it. The
// underlying ephemeris is deliberately compact; positions are good to a
// fraction of a degree for the Sun and a couple of degrees for the Moon,
// and rise/set times to about a minute for the decades around the year
// 2000, which is plenty for planning a walk, a photo, or window blinds.
//
// All functions are pure: same arguments, same answers, no errors. Inputs
// outside the physical range (a latitude of 95, say) are not rejected; the
// trigonometry simply runs with them. Times may be in any zone, as
// instants are interpreted on the UTC timeline. Angles are degrees
// throughout: azimuth clockwise from North (0 = N, 90 = E), altitude
// positive above the horizon.
package almanac

import (
	"math"
	"time"

	"github.com/lcrow/almanac/internal/astro"
)

// Coordinates names a point on Earth's surface in degrees: latitude
// positive north, longitude positive east.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// SunPosition is the Sun's place in an observer's sky, rounded to a tenth
// of a degree.
type SunPosition struct {
	// Azimuth in [0, 360), measured from North through East.
	Azimuth float64
	// Altitude above the horizon; negative once the Sun is below it.
	Altitude float64
	// IsDay is true while the Sun's center is above -0.833 degrees, the
	// altitude at which refraction and the solar radius place sunrise.
	IsDay bool
	// Direction is the compass point nearest the azimuth, "SSW" style.
	Direction string
}

// MoonPosition is the Moon's place in an observer's sky, rounded to a
// tenth of a degree, along with the phase at the same instant.
//
// The position is geocentric. Seen from the Earth's surface the Moon can
// stand up to about a degree lower; the visibility threshold is slack
// enough to absorb that.
type MoonPosition struct {
	Azimuth   float64
	Altitude  float64
	IsVisible bool // altitude above -5 degrees
	Direction string
	Phase     MoonPhase
}

// MoonPhase describes the Moon's progress through the synodic month.
type MoonPhase struct {
	// Time the phase was computed for.
	Time time.Time
	// Phase is the fraction of the cycle completed, in [0, 1):
	// 0 new moon, 0.25 first quarter, 0.5 full, 0.75 last quarter.
	Phase float64
	// Illumination is the sunlit share of the disk in percent, 0..100.
	Illumination float64
	// Angle is the mean elongation of the Moon from the Sun in degrees.
	Angle float64
	// Waxing is true while the Moon is gaining light.
	Waxing bool
	// Name is the common name: "New Moon", "Waxing Crescent", and so on.
	Name string
}

// JulianDate converts an instant to a Julian Date, the astronomical day
// count underlying every computation in this package.
func JulianDate(t time.Time) float64 {
	return astro.JulianDate(t)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees at the
// given Julian Date: the tilt of Earth's axis against its orbit, about
// 23.44 and very slowly shrinking.
func Obliquity(jd float64) float64 {
	return astro.MeanObliquity(jd)
}

// AzimuthToDirection names the compass point nearest an azimuth:
// 0 is "N", 100 is "E", 200 is "SSW". Any real value is accepted and
// wrapped into [0, 360) first.
func AzimuthToDirection(azimuthDeg float64) string {
	return astro.AzimuthToDirection(azimuthDeg)
}

// SunPositionAt returns the Sun's position in the sky over loc at time t.
func SunPositionAt(loc Coordinates, t time.Time) SunPosition {
	hor := astro.SunHorizontal(loc.Latitude, loc.Longitude, t)
	az, alt := roundPosition(hor)

	return SunPosition{
		Azimuth:   az,
		Altitude:  alt,
		IsDay:     alt > astro.SunHorizonAltitude,
		Direction: astro.AzimuthToDirection(az),
	}
}

// MoonPositionAt returns the Moon's position in the sky over loc at time
// t, with the phase for the same instant.
func MoonPositionAt(loc Coordinates, t time.Time) MoonPosition {
	hor := astro.MoonHorizontal(loc.Latitude, loc.Longitude, t)
	az, alt := roundPosition(hor)

	return MoonPosition{
		Azimuth:   az,
		Altitude:  alt,
		IsVisible: alt > astro.MoonHorizonAltitude,
		Direction: astro.AzimuthToDirection(az),
		Phase:     MoonPhaseAt(t),
	}
}

// MoonPhaseAt returns the Moon's phase at time t.
func MoonPhaseAt(t time.Time) MoonPhase {
	elongation := astro.MeanElongation(t)
	fraction := astro.PhaseFraction(elongation)

	return MoonPhase{
		Time:         t,
		Phase:        fraction,
		Illumination: astro.Illumination(elongation),
		Angle:        elongation,
		Waxing:       fraction < 0.5,
		Name:         astro.PhaseName(fraction),
	}
}

// roundPosition rounds a sky position to a tenth of a degree. Thresholds
// like IsDay are applied to the rounded altitude so that the reported
// numbers and flags never contradict each other. Rounding can push an
// azimuth of 359.96 up to 360, which wraps back to 0.
func roundPosition(hor astro.Horizontal) (az, alt float64) {
	az = roundTenth(hor.Azimuth)
	if az >= 360 {
		az -= 360
	}
	return az, roundTenth(hor.Altitude)
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
