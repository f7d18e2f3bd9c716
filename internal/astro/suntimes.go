package astro

import (
	"math"
	"time"
)

// Zenith angles (degrees from the vertical) at which the various kinds of
// "sunrise" occur. The official value folds atmospheric refraction and the
// solar disk's radius into the geometric 90.
const (
	ZenithOfficial     = 90.833
	ZenithCivil        = 96
	ZenithNautical     = 102
	ZenithAstronomical = 108
)

// SunHorizonAltitude is the Sun-center altitude of official sunrise and
// sunset; above it counts as day.
const SunHorizonAltitude = -0.833

// MoonHorizonAltitude is the altitude below which the Moon is reported as
// out of view. Looser than the Sun's threshold to absorb the parallax this
// package does not model.
const MoonHorizonAltitude = -5.0

// DayEvents describes the Sun's crossings of one zenith threshold during a
// single calendar day.
type DayEvents struct {
	Rise      time.Time
	Set       time.Time
	Noon      time.Time
	DayLength float64 // hours between Rise and Set
	EqTime    float64 // equation of time at local noon, minutes

	// At high latitudes the Sun may never cross the threshold at all.
	AlwaysUp   bool // stays above it the whole day
	AlwaysDown bool // stays below it the whole day
}

// SunCrossings solves the NOAA rise/set equations for the given zenith on
// the calendar date of `date`. The date's Location fixes which civil day is
// meant and the zone of the returned times. Noon is always populated;
// Rise/Set only when the threshold is crossed.
func SunCrossings(latDeg, lonDeg float64, date time.Time, zenithDeg float64) DayEvents {
	loc := date.Location()
	year, month, day := date.Date()

	// Evaluate the slow-moving solar quantities once, at local noon, so
	// that declination and the equation of time are stable for the day.
	localNoon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	s := solarTermsAt(JulianDate(localNoon))

	eqTime := s.equationOfTime()
	decl := deg2rad(s.declination())
	phi := deg2rad(latDeg)

	// Minutes after 00:00 UT at which the Sun transits the meridian.
	noonMinutes := 720 - 4*lonDeg - eqTime

	ev := DayEvents{
		Noon:   clockTimeUTC(year, month, day, noonMinutes).In(loc),
		EqTime: eqTime,
	}

	cosH := (math.Cos(deg2rad(zenithDeg)) - math.Sin(phi)*math.Sin(decl)) /
		(math.Cos(phi) * math.Cos(decl))

	switch {
	case cosH > 1:
		ev.AlwaysDown = true
		return ev
	case cosH < -1:
		ev.AlwaysUp = true
		return ev
	}

	// Half-day hour angle in degrees; one degree is four minutes of time.
	H := rad2deg(math.Acos(cosH))

	ev.Rise = clockTimeUTC(year, month, day, noonMinutes-4*H).In(loc)
	ev.Set = clockTimeUTC(year, month, day, noonMinutes+4*H).In(loc)
	ev.DayLength = 8 * H / 60

	return ev
}

// clockTimeUTC builds the instant `minutes` after 00:00 UT on the given
// calendar date, rounded to the second. Values outside [0, 1440) spill
// into the neighboring days, which is what the rise/set math wants.
func clockTimeUTC(year int, month time.Month, day int, minutes float64) time.Time {
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(math.Round(minutes*60)) * time.Second)
}
