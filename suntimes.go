package almanac

import (
	"time"

	"github.com/lcrow/almanac/internal/astro"
)

// SunTimes holds the Sun events of one calendar day at one place.
//
// The day is the calendar date of the argument passed to SunTimesFor, in
// that argument's zone, and the returned times carry the same zone. Under
// a polar regime (PolarNight or MidnightSun set) Sunrise and Sunset are
// zero values; SolarNoon and EquationOfTime are always populated.
type SunTimes struct {
	Sunrise   time.Time
	Sunset    time.Time
	SolarNoon time.Time
	// DayLength is the time from sunrise to sunset in hours. Zero when
	// the sun never crosses the horizon.
	DayLength float64
	// EquationOfTime is apparent minus mean solar time in minutes: how
	// far a sundial runs ahead of the clock on this day.
	EquationOfTime float64
	// PolarNight: the sun stays below the horizon all day.
	PolarNight bool
	// MidnightSun: the sun stays above the horizon all day.
	MidnightSun bool
}

// TwilightKind selects which definition of twilight to solve for.
type TwilightKind int

const (
	// TwilightCivil ends when the Sun reaches -6 degrees: enough light
	// for most outdoor activity.
	TwilightCivil TwilightKind = iota
	// TwilightNautical ends at -12 degrees: horizon still visible at sea.
	TwilightNautical
	// TwilightAstronomical ends at -18 degrees: the sky is fully dark.
	TwilightAstronomical
)

// String returns the lowercase conventional name.
func (k TwilightKind) String() string {
	switch k {
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	default:
		return "civil"
	}
}

func (k TwilightKind) zenith() float64 {
	switch k {
	case TwilightNautical:
		return astro.ZenithNautical
	case TwilightAstronomical:
		return astro.ZenithAstronomical
	default:
		return astro.ZenithCivil
	}
}

// Twilight holds the morning and evening twilight boundaries of one
// calendar day: Dawn is when the chosen twilight begins before sunrise,
// Dusk when it ends after sunset.
type Twilight struct {
	Dawn time.Time
	Dusk time.Time
	// At high latitudes the sun may never reach the twilight altitude:
	// either it stays above it (bright all day, no dawn or dusk) or below
	// it (the twilight grade of darkness never lifts).
	SunAlwaysAbove bool
	SunAlwaysBelow bool
}

// SunTimesFor returns sunrise, sunset and solar noon for the calendar day
// of date at loc. The date's zone decides which civil day is meant; pass a
// time in the place's local zone for the intuitive reading.
func SunTimesFor(loc Coordinates, date time.Time) SunTimes {
	ev := astro.SunCrossings(loc.Latitude, loc.Longitude, date, astro.ZenithOfficial)

	return SunTimes{
		Sunrise:        ev.Rise,
		Sunset:         ev.Set,
		SolarNoon:      ev.Noon,
		DayLength:      ev.DayLength,
		EquationOfTime: ev.EqTime,
		PolarNight:     ev.AlwaysDown,
		MidnightSun:    ev.AlwaysUp,
	}
}

// TwilightFor returns the twilight boundaries of the given kind for the
// calendar day of date at loc, under the same date-and-zone convention as
// SunTimesFor.
func TwilightFor(loc Coordinates, date time.Time, kind TwilightKind) Twilight {
	ev := astro.SunCrossings(loc.Latitude, loc.Longitude, date, kind.zenith())

	return Twilight{
		Dawn:           ev.Rise,
		Dusk:           ev.Set,
		SunAlwaysAbove: ev.AlwaysUp,
		SunAlwaysBelow: ev.AlwaysDown,
	}
}
