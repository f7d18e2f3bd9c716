package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the standard epoch J2000.0
// (2000-01-01 12:00:00 on the UTC timeline, for our purposes).
const J2000 = 2451545.0

// JulianDate converts an instant to a Julian Date, the continuous count of
// days (and day fractions) since noon on -4712-01-01. The calendar part
// follows the Gregorian form of the standard formula; math.Floor keeps the
// century correction exact for dates before 1 CE as well.
func JulianDate(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()

	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFraction := (float64(u.Hour()) +
		float64(u.Minute())/60 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + dayFraction + b - 1524.5
}

// DaysSinceJ2000 returns the (fractional) days elapsed between the J2000.0
// epoch and the given Julian Date. Negative before the epoch.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}

// JulianCenturies returns the Julian centuries (36525 days each) elapsed
// since J2000.0, the time argument T of every polynomial in this package.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525
}
