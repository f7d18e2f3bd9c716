package almanac_test

import (
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/lcrow/almanac"
)

func within(a, b time.Time, tol time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestSunTimesFor(t *testing.T) {
	// Boulder on the 2024 June solstice; NOAA says 05:31 / 20:32 MDT.
	mdt := time.FixedZone("MDT", -6*3600)
	boulder := almanac.Coordinates{Latitude: 40.0, Longitude: -105.0}

	st := almanac.SunTimesFor(boulder, time.Date(2024, 6, 20, 0, 0, 0, 0, mdt))

	if st.PolarNight || st.MidnightSun {
		t.Fatal("Boulder is not polar")
	}
	if want := time.Date(2024, 6, 20, 5, 31, 20, 0, mdt); !within(st.Sunrise, want, 2*time.Second) {
		t.Errorf("sunrise = %v, want %v", st.Sunrise, want)
	}
	if want := time.Date(2024, 6, 20, 20, 32, 12, 0, mdt); !within(st.Sunset, want, 2*time.Second) {
		t.Errorf("sunset = %v, want %v", st.Sunset, want)
	}
	if want := time.Date(2024, 6, 20, 13, 1, 46, 0, mdt); !within(st.SolarNoon, want, 2*time.Second) {
		t.Errorf("solar noon = %v, want %v", st.SolarNoon, want)
	}
	if !approx(st.DayLength, 15.014, 0.002) {
		t.Errorf("day length = %v, want ~15.014", st.DayLength)
	}
	if !approx(st.EquationOfTime, -1.76, 0.05) {
		t.Errorf("equation of time = %v, want ~-1.76", st.EquationOfTime)
	}
}

func TestSunTimesForPolarLatitudes(t *testing.T) {
	longyearbyen := almanac.Coordinates{Latitude: 78.22, Longitude: 15.64}

	june := almanac.SunTimesFor(longyearbyen,
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600)))
	if !june.MidnightSun {
		t.Error("June at 78N: want midnight sun")
	}
	if june.PolarNight {
		t.Error("June at 78N: PolarNight must not be set")
	}
	if !june.Sunrise.IsZero() || !june.Sunset.IsZero() {
		t.Error("under the midnight sun there is no sunrise or sunset")
	}
	if june.SolarNoon.IsZero() {
		t.Error("solar noon is still defined under the midnight sun")
	}
	if june.DayLength != 0 {
		t.Errorf("day length = %v, want 0 when no crossings occur", june.DayLength)
	}

	december := almanac.SunTimesFor(longyearbyen,
		time.Date(2024, 12, 21, 0, 0, 0, 0, time.FixedZone("CET", 3600)))
	if !december.PolarNight {
		t.Error("December at 78N: want polar night")
	}
	if december.MidnightSun {
		t.Error("December at 78N: MidnightSun must not be set")
	}
}

func TestSunTimesAgreeWithSunPositions(t *testing.T) {
	// At the computed sunrise and sunset instants the position pipeline
	// must put the sun at the official horizon, give or take the small
	// internal differences between the two paths.
	for _, tc := range []struct {
		name string
		loc  almanac.Coordinates
		date time.Time
	}{
		{"Boulder solstice", almanac.Coordinates{Latitude: 40, Longitude: -105},
			time.Date(2024, 6, 20, 0, 0, 0, 0, time.FixedZone("MDT", -6*3600))},
		{"Greenwich equinox", almanac.Coordinates{Latitude: 51.4779, Longitude: -0.0015},
			time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"Sydney summer", almanac.Coordinates{Latitude: -33.8688, Longitude: 151.2093},
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("AEDT", 11*3600))},
	} {
		st := almanac.SunTimesFor(tc.loc, tc.date)
		if st.PolarNight || st.MidnightSun {
			t.Fatalf("%s: unexpected polar regime", tc.name)
		}

		atRise := almanac.SunPositionAt(tc.loc, st.Sunrise)
		if !approx(atRise.Altitude, -0.833, 0.3) {
			t.Errorf("%s: altitude at sunrise = %v, want ~-0.833", tc.name, atRise.Altitude)
		}
		atSet := almanac.SunPositionAt(tc.loc, st.Sunset)
		if !approx(atSet.Altitude, -0.833, 0.3) {
			t.Errorf("%s: altitude at sunset = %v, want ~-0.833", tc.name, atSet.Altitude)
		}

		// An hour after sunrise it is day; an hour after sunset it is not.
		if !almanac.SunPositionAt(tc.loc, st.Sunrise.Add(time.Hour)).IsDay {
			t.Errorf("%s: not day an hour after sunrise", tc.name)
		}
		if almanac.SunPositionAt(tc.loc, st.Sunset.Add(time.Hour)).IsDay {
			t.Errorf("%s: still day an hour after sunset", tc.name)
		}
	}
}

func TestSunTimesAgainstReferenceImplementation(t *testing.T) {
	// Cross-check against the go-sunrise package, an independent
	// implementation of the rise/set equations.
	for _, tc := range []struct {
		name string
		loc  almanac.Coordinates
		date time.Time
	}{
		{"Boulder solstice", almanac.Coordinates{Latitude: 40, Longitude: -105},
			time.Date(2024, 6, 20, 0, 0, 0, 0, time.FixedZone("MDT", -6*3600))},
		{"Greenwich equinox", almanac.Coordinates{Latitude: 51.4779, Longitude: -0.0015},
			time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{"Sydney summer", almanac.Coordinates{Latitude: -33.8688, Longitude: 151.2093},
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("AEDT", 11*3600))},
		{"Berlin autumn", almanac.Coordinates{Latitude: 52.52, Longitude: 13.405},
			time.Date(2024, 9, 1, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600))},
		{"Reykjavik midwinter", almanac.Coordinates{Latitude: 64.1466, Longitude: -21.9426},
			time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)},
	} {
		st := almanac.SunTimesFor(tc.loc, tc.date)
		refRise, refSet := sunrise.SunriseSunset(
			tc.loc.Latitude, tc.loc.Longitude,
			tc.date.Year(), tc.date.Month(), tc.date.Day(),
		)

		if refRise.IsZero() || refSet.IsZero() {
			t.Fatalf("%s: reference reports no crossings", tc.name)
		}
		if !within(st.Sunrise, refRise, 2*time.Minute) {
			t.Errorf("%s: sunrise %v vs reference %v", tc.name, st.Sunrise.UTC(), refRise)
		}
		if !within(st.Sunset, refSet, 2*time.Minute) {
			t.Errorf("%s: sunset %v vs reference %v", tc.name, st.Sunset.UTC(), refSet)
		}
	}
}

func TestSolarNoonDriftsSlowly(t *testing.T) {
	// Solar noons are one civil day apart to within a fraction of a
	// minute; the drift accumulates into the equation of time.
	greenwich := almanac.Coordinates{Latitude: 51.4779, Longitude: -0.0015}

	date := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	prev := almanac.SunTimesFor(greenwich, date).SolarNoon
	for i := 0; i < 60; i++ {
		date = date.AddDate(0, 0, 1)
		cur := almanac.SunTimesFor(greenwich, date).SolarNoon

		gap := cur.Sub(prev)
		if gap < 24*time.Hour-2*time.Minute || gap > 24*time.Hour+2*time.Minute {
			t.Errorf("noon gap into %s = %v, want ~24h", date.Format("2006-01-02"), gap)
		}
		prev = cur
	}
}

func TestSeasonsFlipWithHemisphere(t *testing.T) {
	sydney := almanac.Coordinates{Latitude: -33.8688, Longitude: 151.2093}
	aest := time.FixedZone("AEST", 10*3600)

	summer := almanac.SunTimesFor(sydney, time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("AEDT", 11*3600)))
	winter := almanac.SunTimesFor(sydney, time.Date(2024, 6, 20, 0, 0, 0, 0, aest))

	if summer.DayLength < winter.DayLength+3 {
		t.Errorf("Sydney: summer day %vh not clearly longer than winter day %vh",
			summer.DayLength, winter.DayLength)
	}
}

func TestTwilightFor(t *testing.T) {
	greenwich := almanac.Coordinates{Latitude: 51.4779, Longitude: -0.0015}
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	st := almanac.SunTimesFor(greenwich, date)
	civil := almanac.TwilightFor(greenwich, date, almanac.TwilightCivil)
	nautical := almanac.TwilightFor(greenwich, date, almanac.TwilightNautical)
	astronomical := almanac.TwilightFor(greenwich, date, almanac.TwilightAstronomical)

	if want := time.Date(2024, 3, 20, 5, 27, 53, 0, time.UTC); !within(civil.Dawn, want, 2*time.Second) {
		t.Errorf("civil dawn = %v, want %v", civil.Dawn, want)
	}
	if want := time.Date(2024, 3, 20, 18, 46, 42, 0, time.UTC); !within(civil.Dusk, want, 2*time.Second) {
		t.Errorf("civil dusk = %v, want %v", civil.Dusk, want)
	}

	// Each grade nests inside the next darker one.
	if !astronomical.Dawn.Before(nautical.Dawn) || !nautical.Dawn.Before(civil.Dawn) {
		t.Error("dawns must come in astronomical < nautical < civil order")
	}
	if !civil.Dawn.Before(st.Sunrise) || !st.Sunset.Before(civil.Dusk) {
		t.Error("civil twilight must bracket the day")
	}
	if !civil.Dusk.Before(nautical.Dusk) || !nautical.Dusk.Before(astronomical.Dusk) {
		t.Error("dusks must come in civil < nautical < astronomical order")
	}
}

func TestTwilightForMidsummerHighLatitude(t *testing.T) {
	// Around midsummer at 51.5N the sun never reaches 18 degrees below
	// the horizon: astronomical twilight lasts all night.
	greenwich := almanac.Coordinates{Latitude: 51.4779, Longitude: -0.0015}
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	astronomical := almanac.TwilightFor(greenwich, date, almanac.TwilightAstronomical)
	if !astronomical.SunAlwaysAbove {
		t.Error("midsummer Greenwich: want SunAlwaysAbove for astronomical twilight")
	}
	if !astronomical.Dawn.IsZero() || !astronomical.Dusk.IsZero() {
		t.Error("no astronomical dawn or dusk at midsummer")
	}

	// Civil twilight still happens.
	civil := almanac.TwilightFor(greenwich, date, almanac.TwilightCivil)
	if civil.SunAlwaysAbove || civil.SunAlwaysBelow {
		t.Error("midsummer Greenwich: civil twilight still crosses")
	}
}

func TestTwilightKindString(t *testing.T) {
	if almanac.TwilightCivil.String() != "civil" ||
		almanac.TwilightNautical.String() != "nautical" ||
		almanac.TwilightAstronomical.String() != "astronomical" {
		t.Error("twilight kinds must render their conventional names")
	}
}
