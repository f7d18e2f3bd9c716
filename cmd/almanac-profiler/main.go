// Command almanac-profiler sweeps a date range and compares the almanac's
// sunrise/sunset solver against the go-sunrise library as an independent
// reference, printing error statistics and optionally a per-day CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/lcrow/almanac"
	"github.com/lcrow/almanac/internal/model"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func diffMinutes(a, b time.Time) float64 {
	// If either time is zero, treat as "no data".
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}

	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes() // can be negative or positive
}

func main() {
	var (
		lat     = flag.Float64("lat", 51.4779, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", -0.0015, "longitude in degrees (east positive, west negative)")
		tzName  = flag.String("tz", "UTC", "IANA time zone name (e.g. Europe/London)")
		fromS   = flag.String("from", "", "start date YYYY-MM-DD (default: Jan 1 of the current year)")
		toS     = flag.String("to", "", "end date YYYY-MM-DD inclusive (default: Dec 31 of the current year)")
		outCSV  = flag.String("outcsv", "", "optional path to write per-day error CSV")
		verbose = flag.Bool("verbose", false, "log per-day errors instead of only the summary")
	)

	flag.Parse()

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", *tzName, err)
	}

	year := time.Now().Year()
	from := model.Date{Year: year, Month: 1, Day: 1}
	to := model.Date{Year: year, Month: 12, Day: 31}
	if *fromS != "" {
		if from, err = model.FromString(*fromS); err != nil {
			log.Fatalf("invalid -from date: %v", err)
		}
	}
	if *toS != "" {
		if to, err = model.FromString(*toS); err != nil {
			log.Fatalf("invalid -to date: %v", err)
		}
	}
	if from.IsAfter(to) {
		log.Fatalf("-from %s is after -to %s", from.ToString(), to.ToString())
	}

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{
			"date",
			"rise_err",
			"set_err",
			"rise_signed",
			"set_signed",
			"day_length_hours",
			"polar",
		}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	coords := almanac.Coordinates{Latitude: *lat, Longitude: *lon}

	var (
		riseStats       stats
		setStats        stats
		riseSignedStats stats
		setSignedStats  stats
		polarDays       int
		polarMismatches int
	)

	for date := from; !date.IsAfter(to); date = date.Next() {
		times := almanac.SunTimesFor(coords, date.ToGotime(loc))

		refRise, refSet := sunrise.SunriseSunset(*lat, *lon, date.Year, time.Month(date.Month), date.Day)
		refRise, refSet = refRise.In(loc), refSet.In(loc)

		minePolar := times.PolarNight || times.MidnightSun
		refPolar := refRise.IsZero() && refSet.IsZero()
		if minePolar {
			polarDays++
		}
		if minePolar != refPolar {
			polarMismatches++
			if *verbose {
				log.Printf("%s: polar disagreement (ours: night=%t sun=%t, reference rise=%s set=%s)",
					date.ToString(), times.PolarNight, times.MidnightSun,
					refRise.Format("15:04"), refSet.Format("15:04"))
			}
		}

		riseErr := diffMinutes(times.Sunrise, refRise)
		setErr := diffMinutes(times.Sunset, refSet)
		riseStats.add(riseErr)
		setStats.add(setErr)

		riseSigned := diffMinutesSigned(times.Sunrise, refRise)
		setSigned := diffMinutesSigned(times.Sunset, refSet)
		riseSignedStats.add(riseSigned)
		setSignedStats.add(setSigned)

		if *verbose && !minePolar {
			fmt.Printf("%s: rise err=%.2f min (got=%s ref=%s), set err=%.2f min (got=%s ref=%s)\n",
				date.ToString(),
				riseErr, times.Sunrise.Format("15:04"), refRise.Format("15:04"),
				setErr, times.Sunset.Format("15:04"), refSet.Format("15:04"))
		}

		if outWriter != nil {
			rec := []string{
				date.ToString(),
				fmt.Sprintf("%.6f", riseErr),
				fmt.Sprintf("%.6f", setErr),
				fmt.Sprintf("%.6f", riseSigned),
				fmt.Sprintf("%.6f", setSigned),
				fmt.Sprintf("%.4f", times.DayLength),
				fmt.Sprintf("%t", minePolar),
			}
			if err := outWriter.Write(rec); err != nil {
				log.Printf("%s: failed to write outcsv: %v", date.ToString(), err)
			}
		}
	}

	days := from.DaysUntil(to) + 1

	fmt.Println("=== almanac profiler summary ===")
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("TZ:      %s\n", loc.String())
	fmt.Printf("Days:    %d (of which %d polar, %d polar disagreements)\n", days, polarDays, polarMismatches)

	if riseStats.count == 0 {
		fmt.Println("No days with a sunrise to compute stats.")
		return
	}

	fmt.Println("\nRise error (minutes):")
	fmt.Printf("  count: %d\n", riseStats.count)
	fmt.Printf("  min:   %.3f\n", riseStats.min)
	fmt.Printf("  max:   %.3f\n", riseStats.max)
	fmt.Printf("  avg:   %.3f\n", riseStats.avg())

	fmt.Println("\nSet error (minutes):")
	fmt.Printf("  count: %d\n", setStats.count)
	fmt.Printf("  min:   %.3f\n", setStats.min)
	fmt.Printf("  max:   %.3f\n", setStats.max)
	fmt.Printf("  avg:   %.3f\n", setStats.avg())

	fmt.Println("\nRise signed error (minutes, ours - reference):")
	fmt.Printf("  count: %d\n", riseSignedStats.count)
	fmt.Printf("  min:   %.3f\n", riseSignedStats.min)
	fmt.Printf("  max:   %.3f\n", riseSignedStats.max)
	fmt.Printf("  mean:  %.3f\n", riseSignedStats.avg())

	fmt.Println("\nSet signed error (minutes, ours - reference):")
	fmt.Printf("  count: %d\n", setSignedStats.count)
	fmt.Printf("  min:   %.3f\n", setSignedStats.min)
	fmt.Printf("  max:   %.3f\n", setSignedStats.max)
	fmt.Printf("  mean:  %.3f\n", setSignedStats.avg())
}
