package cli

import (
	"fmt"

	"github.com/lcrow/almanac"
)

// Flags for the `times` command line command, for `go-flags` to parse
// command line args into.
type TimesCommand struct {
	Place string `short:"p" long:"place" description:"the configured place to compute for" value-name:"<name>"`
	Lat   string `long:"lat" description:"latitude in degrees, overriding any place" value-name:"<degrees>"`
	Lon   string `long:"lon" description:"longitude in degrees, overriding any place" value-name:"<degrees>"`

	On string `short:"o" long:"on" description:"the date to compute for (default: today)" value-name:"<yyyy-mm-dd>"`

	Twilight bool `short:"t" long:"twilight" description:"also show the twilight boundaries"`

	JSON bool `short:"j" long:"json" description:"output as JSON"`
}

// Executes the times command.
// (This gets called by `go-flags` when `times` is provided on the command
// line)
func (command *TimesCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	obs, err := resolveObserver(cfg, command.Place, command.Lat, command.Lon)
	if err != nil {
		return err
	}
	when, err := resolveWhen(command.On, "", obs.loc)
	if err != nil {
		return err
	}

	times := almanac.SunTimesFor(obs.coords, when)

	if command.JSON {
		if !command.Twilight {
			return printJSON(times)
		}
		return printJSON(struct {
			almanac.SunTimes
			Civil        almanac.Twilight
			Nautical     almanac.Twilight
			Astronomical almanac.Twilight
		}{
			SunTimes:     times,
			Civil:        almanac.TwilightFor(obs.coords, when, almanac.TwilightCivil),
			Nautical:     almanac.TwilightFor(obs.coords, when, almanac.TwilightNautical),
			Astronomical: almanac.TwilightFor(obs.coords, when, almanac.TwilightAstronomical),
		})
	}

	fmt.Printf("sun times for %s on %s:\n", obs.name, when.Format("2006-01-02"))
	switch {
	case times.PolarNight:
		fmt.Println("  polar night, the sun stays below the horizon")
	case times.MidnightSun:
		fmt.Println("  midnight sun, the sun stays above the horizon")
	default:
		fmt.Printf("  sunrise:    %s\n", clock(times.Sunrise))
		fmt.Printf("  sunset:     %s\n", clock(times.Sunset))
		fmt.Printf("  day length: %s\n", dayLength(times.DayLength))
	}
	fmt.Printf("  solar noon: %s\n", clock(times.SolarNoon))
	fmt.Printf("  equation of time: %+.1f min\n", times.EquationOfTime)

	if command.Twilight {
		for _, kind := range []almanac.TwilightKind{
			almanac.TwilightCivil,
			almanac.TwilightNautical,
			almanac.TwilightAstronomical,
		} {
			tw := almanac.TwilightFor(obs.coords, when, kind)
			switch {
			case tw.SunAlwaysAbove:
				fmt.Printf("  %-22s bright all day\n", kind.String()+" twilight:")
			case tw.SunAlwaysBelow:
				fmt.Printf("  %-22s dark all day\n", kind.String()+" twilight:")
			default:
				fmt.Printf("  %-22s %s - %s\n", kind.String()+" twilight:", clock(tw.Dawn), clock(tw.Dusk))
			}
		}
	}

	return nil
}
