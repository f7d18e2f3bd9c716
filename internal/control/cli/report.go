package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lcrow/almanac"
	"github.com/lcrow/almanac/internal/shade"
	"github.com/lcrow/almanac/internal/skycolor"
	"github.com/lcrow/almanac/internal/weather"
)

// Flags for the `report` command line command, for `go-flags` to parse
// command line args into.
type ReportCommand struct {
	Place string `short:"p" long:"place" description:"the configured place to report on" value-name:"<name>"`
	Lat   string `long:"lat" description:"latitude in degrees, overriding any place" value-name:"<degrees>"`
	Lon   string `long:"lon" description:"longitude in degrees, overriding any place" value-name:"<degrees>"`

	On string `short:"o" long:"on" description:"the date to report on (default: today)" value-name:"<yyyy-mm-dd>"`
	At string `short:"a" long:"at" description:"the clock time to report on (default: now)" value-name:"<hh:mm>"`

	JSON bool `short:"j" long:"json" description:"output as JSON"`
}

// A report aggregates the almanac's answers for one place and instant.
type report struct {
	Place        string
	Time         time.Time
	Sun          almanac.SunPosition
	Moon         almanac.MoonPosition
	Times        almanac.SunTimes
	Civil        almanac.Twilight
	Nautical     almanac.Twilight
	Astronomical almanac.Twilight
	Sky          skycolor.Tone
	Windows      []shade.Recommendation `json:",omitempty"`
	Conditions   *weather.Conditions    `json:",omitempty"`
	Viewing      string                 `json:",omitempty"`
}

// Executes the report command.
// (This gets called by `go-flags` when `report` is provided on the command
// line)
func (command *ReportCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	obs, err := resolveObserver(cfg, command.Place, command.Lat, command.Lon)
	if err != nil {
		return err
	}
	when, err := resolveWhen(command.On, command.At, obs.loc)
	if err != nil {
		return err
	}

	rep := report{
		Place:        obs.name,
		Time:         when,
		Sun:          almanac.SunPositionAt(obs.coords, when),
		Moon:         almanac.MoonPositionAt(obs.coords, when),
		Times:        almanac.SunTimesFor(obs.coords, when),
		Civil:        almanac.TwilightFor(obs.coords, when, almanac.TwilightCivil),
		Nautical:     almanac.TwilightFor(obs.coords, when, almanac.TwilightNautical),
		Astronomical: almanac.TwilightFor(obs.coords, when, almanac.TwilightAstronomical),
	}
	rep.Sky = skycolor.ToneAt(rep.Sun.Altitude)

	if len(cfg.Windows) > 0 {
		windows := make([]shade.Window, 0, len(cfg.Windows))
		for _, w := range cfg.Windows {
			windows = append(windows, shade.Window{Name: w.Name, Facing: w.Facing})
		}
		rep.Windows = shade.Plan(rep.Sun.Azimuth, rep.Sun.Altitude, windows)
	}

	// Weather is strictly optional; without a key (or with a failing query)
	// the report stays astronomy-only.
	if key := os.Getenv("OWM_API_KEY"); key != "" {
		handler := weather.NewHandler(obs.coords.Latitude, obs.coords.Longitude, key)
		if err := handler.Update(); err != nil {
			log.Warn().Err(err).Msg("could not retrieve weather data")
		} else if conditions, ok := handler.ConditionsAt(when); ok {
			rep.Conditions = &conditions
			rep.Viewing = conditions.Viewing()
		}
	}

	if command.JSON {
		return printJSON(rep)
	}

	fmt.Printf("almanac for %s, %s\n\n", rep.Place, when.Format("Monday 2006-01-02 15:04 MST"))

	switch {
	case rep.Times.PolarNight:
		fmt.Printf("  polar night, solar noon %s\n", clock(rep.Times.SolarNoon))
	case rep.Times.MidnightSun:
		fmt.Printf("  midnight sun, solar noon %s\n", clock(rep.Times.SolarNoon))
	default:
		fmt.Printf("  sunrise %s, solar noon %s, sunset %s (%s of daylight)\n",
			clock(rep.Times.Sunrise), clock(rep.Times.SolarNoon), clock(rep.Times.Sunset),
			dayLength(rep.Times.DayLength))
	}
	fmt.Printf("  civil twilight        %s - %s\n", clock(rep.Civil.Dawn), clock(rep.Civil.Dusk))
	fmt.Printf("  nautical twilight     %s - %s\n", clock(rep.Nautical.Dawn), clock(rep.Nautical.Dusk))
	fmt.Printf("  astronomical twilight %s - %s\n\n", clock(rep.Astronomical.Dawn), clock(rep.Astronomical.Dusk))

	upDown := func(up bool) string {
		if up {
			return "up"
		}
		return "down"
	}
	fmt.Printf("  sun:  %.1f° (%s) at %.1f°, %s\n", rep.Sun.Azimuth, rep.Sun.Direction, rep.Sun.Altitude, upDown(rep.Sun.IsDay))
	fmt.Printf("  sky:  %s %s\n", rep.Sky.Name, rep.Sky.Hex)
	fmt.Printf("  moon: %.1f° (%s) at %.1f°, %s\n", rep.Moon.Azimuth, rep.Moon.Direction, rep.Moon.Altitude, upDown(rep.Moon.IsVisible))
	trend := "waning"
	if rep.Moon.Phase.Waxing {
		trend = "waxing"
	}
	fmt.Printf("  phase: %s, %.0f%% illuminated (%s)\n", rep.Moon.Phase.Name, rep.Moon.Phase.Illumination, trend)

	if len(rep.Windows) > 0 {
		fmt.Println()
		fmt.Println("  windows:")
		for _, r := range rep.Windows {
			fmt.Printf("    %s (facing %.0f°): close to %d%%\n", r.Window.Name, r.Window.Facing, r.Closure)
		}
	}

	if rep.Conditions != nil {
		fmt.Println()
		fmt.Printf("  conditions: %s, %.1f°C, %d%% clouds, %s viewing\n",
			rep.Conditions.Info, rep.Conditions.TempC, rep.Conditions.Clouds, rep.Viewing)
	}

	return nil
}
