package cli

import (
	"fmt"

	"github.com/lcrow/almanac"
	"github.com/lcrow/almanac/internal/shade"
)

// Flags for the `shade` command line command, for `go-flags` to parse
// command line args into.
type ShadeCommand struct {
	Place string `short:"p" long:"place" description:"the configured place to compute for" value-name:"<name>"`
	Lat   string `long:"lat" description:"latitude in degrees, overriding any place" value-name:"<degrees>"`
	Lon   string `long:"lon" description:"longitude in degrees, overriding any place" value-name:"<degrees>"`

	On string `short:"o" long:"on" description:"the date to compute for (default: today)" value-name:"<yyyy-mm-dd>"`
	At string `short:"a" long:"at" description:"the clock time to compute for (default: now)" value-name:"<hh:mm>"`

	Window string `short:"w" long:"window" description:"only advise for the named window" value-name:"<name>"`

	JSON bool `short:"j" long:"json" description:"output as JSON"`
}

// Executes the shade command.
// (This gets called by `go-flags` when `shade` is provided on the command
// line)
func (command *ShadeCommand) Execute(args []string) error {
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

	var windows []shade.Window
	if command.Window != "" {
		w, err := cfg.WindowByName(command.Window)
		if err != nil {
			return err
		}
		windows = []shade.Window{{Name: w.Name, Facing: w.Facing}}
	} else {
		for _, w := range cfg.Windows {
			windows = append(windows, shade.Window{Name: w.Name, Facing: w.Facing})
		}
	}
	if len(windows) == 0 {
		return fmt.Errorf("no windows configured; add a 'windows' section to the config")
	}

	sun := almanac.SunPositionAt(obs.coords, when)
	recommendations := shade.Plan(sun.Azimuth, sun.Altitude, windows)

	if command.JSON {
		return printJSON(recommendations)
	}

	fmt.Printf("shade for %s at %s (sun at %.1f°/%.1f°):\n",
		obs.name, when.Format("2006-01-02 15:04 MST"), sun.Azimuth, sun.Altitude)
	for _, r := range recommendations {
		fmt.Printf("  %s (facing %.0f°): close to %d%%\n", r.Window.Name, r.Window.Facing, r.Closure)
	}

	return nil
}
