package cli

import (
	"fmt"

	"github.com/lcrow/almanac"
)

// Flags for the `sun` command line command, for `go-flags` to parse
// command line args into.
type SunCommand struct {
	Place string `short:"p" long:"place" description:"the configured place to compute for" value-name:"<name>"`
	Lat   string `long:"lat" description:"latitude in degrees, overriding any place" value-name:"<degrees>"`
	Lon   string `long:"lon" description:"longitude in degrees, overriding any place" value-name:"<degrees>"`

	On string `short:"o" long:"on" description:"the date to compute for (default: today)" value-name:"<yyyy-mm-dd>"`
	At string `short:"a" long:"at" description:"the clock time to compute for (default: now)" value-name:"<hh:mm>"`

	JSON bool `short:"j" long:"json" description:"output as JSON"`
}

// Executes the sun command.
// (This gets called by `go-flags` when `sun` is provided on the command
// line)
func (command *SunCommand) Execute(args []string) error {
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

	position := almanac.SunPositionAt(obs.coords, when)

	if command.JSON {
		return printJSON(position)
	}

	fmt.Printf("sun over %s at %s:\n", obs.name, when.Format("2006-01-02 15:04 MST"))
	fmt.Printf("  azimuth:  %6.1f° (%s)\n", position.Azimuth, position.Direction)
	fmt.Printf("  altitude: %6.1f°\n", position.Altitude)
	if position.IsDay {
		fmt.Println("  the sun is up")
	} else {
		fmt.Println("  the sun is down")
	}

	return nil
}
