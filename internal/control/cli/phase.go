package cli

import (
	"fmt"
	"time"

	"github.com/lcrow/almanac"
)

// Flags for the `phase` command line command, for `go-flags` to parse
// command line args into.
type PhaseCommand struct {
	On string `short:"o" long:"on" description:"the date to compute for (default: today)" value-name:"<yyyy-mm-dd>"`
	At string `short:"a" long:"at" description:"the clock time to compute for (default: now)" value-name:"<hh:mm>"`

	Days int `short:"n" long:"days" description:"also show this many following days" value-name:"<count>"`

	JSON bool `short:"j" long:"json" description:"output as JSON"`
}

// Executes the phase command.
// (This gets called by `go-flags` when `phase` is provided on the command
// line)
func (command *PhaseCommand) Execute(args []string) error {
	when, err := resolveWhen(command.On, command.At, time.Local)
	if err != nil {
		return err
	}
	if command.Days < 0 {
		return fmt.Errorf("the day count cannot be negative")
	}

	phases := make([]almanac.MoonPhase, 0, command.Days+1)
	for i := 0; i <= command.Days; i++ {
		phases = append(phases, almanac.MoonPhaseAt(when.AddDate(0, 0, i)))
	}

	if command.JSON {
		if command.Days == 0 {
			return printJSON(phases[0])
		}
		return printJSON(phases)
	}

	for _, phase := range phases {
		trend := "waning"
		if phase.Waxing {
			trend = "waxing"
		}
		fmt.Printf("%s  %-15s %3.0f%% illuminated, %s\n",
			phase.Time.Format("2006-01-02"), phase.Name, phase.Illumination, trend)
	}

	return nil
}
