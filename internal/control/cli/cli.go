// Package cli provides the command-line interface for almanac.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	SunCommand     SunCommand     `command:"sun" subcommands-optional:"true"`
	MoonCommand    MoonCommand    `command:"moon" subcommands-optional:"true"`
	PhaseCommand   PhaseCommand   `command:"phase" subcommands-optional:"true"`
	TimesCommand   TimesCommand   `command:"times" subcommands-optional:"true"`
	ReportCommand  ReportCommand  `command:"report" subcommands-optional:"true"`
	ShadeCommand   ShadeCommand   `command:"shade" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
