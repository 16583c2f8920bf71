package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp creates the enbeet CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "enbeet",
		Usage: "Inspect and convert NBT files",
		Commands: []*cli.Command{
			NewDumpCommand(),
			NewConvertCommand(),
			NewRecompressCommand(),
			NewCheckCommand(),
			NewStoreCommand(),
			NewVersionCommand(),
		},
	}
}
