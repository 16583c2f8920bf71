package commands

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/cmd/enbeet/nbtutil"
	"github.com/urfave/cli/v3"
)

// NewCheckCommand returns a cli.Command for "enbeet check".
func NewCheckCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "check",
		Usage:     "Verify that NBT files decode.",
		UsageText: `enbeet check [options] file...`,
		Description: `The check command decodes every given file and reports the ones
that fail. It exits with an error if at least one file is invalid.

$ enbeet check region/*.nbt`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "number of files decoded concurrently.",
				Value:   runtime.NumCPU(),
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() == 0 {
			return errors.New(cmd.UsageText)
		}

		results, err := nbtutil.CheckFiles(ctx, cmd.Args().Slice(), cmd.Int("jobs"))
		if err != nil {
			return err
		}

		return nbtutil.WriteCheckReport(cmd.Root().Writer, results)
	}

	return &cmd
}
