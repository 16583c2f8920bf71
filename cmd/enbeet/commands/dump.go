package commands

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/cmd/enbeet/nbtutil"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

// NewDumpCommand returns a cli.Command for "enbeet dump".
func NewDumpCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "dump",
		Usage:     "Dump an NBT file as JSON.",
		UsageText: `enbeet dump [options] file`,
		Description: `The dump command decodes an NBT file, whatever its compression,
and outputs it as JSON. Kinds are not preserved.

By default, the JSON is sent to the standard output:

$ enbeet dump level.dat
{"Data":{...}}

Use "-" to read from the standard input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
			&cli.BoolFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "indent the output.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) (err error) {
		path := cmd.Args().First()
		if path == "" {
			return errors.New(cmd.UsageText)
		}

		c, _, err := nbtutil.DecodeFile(path)
		if err != nil {
			return err
		}

		w, err := nbtutil.CreateOutput(cmd.String("file"))
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, w.Close())
		}()

		var indent string
		if cmd.Bool("indent") {
			indent = strings.Repeat(" ", 2)
		}
		return nbtutil.DumpJSON(w, c, indent)
	}

	return &cmd
}
