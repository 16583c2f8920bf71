package commands

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/cmd/enbeet/nbtutil"
	"github.com/devmattrick/enbeet/codec"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

// NewConvertCommand returns a cli.Command for "enbeet convert".
func NewConvertCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "convert",
		Usage:     "Convert a JSON object to an NBT file.",
		UsageText: `enbeet convert [options] in.json out.nbt`,
		Description: `The convert command builds an NBT document from a JSON object.

Integers become Int, or Long if they don't fit in 32 bits, other numbers
become Double, booleans become Byte and arrays become lists.

$ enbeet convert -c zstd --name Data level.json level.dat`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Usage:   "compression of the output: gzip, zlib, zstd, lz4 or none.",
				Value:   codec.Gzip.String(),
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "name of the root compound.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) (err error) {
		if cmd.NArg() != 2 {
			return errors.New(cmd.UsageText)
		}

		compression, err := codec.ParseCompression(cmd.String("compression"))
		if err != nil {
			return err
		}

		in, err := nbtutil.OpenInput(cmd.Args().Get(0))
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, in.Close())
		}()

		c, err := nbtutil.ParseJSON(in)
		if err != nil {
			return err
		}
		if name := cmd.String("name"); name != "" {
			c.SetName(name)
		}

		return nbtutil.EncodeFile(cmd.Args().Get(1), c, codec.WithCompression(compression))
	}

	return &cmd
}
