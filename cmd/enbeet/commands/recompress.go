package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/cmd/enbeet/nbtutil"
	"github.com/devmattrick/enbeet/codec"
	"github.com/urfave/cli/v3"
)

// NewRecompressCommand returns a cli.Command for "enbeet recompress".
func NewRecompressCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "recompress",
		Usage:     "Rewrite an NBT file with another compression.",
		UsageText: `enbeet recompress -c compression in out`,
		Description: `The recompress command decodes an NBT file and writes it back
with the selected compression. The input compression is detected.

$ enbeet recompress -c zstd level.dat level.dat.zst`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "compression",
				Aliases:  []string{"c"},
				Usage:    "compression of the output: gzip, zlib, zstd, lz4 or none.",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "level",
				Usage: "compression level, for gzip, zlib and zstd.",
				Value: -1,
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() != 2 {
			return errors.New(cmd.UsageText)
		}

		to, err := codec.ParseCompression(cmd.String("compression"))
		if err != nil {
			return err
		}

		c, from, err := nbtutil.DecodeFile(cmd.Args().Get(0))
		if err != nil {
			return err
		}

		out := cmd.Args().Get(1)
		err = nbtutil.EncodeFile(out, c,
			codec.WithCompression(to),
			codec.WithCompressionLevel(cmd.Int("level")),
		)
		if err != nil {
			return err
		}

		if out != nbtutil.Stdio {
			_, _ = fmt.Fprintf(cmd.Root().Writer, "%s -> %s\n", from, to)
		}
		return nil
	}

	return &cmd
}
