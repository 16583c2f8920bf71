package commands

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/devmattrick/enbeet/cmd/enbeet/nbtutil"
	"github.com/devmattrick/enbeet/codec"
	"github.com/devmattrick/enbeet/store"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

// NewStoreCommand returns a cli.Command for "enbeet store" and its
// subcommands.
func NewStoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "store",
		Usage: "Manage compounds kept in a store.",
		Description: `A store is a directory holding compounds under string keys.

$ enbeet store put --db players.db steve steve.dat
$ enbeet store ls --db players.db
steve`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "path of the store directory.",
				Required: true,
			},
		},
		Commands: []*cli.Command{
			newStorePutCommand(),
			newStoreGetCommand(),
			newStoreDelCommand(),
			newStoreLsCommand(),
		},
	}
}

// withStore opens the store selected by the --db flag, runs fn and
// closes the store.
func withStore(cmd *cli.Command, fn func(s *store.Store) error) (err error) {
	s, err := store.Open(cmd.String("db"), nil)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()

	return fn(s)
}

func newStorePutCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "put",
		Usage:     "Store an NBT file under a key.",
		UsageText: `enbeet store put --db path key file`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() != 2 {
			return errors.New(cmd.UsageText)
		}

		c, _, err := nbtutil.DecodeFile(cmd.Args().Get(1))
		if err != nil {
			return err
		}

		return withStore(cmd, func(s *store.Store) error {
			return s.Put(cmd.Args().Get(0), c)
		})
	}

	return &cmd
}

func newStoreGetCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "get",
		Usage:     "Write the compound stored under a key.",
		UsageText: `enbeet store get --db path [options] key`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Usage:   "compression of the output: gzip, zlib, zstd, lz4 or none.",
				Value:   codec.Gzip.String(),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output JSON instead of NBT.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		key := cmd.Args().First()
		if key == "" {
			return errors.New(cmd.UsageText)
		}

		compression, err := codec.ParseCompression(cmd.String("compression"))
		if err != nil {
			return err
		}

		return withStore(cmd, func(s *store.Store) (err error) {
			c, err := s.Get(key)
			if err != nil {
				return err
			}

			if !cmd.Bool("json") {
				return nbtutil.EncodeFile(cmd.String("file"), c, codec.WithCompression(compression))
			}

			w, err := nbtutil.CreateOutput(cmd.String("file"))
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, w.Close())
			}()

			return nbtutil.DumpJSON(w, c, "")
		})
	}

	return &cmd
}

func newStoreDelCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "del",
		Usage:     "Delete the compounds stored under the given keys.",
		UsageText: `enbeet store del --db path key...`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() == 0 {
			return errors.New(cmd.UsageText)
		}

		return withStore(cmd, func(s *store.Store) error {
			for _, key := range cmd.Args().Slice() {
				if err := s.Delete(key); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return &cmd
}

func newStoreLsCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "ls",
		Usage:     "List the keys of the store.",
		UsageText: `enbeet store ls --db path [prefix]`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		return withStore(cmd, func(s *store.Store) error {
			keys, err := s.Keys(cmd.Args().First())
			if err != nil {
				return err
			}

			for _, k := range keys {
				if _, err := fmt.Fprintln(cmd.Root().Writer, k); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return &cmd
}
