package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

const libraryPath = "github.com/devmattrick/enbeet"

// NewVersionCommand returns a cli.Command for "enbeet version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows enbeet library and CLI versions",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer

			info, ok := debug.ReadBuildInfo()
			if !ok {
				_, err := fmt.Fprintln(w, "version not available: binary built without module support")
				return err
			}

			_, err := fmt.Fprintf(w, "enbeet %v\nenbeet CLI %v\n", libraryVersion(info), info.Main.Version)
			return err
		},
	}
}

func libraryVersion(info *debug.BuildInfo) string {
	for _, mod := range info.Deps {
		if mod.Path != libraryPath {
			continue
		}
		// a replace directive means a local checkout
		if mod.Replace != nil {
			return "(devel)"
		}
		return mod.Version
	}
	return "unknown"
}
