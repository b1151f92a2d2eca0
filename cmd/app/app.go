package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "exusiai.dev/demoapi/cmd/app/cli"
	"exusiai.dev/demoapi/cmd/app/cli/activitycmd"
	"exusiai.dev/demoapi/internal/pkg/apperr"
	"exusiai.dev/demoapi/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "demoapi",
		Usage:       "work with activity documents",
		Description: "Creates, converts, inspects and patches Activity documents stored as JSON or MessagePack. Built with Go, urfave/cli and go.uber.org/fx.",
		Version:     bininfo.Version,
		// designees are raw JSON and routinely contain commas
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			activitycmd.Command(cliapp.DepsFn[activitycmd.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Fields(apperr.Fields(err)).Msg("failed to run app")
	}
}
