package activitycmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/demoapi/internal/app/appconfig"
	"exusiai.dev/demoapi/internal/core/activity"
)

type CommandDeps struct {
	fx.In

	Config          *appconfig.Config
	ActivityService *activity.Service
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "create, convert, inspect, query and patch activity documents",
		Subcommands: []*cli.Command{
			newCommand(depsFn),
			convertCommand(depsFn),
			inspectCommand(depsFn),
			getCommand(depsFn),
			setCommand(depsFn),
		},
	}
}
