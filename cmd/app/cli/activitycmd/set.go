package activitycmd

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/demoapi/internal/core/activity"
	"exusiai.dev/demoapi/internal/pkg/apperr"
)

type setOptions struct {
	ioOptions

	Path   string
	Value  string
	Delete bool
}

func setCommand(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "patch a field of every activity and write the document back",
		UsageText: `demoapi activity set --path activityName --value '"Renamed"' -i activity.json -o activity.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "sjson `PATH`, such as activityKey or designees.-1", Required: true},
			&cli.StringFlag{Name: "value", Usage: "raw `JSON` value to set at the path"},
			&cli.BoolFlag{Name: "delete", Usage: "remove the path instead, leaving optional fields null"},
			inputFlag(),
			outputFlag(),
			fromFlag(),
			toFlag(),
		},
		Action: func(c *cli.Context) error {
			opts := setOptions{
				ioOptions: ioOptionsFrom(c),
				Path:      c.String("path"),
				Value:     c.String("value"),
				Delete:    c.Bool("delete"),
			}
			return runSet(depsFn(), opts, streamsFrom(c))
		},
	}
}

func runSet(deps CommandDeps, opts setOptions, s streams) error {
	if opts.Delete == (opts.Value != "") {
		return apperr.ErrInvalidArgument.Msg("exactly one of --value and --delete must be given")
	}

	doc, format, err := readDocument(deps, opts.ioOptions, s)
	if err != nil {
		return err
	}

	patched := make([]*activity.Model, len(doc.Activities))
	for i, m := range doc.Activities {
		if patched[i], err = deps.ActivityService.Patch(m, opts.Path, opts.Value); err != nil {
			return err
		}
	}

	log.Info().
		Str("path", opts.Path).
		Bool("delete", opts.Delete).
		Int("count", len(patched)).
		Msg("patched activity document")

	return writeDocument(deps, &activity.Document{Activities: patched, List: doc.List}, opts.ioOptions, format, s)
}
