package activitycmd

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func convertCommand(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "re-encode an activity document into another format",
		Flags: []cli.Flag{inputFlag(), outputFlag(), fromFlag(), toFlag()},
		Action: func(c *cli.Context) error {
			return runConvert(depsFn(), ioOptionsFrom(c), streamsFrom(c))
		},
	}
}

func runConvert(deps CommandDeps, opts ioOptions, s streams) error {
	doc, from, err := readDocument(deps, opts, s)
	if err != nil {
		return err
	}

	log.Info().
		Str("from", from.String()).
		Int("count", len(doc.Activities)).
		Bool("list", doc.List).
		Msg("converting activity document")

	return writeDocument(deps, doc, opts, deps.Config.DefaultFormat, s)
}
