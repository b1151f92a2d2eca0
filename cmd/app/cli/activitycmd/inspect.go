package activitycmd

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/demoapi/internal/core/activity"
	"exusiai.dev/demoapi/internal/pkg/codec"
)

func inspectCommand(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "summarise every activity of a document as JSON",
		Flags: []cli.Flag{inputFlag(), outputFlag(), fromFlag()},
		Action: func(c *cli.Context) error {
			return runInspect(depsFn(), ioOptionsFrom(c), streamsFrom(c))
		},
	}
}

func runInspect(deps CommandDeps, opts ioOptions, s streams) error {
	doc, _, err := readDocument(deps, opts, s)
	if err != nil {
		return err
	}

	summaries := make([]*activity.Summary, 0, len(doc.Activities))
	for _, m := range doc.Activities {
		summary, err := deps.ActivityService.Summarize(m)
		if err != nil {
			return err
		}
		log.Info().
			Int("activityID", summary.ActivityID).
			Str("fingerprint", summary.Fingerprint).
			Int("designees", summary.DesigneeCount).
			Msg("inspected activity")
		summaries = append(summaries, summary)
	}

	var v any = summaries
	if !doc.List {
		v = summaries[0]
	}
	b, err := codec.FormatJSON.Marshal(v, deps.Config.PrettyJSON)
	if err != nil {
		return err
	}
	return writeOutput(opts.Output, codec.FormatJSON, b, s)
}
