package activitycmd

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/demoapi/internal/core/activity"
	"exusiai.dev/demoapi/internal/pkg/apperr"
)

type newOptions struct {
	ioOptions

	ID          int
	Key         *string
	Name        *string
	Designees   []string
	NoDesignees bool
}

func newCommand(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "write a new activity document",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "id", Usage: "activity `ID`", Required: true},
			&cli.StringFlag{Name: "key", Usage: "activity `KEY`, left null when omitted"},
			&cli.StringFlag{Name: "name", Usage: "activity `NAME`, left null when omitted"},
			&cli.StringSliceFlag{Name: "designee", Usage: "append a designee given as raw `JSON`, repeatable"},
			&cli.BoolFlag{Name: "no-designees", Usage: "write an empty designee list instead of null"},
			outputFlag(),
			toFlag(),
		},
		Action: func(c *cli.Context) error {
			opts := newOptions{
				ioOptions:   ioOptionsFrom(c),
				ID:          c.Int("id"),
				Key:         optionalString(c, "key"),
				Name:        optionalString(c, "name"),
				Designees:   c.StringSlice("designee"),
				NoDesignees: c.Bool("no-designees"),
			}
			return runNew(depsFn(), opts, streamsFrom(c))
		},
	}
}

func optionalString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	return lo.ToPtr(c.String(name))
}

func runNew(deps CommandDeps, opts newOptions, s streams) error {
	designees, err := parseDesignees(opts.Designees)
	if err != nil {
		return err
	}

	m := activity.New(opts.ID)
	m.ActivityKey = null.StringFromPtr(opts.Key)
	m.ActivityName = null.StringFromPtr(opts.Name)
	if opts.NoDesignees || len(designees) > 0 {
		m.AddDesignees(designees...)
	}

	log.Info().
		Int("activityID", m.ActivityID).
		Int("designees", m.DesigneeCount()).
		Msg("writing new activity")

	return writeDocument(deps, activity.NewSingleDocument(m), opts.ioOptions, deps.Config.DefaultFormat, s)
}

func parseDesignees(raws []string) ([]activity.Designee, error) {
	if invalid, ok := lo.Find(raws, func(raw string) bool { return !gjson.Valid(raw) }); ok {
		return nil, apperr.ErrInvalidArgument.Msg("designee is not valid JSON: %s", invalid)
	}
	return lo.Map(raws, func(raw string, _ int) activity.Designee {
		return activity.NewDesignee([]byte(raw))
	}), nil
}
