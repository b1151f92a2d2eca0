package activitycmd

import (
	"bytes"

	"github.com/urfave/cli/v2"

	"exusiai.dev/demoapi/internal/pkg/codec"
)

func getCommand(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a field of every activity, one raw JSON value per line",
		UsageText: "demoapi activity get --path activityName -i activity.json",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Usage: "gjson `PATH`, such as activityKey or designees.#", Required: true},
			inputFlag(),
			outputFlag(),
			fromFlag(),
		},
		Action: func(c *cli.Context) error {
			return runGet(depsFn(), ioOptionsFrom(c), c.String("path"), streamsFrom(c))
		},
	}
}

func runGet(deps CommandDeps, opts ioOptions, path string, s streams) error {
	doc, _, err := readDocument(deps, opts, s)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, m := range doc.Activities {
		r, err := deps.ActivityService.Query(m, path)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		if r.Exists() {
			buf.WriteString(r.Raw)
		} else {
			buf.WriteString("null")
		}
	}
	// the JSON format only makes writeOutput terminate the last line
	return writeOutput(opts.Output, codec.FormatJSON, buf.Bytes(), s)
}
