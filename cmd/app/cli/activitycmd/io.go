package activitycmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"exusiai.dev/demoapi/internal/core/activity"
	"exusiai.dev/demoapi/internal/pkg/codec"
)

const stdio = "-"

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read the document from `PATH` (- for stdin)",
		Value:   stdio,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result to `PATH` (- for stdout)",
		Value:   stdio,
	}
}

func fromFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "from",
		Usage: "input `FORMAT` (json, msgpack), inferred from the input path when omitted",
	}
}

func toFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "to",
		Usage: "output `FORMAT` (json, msgpack), inferred from the output path when omitted",
	}
}

// streams carries the process stdio so commands can be driven from tests.
type streams struct {
	in  io.Reader
	out io.Writer
}

func streamsFrom(c *cli.Context) streams {
	return streams{in: c.App.Reader, out: c.App.Writer}
}

type ioOptions struct {
	Input  string
	Output string
	From   string
	To     string
}

func ioOptionsFrom(c *cli.Context) ioOptions {
	return ioOptions{
		Input:  c.String("input"),
		Output: c.String("output"),
		From:   c.String("from"),
		To:     c.String("to"),
	}
}

// resolveFormat prefers an explicit flag value, then the extension of path, then fallback.
func resolveFormat(flagValue, path string, fallback codec.Format) (codec.Format, error) {
	if flagValue != "" {
		return codec.ParseFormat(flagValue)
	}
	return codec.FormatFromPath(path, fallback), nil
}

func readInput(path string, s streams) ([]byte, error) {
	if path == "" || path == stdio {
		b, err := io.ReadAll(s.in)
		return b, errors.Wrap(err, "failed to read document from stdin")
	}
	b, err := os.ReadFile(path)
	return b, errors.Wrapf(err, "failed to read document from %s", path)
}

func writeOutput(path string, format codec.Format, data []byte, s streams) error {
	if format == codec.FormatJSON {
		data = append(data, '\n')
	}
	if path == "" || path == stdio {
		_, err := s.out.Write(data)
		return errors.Wrap(err, "failed to write result to stdout")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "failed to write result to %s", path)
}

// readDocument reads and decodes the input document, returning the format it was read in.
func readDocument(deps CommandDeps, opts ioOptions, s streams) (*activity.Document, codec.Format, error) {
	format, err := resolveFormat(opts.From, opts.Input, deps.Config.DefaultFormat)
	if err != nil {
		return nil, "", err
	}
	data, err := readInput(opts.Input, s)
	if err != nil {
		return nil, "", err
	}
	doc, err := deps.ActivityService.Decode(format, data)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to decode %s document", format)
	}
	return doc, format, nil
}

func writeDocument(deps CommandDeps, doc *activity.Document, opts ioOptions, fallback codec.Format, s streams) error {
	format, err := resolveFormat(opts.To, opts.Output, fallback)
	if err != nil {
		return err
	}
	data, err := deps.ActivityService.Encode(format, doc)
	if err != nil {
		return err
	}
	return writeOutput(opts.Output, format, data, s)
}
