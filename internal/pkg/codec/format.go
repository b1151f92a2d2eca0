package codec

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"exusiai.dev/demoapi/internal/pkg/apperr"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

var extensions = map[string]Format{
	".json":    FormatJSON,
	".msgpack": FormatMsgpack,
	".mp":      FormatMsgpack,
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", apperr.ErrUnsupportedFormat.Msg("unsupported document format %q: expect one of json, msgpack", s)
	}
}

// FormatFromPath guesses the format from the file extension of path, falling back to fallback
// for stdin/stdout and unknown extensions.
func FormatFromPath(path string, fallback Format) Format {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return fallback
}

// Decode implements envconfig.Decoder.
func (f *Format) Decode(value string) error {
	parsed, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Format) String() string {
	return string(f)
}

// Marshal encodes v. pretty only affects JSON output.
func (f Format) Marshal(v any, pretty bool) ([]byte, error) {
	switch f {
	case FormatJSON:
		if pretty {
			return json.MarshalIndent(v, "", "  ")
		}
		return json.Marshal(v)
	case FormatMsgpack:
		return msgpack.Marshal(v)
	default:
		return nil, apperr.ErrUnsupportedFormat.Msg("unsupported document format %q", string(f))
	}
}

func (f Format) Unmarshal(data []byte, v any) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatMsgpack:
		err = unmarshalMsgpack(data, v)
	default:
		return apperr.ErrUnsupportedFormat.Msg("unsupported document format %q", string(f))
	}
	if err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s document", f)
	}
	return nil
}

// unmarshalMsgpack decodes exactly one value; bytes left after it make the document invalid,
// matching what JSON decoding does with trailing content.
func unmarshalMsgpack(data []byte, v any) error {
	r := bytes.NewReader(data)
	if err := msgpack.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	if r.Len() > 0 {
		return apperr.ErrInvalidDocument.Msg("%d trailing bytes after msgpack document", r.Len())
	}
	return nil
}
