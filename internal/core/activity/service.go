package activity

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"github.com/zeebo/xxh3"

	"exusiai.dev/demoapi/internal/app/appconfig"
	"exusiai.dev/demoapi/internal/pkg/apperr"
	"exusiai.dev/demoapi/internal/pkg/codec"
)

type Service struct {
	Config *appconfig.Config
}

func NewService(conf *appconfig.Config) *Service {
	return &Service{
		Config: conf,
	}
}

func (s *Service) Encode(format codec.Format, doc *Document) ([]byte, error) {
	var v any
	if doc.List {
		v = lo.Ternary(doc.Activities == nil, []*Model{}, doc.Activities)
	} else {
		if len(doc.Activities) != 1 {
			return nil, apperr.ErrInvalidDocument.Msg("single activity document holds %d activities", len(doc.Activities))
		}
		v = doc.Activities[0]
	}

	b, err := format.Marshal(v, s.Config.PrettyJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s document", format)
	}
	return b, nil
}

// Decode accepts a document holding either a single activity or a list of activities.
func (s *Service) Decode(format codec.Format, data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperr.ErrInvalidDocument.Msg("document is empty")
	}

	list, err := isListDocument(format, data)
	if err != nil {
		return nil, err
	}

	if !list {
		var m Model
		if err := format.Unmarshal(data, &m); err != nil {
			return nil, apperr.ErrInvalidDocument.WithCause(err)
		}
		return NewSingleDocument(&m), nil
	}

	var ms []*Model
	if err := format.Unmarshal(data, &ms); err != nil {
		return nil, apperr.ErrInvalidDocument.WithCause(err)
	}
	if _, i, found := lo.FindIndexOf(ms, func(m *Model) bool { return m == nil }); found {
		return nil, apperr.ErrInvalidDocument.Msg("activity #%d in list is null", i)
	}
	log.Trace().Str("format", format.String()).Int("count", len(ms)).Msg("decoded activity list document")
	return NewListDocument(ms...), nil
}

func isListDocument(format codec.Format, data []byte) (bool, error) {
	switch format {
	case codec.FormatJSON:
		if !gjson.ValidBytes(data) {
			return false, apperr.ErrInvalidDocument.Msg("document is not valid JSON")
		}
		r := gjson.ParseBytes(data)
		if !r.IsArray() && !r.IsObject() {
			return false, apperr.ErrInvalidDocument.Msg("document must be a JSON object or array, got %s", r.Type)
		}
		return r.IsArray(), nil
	case codec.FormatMsgpack:
		// both shapes are arrays; a list is an array whose elements are arrays (or nil)
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return false, apperr.ErrInvalidDocument.WithCause(err)
		}
		if n <= 0 {
			return n == 0, nil
		}
		c, err := dec.PeekCode()
		if err != nil {
			return false, apperr.ErrInvalidDocument.WithCause(err)
		}
		return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32 || c == msgpcode.Nil, nil
	default:
		return false, apperr.ErrUnsupportedFormat.Msg("unsupported document format %q", format.String())
	}
}

// Fingerprint returns a hex xxh3 hash of the msgpack encoding, which is deterministic for equal activities.
func (s *Service) Fingerprint(m *Model) (string, error) {
	b, err := msgpack.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode activity for fingerprint")
	}
	return strconv.FormatUint(xxh3.Hash(b), 16), nil
}

func (s *Service) Summarize(m *Model) (*Summary, error) {
	var summary Summary
	if err := copier.Copy(&summary, m); err != nil {
		return nil, errors.Wrap(err, "failed to copy activity into summary")
	}

	fingerprint, err := s.Fingerprint(m)
	if err != nil {
		return nil, err
	}
	summary.Fingerprint = fingerprint
	return &summary, nil
}

// Query evaluates a gjson path against the JSON form of m.
func (s *Service) Query(m *Model, path string) (gjson.Result, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "failed to encode activity for query")
	}
	return gjson.GetBytes(b, path), nil
}

// Patch sets path to the raw JSON value on the JSON form of m and decodes the result into a
// new activity. An empty raw deletes path instead. m itself is left untouched.
// Paths that would introduce a top-level field the activity does not have are rejected.
func (s *Service) Patch(m *Model, path string, raw string) (*Model, error) {
	extras := apperr.Extras{"path": path}
	if path == "" {
		return nil, apperr.ErrInvalidArgument.Msg("patch path must not be empty")
	}
	if raw != "" && !gjson.Valid(raw) {
		return nil, apperr.ErrInvalidArgument.Msg("patch value for %q is not valid JSON: %s", path, raw).WithExtras(extras)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode activity for patch")
	}

	if raw == "" {
		b, err = sjson.DeleteBytes(b, path)
	} else {
		b, err = sjson.SetRawBytes(b, path, []byte(raw))
	}
	if err != nil {
		return nil, apperr.ErrInvalidArgument.Msg("failed to patch path %q", path).WithExtras(extras).WithCause(err)
	}

	if unknown := unknownFields(b); len(unknown) > 0 {
		extras["fields"] = unknown
		return nil, apperr.ErrInvalidArgument.Msg("patch path %q does not address an activity field", path).WithExtras(extras)
	}

	var patched Model
	if err := json.Unmarshal(b, &patched); err != nil {
		return nil, apperr.ErrInvalidDocument.Msg("patched activity does not decode").WithExtras(extras).WithCause(err)
	}
	return &patched, nil
}

var modelFieldNames = map[string]struct{}{
	"activityID":   {},
	"activityKey":  {},
	"activityName": {},
	"designees":    {},
}

func unknownFields(doc []byte) []string {
	var unknown []string
	gjson.ParseBytes(doc).ForEach(func(key, _ gjson.Result) bool {
		if _, ok := modelFieldNames[key.String()]; !ok {
			unknown = append(unknown, key.String())
		}
		return true
	})
	return unknown
}
