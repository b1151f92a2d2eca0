package activity

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var nullLiteral = []byte("null")

// Designee is an opaque reference to an entity owned elsewhere. Its raw value is
// always valid JSON in compact form and is never interpreted.
type Designee struct {
	raw json.RawMessage
}

// NewDesignee copies raw. Bytes that are not JSON are carried as a JSON string.
func NewDesignee(raw []byte) Designee {
	return Designee{raw: normalize(raw)}
}

func DesigneeOf(v any) (Designee, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Designee{}, errors.Wrap(err, "failed to marshal designee reference")
	}
	return Designee{raw: b}, nil
}

func (d Designee) Raw() json.RawMessage {
	if len(d.raw) == 0 {
		return nullLiteral
	}
	return d.raw
}

func (d Designee) Decode(dst any) error {
	return json.Unmarshal(d.Raw(), dst)
}

func (d Designee) Clone() Designee {
	if d.raw == nil {
		return Designee{}
	}
	return Designee{raw: append(json.RawMessage{}, d.raw...)}
}

func (d Designee) MarshalJSON() ([]byte, error) {
	return d.Raw(), nil
}

func (d *Designee) UnmarshalJSON(data []byte) error {
	d.raw = normalize(data)
	return nil
}

// normalize returns a compact copy of raw. Empty input is nil (null), and input
// that is not valid JSON becomes a JSON string holding the original bytes.
func normalize(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.Bytes()
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nullLiteral
	}
	return quoted
}
