package activity

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/guregu/null.v3"
)

// modelFields is the length of the fixed msgpack array layout:
// [id, key|nil, name|nil, designees|nil], each designee a bin of its JSON bytes.
const modelFields = 4

var (
	_ msgpack.CustomEncoder = Model{}
	_ msgpack.CustomDecoder = (*Model)(nil)
)

func (m Model) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(modelFields); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(m.ActivityID)); err != nil {
		return err
	}
	if err := encodeNullString(enc, m.ActivityKey); err != nil {
		return err
	}
	if err := encodeNullString(enc, m.ActivityName); err != nil {
		return err
	}
	if m.Designees == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(len(m.Designees)); err != nil {
		return err
	}
	for _, d := range m.Designees {
		if err := enc.EncodeBytes(d.Raw()); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != modelFields {
		return errors.Errorf("msgpack: expect activity array of %d elements, got %d", modelFields, n)
	}

	id, err := dec.DecodeInt()
	if err != nil {
		return errors.Wrap(err, "failed to decode activityID")
	}
	key, err := decodeNullString(dec)
	if err != nil {
		return errors.Wrap(err, "failed to decode activityKey")
	}
	name, err := decodeNullString(dec)
	if err != nil {
		return errors.Wrap(err, "failed to decode activityName")
	}

	n, err = dec.DecodeArrayLen()
	if err != nil {
		return errors.Wrap(err, "failed to decode designees")
	}
	var designees []Designee
	if n >= 0 {
		designees = make([]Designee, n)
		for i := range designees {
			raw, err := dec.DecodeBytes()
			if err != nil {
				return errors.Wrapf(err, "failed to decode designee #%d", i)
			}
			designees[i] = Designee{raw: normalize(raw)}
		}
	}

	*m = Model{
		ActivityID:   id,
		ActivityKey:  key,
		ActivityName: name,
		Designees:    designees,
	}
	return nil
}

func encodeNullString(enc *msgpack.Encoder, s null.String) error {
	if !s.Valid {
		return enc.EncodeNil()
	}
	return enc.EncodeString(s.String)
}

func decodeNullString(dec *msgpack.Decoder) (null.String, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return null.String{}, err
	}
	if c == msgpcode.Nil {
		return null.String{}, dec.DecodeNil()
	}
	s, err := dec.DecodeString()
	if err != nil {
		return null.String{}, err
	}
	return null.StringFrom(s), nil
}
