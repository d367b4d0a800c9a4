package models

import (
	"encoding"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/zeebo/xxh3"
)

// InspectionFormatVersion is the current version of the serialized form.
// Readers accept every version from 1 up to this one.
const InspectionFormatVersion = 1

// inspectionDocument is the persisted layout: a version tag followed by the
// record fields in declaration order.
type inspectionDocument struct {
	Version int `json:"version"`
	InspectionFields
}

// Marshal serializes r. The output is deterministic for a given record.
func (r Inspection) Marshal() ([]byte, error) {
	return r.MarshalJSON()
}

// MarshalJSON implements json.Marshaler
func (r Inspection) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return nil, errors.NewValidationError("cannot serialize an unconstructed inspection", nil)
	}
	return json.Marshal(inspectionDocument{Version: InspectionFormatVersion, InspectionFields: r.f})
}

// UnmarshalJSON implements json.Unmarshaler. The receiver is only written
// when the whole document decodes and validates.
func (r *Inspection) UnmarshalJSON(data []byte) error {
	parsed, err := UnmarshalInspection(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalInspection decodes a serialized inspection. Every key of the
// layout must be present with its exact name, except those marked omitempty,
// and unknown keys are rejected. Every failure, including a field that
// violates a constraint, is reported as MalformedInput with the underlying
// cause wrapped.
func UnmarshalInspection(data []byte) (Inspection, error) {
	var doc inspectionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Inspection{}, errors.NewMalformedInputError("inspection does not decode", err)
	}
	if doc.Version < 1 || doc.Version > InspectionFormatVersion {
		return Inspection{}, errors.NewMalformedInputError(
			fmt.Sprintf("unsupported inspection format version %d", doc.Version), nil)
	}
	if err := checkLayout(data, reflect.TypeOf(doc), ""); err != nil {
		return Inspection{}, err
	}
	rec, err := NewInspection(doc.InspectionFields)
	if err != nil {
		return Inspection{}, errors.NewMalformedInputError("inspection violates record constraints", err)
	}
	return rec, nil
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

type layoutKey struct {
	name     string
	optional bool
	object   reflect.Type // nil for scalars
}

// layoutKeys lists the JSON keys of struct type t, flattening embedded structs.
func layoutKeys(t reflect.Type) []layoutKey {
	var keys []layoutKey
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			keys = append(keys, layoutKeys(sf.Type)...)
			continue
		}
		name, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		k := layoutKey{name: name, optional: strings.Contains(opts, "omitempty")}
		if sf.Type.Kind() == reflect.Struct && !reflect.PointerTo(sf.Type).Implements(textUnmarshalerType) {
			k.object = sf.Type
		}
		keys = append(keys, k)
	}
	return keys
}

// checkLayout compares the keys of the JSON object in data with the layout of t.
// data has already been decoded into t once, so it is known to be well formed.
func checkLayout(data []byte, t reflect.Type, path string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return layoutError(path, "expected an object")
	}

	keys := layoutKeys(t)
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k.name] = true
		field := k.name
		if path != "" {
			field = path + "." + k.name
		}
		raw, ok := obj[k.name]
		switch {
		case !ok && k.optional:
			continue
		case !ok:
			return layoutError(field, "field is missing")
		case string(raw) == "null":
			return layoutError(field, "field is null")
		}
		if k.object != nil {
			if err := checkLayout(raw, k.object, field); err != nil {
				return err
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(obj)) {
		if !known[name] {
			if path != "" {
				name = path + "." + name
			}
			return layoutError(name, "unknown field")
		}
	}
	return nil
}

func layoutError(field, msg string) error {
	if field == "" {
		field = "(document)"
	}
	return errors.NewMalformedInputError(msg, nil).WithField(field)
}

// Fingerprint returns the xxh3 hash of the serialized form as 16 hex digits.
// Equal records always share a fingerprint.
func (r Inspection) Fingerprint() (string, error) {
	data, err := r.Marshal()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}
