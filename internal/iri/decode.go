package iri

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 is returned when a response body is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("response body is not valid UTF-8")

	// ErrMissingField is returned when a declared field is absent or null.
	ErrMissingField = errors.New("missing required field")
)

// DecodeNodeInfo parses a getNodeInfo response body.
func DecodeNodeInfo(body []byte) (NodeInfo, error) {
	var ni NodeInfo
	if err := decodeRecord(body, nodeInfoFields, &ni); err != nil {
		return NodeInfo{}, &DecodeError{Command: CommandGetNodeInfo, Err: err}
	}
	return ni, nil
}

// DecodeNeighbors parses a getNeighbors response body. Each entry of the
// neighbors array must carry every Neighbor field.
func DecodeNeighbors(body []byte) (Neighbors, error) {
	var n Neighbors
	if err := decodeNeighbors(body, &n); err != nil {
		return Neighbors{}, &DecodeError{Command: CommandGetNeighbors, Err: err}
	}
	return n, nil
}

func decodeNeighbors(body []byte, n *Neighbors) error {
	obj, err := decodeObject(body, neighborsFields)
	if err != nil {
		return err
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(obj["neighbors"], &entries); err != nil {
		return fmt.Errorf("neighbors: %w", err)
	}
	exactEntries := make([]json.RawMessage, 0, len(entries))
	for i, e := range entries {
		if err := requireFields(e, neighborFields); err != nil {
			return fmt.Errorf("neighbors[%d]: %w", i, err)
		}
		raw, err := exactFields(e, neighborFields)
		if err != nil {
			return fmt.Errorf("neighbors[%d]: %w", i, err)
		}
		exactEntries = append(exactEntries, raw)
	}

	list, err := json.Marshal(exactEntries)
	if err != nil {
		return err
	}
	obj["neighbors"] = list
	return unmarshalExact(obj, neighborsFields, n)
}

// decodeRecord validates body against fields and unmarshals it into v.
func decodeRecord(body []byte, fields []string, v any) error {
	obj, err := decodeObject(body, fields)
	if err != nil {
		return err
	}
	return unmarshalExact(obj, fields, v)
}

// unmarshalExact unmarshals only the declared keys of obj into v.
// encoding/json folds case when matching keys to struct fields, so an extra
// "Tips" next to "tips" would otherwise overwrite the declared value.
func unmarshalExact(obj map[string]json.RawMessage, fields []string, v any) error {
	raw, err := exactFields(obj, fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// exactFields re-encodes obj keeping only the keys named in fields.
func exactFields(obj map[string]json.RawMessage, fields []string) (json.RawMessage, error) {
	kept := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		if v, ok := obj[f]; ok {
			kept[f] = v
		}
	}
	return json.Marshal(kept)
}

// decodeObject checks that body is UTF-8 encoded JSON object text carrying
// every key in fields, and returns its top-level members.
func decodeObject(body []byte, fields []string) (map[string]json.RawMessage, error) {
	if !utf8.Valid(body) {
		return nil, ErrInvalidUTF8
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	if err := requireFields(obj, fields); err != nil {
		return nil, err
	}
	return obj, nil
}

var jsonNull = []byte("null")

func requireFields(obj map[string]json.RawMessage, fields []string) error {
	for _, f := range fields {
		v, ok := obj[f]
		if !ok || bytes.Equal(v, jsonNull) {
			return fmt.Errorf("%w %q", ErrMissingField, f)
		}
	}
	return nil
}
