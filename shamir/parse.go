package shamir

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// KeysField is the reserved document key holding the n and k descriptors.
const KeysField = "keys"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type documentKeys struct {
	N jsoniter.RawMessage `json:"n"`
	K jsoniter.RawMessage `json:"k"`
}

type documentShare struct {
	Base  jsoniter.RawMessage `json:"base"`
	Value *string             `json:"value"`
}

// ParseShareSet parses a share document:
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// Every key other than "keys" is a positive base-10 share index.
// Two keys naming the same index (such as "1" and "01") are rejected.
func ParseShareSet(doc []byte) (*ShareSet, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	keysRaw, ok := fields[KeysField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q object", ErrMalformedInput, KeysField)
	}

	var keys documentKeys
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedInput, KeysField, err)
	}

	n, err := parseIntField(keys.N, KeysField+".n", ErrMalformedInput)
	if err != nil {
		return nil, err
	}

	k, err := parseIntField(keys.K, KeysField+".k", ErrMalformedInput)
	if err != nil {
		return nil, err
	}

	if n < 1 || k < 1 {
		return nil, fmt.Errorf("%w: n and k must be positive, got n=%d k=%d", ErrMalformedInput, n, k)
	}

	set := &ShareSet{
		N:      n,
		K:      k,
		Shares: make(map[int64]RawShare, len(fields)-1),
	}

	for key, raw := range fields {
		if key == KeysField {
			continue
		}

		index, err := parseIndex(key)
		if err != nil {
			return nil, err
		}

		if _, dup := set.Shares[index]; dup {
			return nil, fmt.Errorf("%w: duplicate share index %d", ErrMalformedInput, index)
		}

		var share documentShare
		if err := json.Unmarshal(raw, &share); err != nil {
			return nil, fmt.Errorf("%w: share %q: %w", ErrMalformedInput, key, err)
		}

		if share.Value == nil {
			return nil, fmt.Errorf("%w: share %q is missing value", ErrMalformedInput, key)
		}

		base, err := parseIntField(share.Base, "share "+strconv.Quote(key)+" base", ErrInvalidNumeral)
		if err != nil {
			return nil, err
		}

		set.Shares[index] = RawShare{
			Base:  base,
			Value: *share.Value,
		}
	}

	return set, nil
}

func parseIndex(key string) (int64, error) {
	index, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: share key %q is not a base-10 integer", ErrMalformedInput, key)
	}

	if index < 1 {
		return 0, fmt.Errorf("%w: share index %d must be positive", ErrMalformedInput, index)
	}

	return index, nil
}

// parseIntField reads an integer written as a JSON number (4) or a JSON
// string ("4"). A missing or null field is malformed input; a present but
// non-integral one is reported with badValue.
func parseIntField(raw jsoniter.RawMessage, name string, badValue error) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, name)
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrMalformedInput, name, err)
		}
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %s", badValue, name, raw)
	}

	return v, nil
}
