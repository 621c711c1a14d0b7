package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Extra is an arbitrary key-value configuration block declared by a package
// author or the root project. Entry order matters for prefix-scoped lookups,
// so decoding preserves the order keys appear in the source document.
type Extra struct {
	entries []ExtraEntry
}

// ExtraEntry is a single key with its raw, not-yet-interpreted value.
type ExtraEntry struct {
	Key   string
	Value json.RawMessage
}

// UnmarshalJSON decodes a JSON object into an ordered entry list.
func (e *Extra) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		e.entries = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding extra: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decoding extra: expected object, got %v", tok)
	}

	var entries []ExtraEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding extra key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decoding extra: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding extra value for %q: %w", key, err)
		}
		entries = append(entries, ExtraEntry{Key: key, Value: raw})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding extra: %w", err)
	}

	e.entries = entries
	return nil
}

// MarshalJSON re-encodes the entries in their original order.
func (e Extra) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entry.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Len returns the number of entries.
func (e Extra) Len() int { return len(e.entries) }

// Entries returns the entries in declaration order.
func (e Extra) Entries() []ExtraEntry { return e.entries }

// Get returns the raw value for an exact key match. The boolean reports
// presence, so explicitly declared null or empty values still count as set.
func (e Extra) Get(key string) (json.RawMessage, bool) {
	for _, entry := range e.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// String returns the value for key if it is present and a JSON string.
func (e Extra) String(key string) (string, bool) {
	raw, ok := e.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Mapping returns the value for key decoded as a nested ordered mapping.
func (e Extra) Mapping(key string) (Extra, bool) {
	raw, ok := e.Get(key)
	if !ok {
		return Extra{}, false
	}
	var nested Extra
	if err := json.Unmarshal(raw, &nested); err != nil {
		return Extra{}, false
	}
	return nested, true
}

// ClassList is a list of class names that package authors may declare either
// as a single string or as an array of strings. Decoding normalizes both
// forms to a list.
type ClassList []string

// UnmarshalJSON accepts a string, an array of strings, or null.
func (c *ClassList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*c = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		*c = ClassList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return fmt.Errorf("decoding class list: expected string or array of strings")
	}
	*c = ClassList(many)
	return nil
}

// DecodeClassList interprets a raw extra value as a ClassList. The boolean
// reports whether the value had a usable shape at all; an empty list from a
// declared empty array is returned as (empty, true).
func DecodeClassList(raw json.RawMessage) ([]string, bool) {
	var list ClassList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return []string(list), true
}
