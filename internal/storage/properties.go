package storage

import (
	"encoding/json"
	"fmt"
)

// Properties is a string-keyed bag of engine-defined values. Values are
// held as raw JSON so the bag round-trips through asset files without the
// store knowing the value types.
type Properties map[string]json.RawMessage

// Set stores v under key after marshalling it to JSON.
func (p *Properties) Set(key string, v any) error {
	if *p == nil {
		*p = Properties{}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal property %q: %w", key, err)
	}

	(*p)[key] = json.RawMessage(b)
	return nil
}

// Get unmarshals the value at key into out.
// Returns (found=false, nil) if not present.
func (p Properties) Get(key string, out any) (bool, error) {
	if p == nil {
		return false, nil
	}

	raw, ok := p[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal property %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the key, if present.
func (p Properties) Delete(key string) {
	if p == nil {
		return
	}
	delete(p, key)
}
