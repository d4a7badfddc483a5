package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags is an ordered set of genre labels. It is stored as a JSON array so the
// same column definition works on every supported engine.
type Tags []string

// NewTags trims the values, drops blanks and keeps the first occurrence of
// each label.
func NewTags(values ...string) Tags {
	tags := make(Tags, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		tags = append(tags, v)
	}
	return tags
}

func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into Tags", value)
	}

	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("failed to decode tags: %w", err)
	}
	*t = NewTags(values...)
	return nil
}
