package project

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TechList is an ordered list of technology tags. On the wire it is always
// emitted as a JSON array, but it is accepted either as an array or as a
// single comma-separated string ("React, Go" -> ["React", "Go"]). In the
// database it is stored as JSON text so that any tag round-trips unchanged.
type TechList []string

func (t TechList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

func (t *TechList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = cleanTags(list)
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err == nil {
		*t = cleanTags(strings.Split(csv, ","))
		return nil
	}

	return fmt.Errorf("tech must be an array of strings or a comma-separated string")
}

// Serialize encodes the list as JSON text for storage.
func (t TechList) Serialize() (string, error) {
	encoded, err := t.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("serialize tech list: %w", err)
	}
	return string(encoded), nil
}

// ParseTechList decodes the stored JSON text back into a list.
func ParseTechList(stored string) (TechList, error) {
	if stored == "" {
		return TechList{}, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(stored), &list); err != nil {
		return nil, fmt.Errorf("parse tech list: %w", err)
	}
	if list == nil {
		return TechList{}, nil
	}
	return TechList(list), nil
}

func cleanTags(tags []string) TechList {
	out := make(TechList, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
