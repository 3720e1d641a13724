package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Instruction is one cooking step with an optional image reference.
type Instruction struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Instructions []Instruction

func (i *Instructions) UnmarshalJSON(b []byte) error {
	*i = NormalizeInstructions(b)
	return nil
}

// NormalizeInstructions converts a raw JSON value into an ordered list of
// steps. A plain string that is not a JSON list becomes a single step.
func NormalizeInstructions(raw []byte) Instructions {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Instructions{}
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Instructions{}
		}
		return instructionsFromItems(items)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Instructions{}
		}
		return ParseInstructions(s)
	case '{':
		return instructionsFromItems([]json.RawMessage{raw})
	default:
		return Instructions{}
	}
}

// ParseInstructions accepts a JSON-encoded list of steps or free text.
func ParseInstructions(s string) Instructions {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return instructionsFromItems(items)
		}
	}
	if s == "" {
		return Instructions{}
	}
	return Instructions{{Description: s}}
}

func instructionsFromItems(items []json.RawMessage) Instructions {
	out := make(Instructions, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}

		var step Instruction
		switch item[0] {
		case '"':
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				continue
			}
			step.Description = strings.TrimSpace(s)
		case '{':
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(item, &fields); err != nil {
				continue
			}
			step.Description = strings.TrimSpace(firstScalar(fields, "description", "text", "instruction"))
			step.ImageURL = strings.TrimSpace(firstScalar(fields, "image_url", "image", "imageUrl"))
		default:
			continue
		}

		if step.Description == "" && step.ImageURL == "" {
			continue
		}
		out = append(out, step)
	}
	return out
}
