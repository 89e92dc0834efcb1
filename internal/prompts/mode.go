package prompts

import (
	"encoding/json"
	"slices"
)

// Mode selects which summary template a prompt is built from.
type Mode string

// Template modes.
const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

var modes = []Mode{ModeSingle, ModeMulti}

// Modes returns the valid template modes.
func Modes() []Mode {
	return slices.Clone(modes)
}

// ParseMode validates s as a known mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !slices.Contains(modes, m) {
		return "", ErrInvalidMode
	}
	return m, nil
}

// UnmarshalJSON rejects unknown modes.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMode(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
