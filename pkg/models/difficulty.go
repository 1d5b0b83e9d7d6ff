package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Difficulty is a single chart level as it appears in the catalog. The
// source JSON text is kept so that 13.0 and 13 stay distinguishable and
// search matches exactly what the catalog file says.
type Difficulty struct {
	text   string
	quoted bool
}

// DifficultyOf builds a Difficulty from its text form. Numeric text is
// encoded back as a JSON number, anything else as a JSON string.
func DifficultyOf(text string) Difficulty {
	if _, err := strconv.ParseFloat(text, 64); err == nil && json.Valid([]byte(text)) {
		return Difficulty{text: text}
	}
	return Difficulty{text: text, quoted: true}
}

// String returns the text form used for matching and display.
func (d Difficulty) String() string {
	return d.text
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	if d.quoted {
		return json.Marshal(d.text)
	}
	if d.text == "" {
		return []byte("null"), nil
	}
	return []byte(d.text), nil
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Difficulty{text: s, quoted: true}
		return nil
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid difficulty value %q", data)
	}
	*d = Difficulty{text: string(data)}
	return nil
}
