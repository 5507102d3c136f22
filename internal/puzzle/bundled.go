package puzzle

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed puzzles.json
var bundled embed.FS

// Example is a named puzzle shipped with the binary.
type Example struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Puzzle     string `json:"puzzle"`
}

// Examples returns the bundled demonstration puzzles in a stable order.
func Examples() ([]Example, error) {
	data, err := bundled.ReadFile("puzzles.json")
	if err != nil {
		return nil, fmt.Errorf("unable to read bundled puzzles: %w", err)
	}
	var byKey map[string]Example
	if err := json.Unmarshal(data, &byKey); err != nil {
		return nil, fmt.Errorf("unable to parse bundled puzzles: %w", err)
	}
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	examples := make([]Example, 0, len(keys))
	for _, key := range keys {
		examples = append(examples, byKey[key])
	}
	return examples, nil
}
