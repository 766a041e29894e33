package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// The options cell holds a JSON object mapping group name to choices:
//
//	{"Size":[{"label":"M","price":0},{"label":"L","price":0.5}]}
//
// Group order matters for display, so the object is walked token by
// token instead of decoding into a Go map.
func parseOptions(raw string) ([]model.OptionGroup, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("options cell is not a JSON object")
	}

	var groups []model.OptionGroup
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected options key %v", keyTok)
		}

		var choices []struct {
			Label string  `json:"label"`
			Price float64 `json:"price"`
		}
		if err := dec.Decode(&choices); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		group := model.OptionGroup{Name: name}
		for _, c := range choices {
			if c.Label == "" {
				continue
			}
			group.Choices = append(group.Choices, model.OptionChoice{
				Label:      c.Label,
				PriceDelta: c.Price,
			})
		}
		groups = append(groups, group)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return groups, nil
}
