package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		product string
		target  string
		want    bool
	}{
		{"exact", "Iced Latte", "Iced Latte", true},
		{"case and whitespace folded", " Iced Latte ", "iced latte", true},
		{"token containment", "Iced Caramel Latte", "caramel latte", true},
		{"token containment is whole-token", "Steamed Milk", "tea", false},
		{"synonym ice to iced", "Iced Latte", "ice latte", true},
		{"synonym late to latte", "Iced Latte", "iced late", true},
		{"synonym misspelled cappuccino", "Cappuccino", "capuccino", true},
		{"synonym cappucino variant", "Cappuccino", "cappucino", true},
		{"synonym american", "Americano", "american", true},
		{"synonym maccha", "Matcha Latte", "maccha latte", true},
		{"synonym green tea phrase", "Matcha Latte", "green tea latte", true},
		{"synonym choco", "Iced Chocolate", "iced choco", true},
		{"unrelated", "Iced Latte", "espresso", false},
		{"empty target", "Iced Latte", "", false},
		{"empty product", "", "latte", false},
		{"no substring credit", "Latte", "lat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.product, tt.target))
		})
	}
}

// Padding either side with whitespace or changing case must never
// change the outcome.
func TestMatchesNormalizationInvariance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 1, 4).Draw(t, "words")
		product := strings.Join(words, " ")
		target := rapid.StringMatching(`[a-z]{1,8}( [a-z]{1,8}){0,2}`).Draw(t, "target")

		base := Matches(product, target)
		assert.Equal(t, base, Matches("  "+strings.ToUpper(product)+"\t", target))
		assert.Equal(t, base, Matches(product, strings.ToUpper(target)+"  "))
	})
}
