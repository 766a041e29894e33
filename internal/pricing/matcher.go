package pricing

import "strings"

// Discount rows are typed by hand into the sheet, so target names drift
// from the catalog spelling ("ice latte" vs "Iced Latte"). Matching is
// deliberately conservative: exact, then whole-token containment, then
// a fixed synonym normalization. No fuzzy-distance scoring, to keep
// false-positive discounts out.

type synonym struct {
	from string
	to   string
}

// Multi-word variants must come before single words so "green tea"
// collapses as a phrase, not token by token.
var synonyms = []synonym{
	{"green tea", "matcha"},
	{"ice", "iced"},
	{"late", "latte"},
	{"capuccino", "cappuccino"},
	{"cappucino", "cappuccino"},
	{"american", "americano"},
	{"maccha", "matcha"},
	{"choco", "chocolate"},
}

// Matches reports whether a discount target name applies to a product
// name. Both sides are case-folded and whitespace-trimmed first.
func Matches(productName, targetName string) bool {
	p := canonical(productName)
	t := canonical(targetName)
	if p == "" || t == "" {
		return false
	}

	if p == t {
		return true
	}

	if containsAllTokens(strings.Fields(p), strings.Fields(t)) {
		return true
	}

	return applySynonyms(p) == applySynonyms(t)
}

func canonical(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// containsAllTokens reports whether every needle appears as a whole
// token in haystack. Substring hits don't count ("tea" does not match
// "steam").
func containsAllTokens(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, tok := range haystack {
		set[tok] = struct{}{}
	}
	for _, tok := range needles {
		if _, ok := set[tok]; !ok {
			return false
		}
	}
	return true
}

func applySynonyms(s string) string {
	padded := " " + s + " "
	for _, syn := range synonyms {
		if strings.Contains(syn.from, " ") {
			padded = strings.ReplaceAll(padded, " "+syn.from+" ", " "+syn.to+" ")
		}
	}

	tokens := strings.Fields(padded)
	for i, tok := range tokens {
		for _, syn := range synonyms {
			if tok == syn.from {
				tokens[i] = syn.to
				break
			}
		}
	}
	return strings.Join(tokens, " ")
}
