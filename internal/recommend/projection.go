package recommend

import (
	"strings"

	"formulab/internal/models"
)

// ProjectFields flattens a record's textual fields into the single string used
// for similarity comparison. The field order is fixed: product name, texture,
// fragrance, ingredients, sensory description, then the space-joined claim
// set. Missing fields contribute nothing.
func ProjectFields(f models.Fields) string {
	parts := []string{
		f.ProductName,
		f.Texture,
		f.Fragrance,
		f.Ingredients,
		f.Feel,
		strings.Join(f.Claims, " "),
	}

	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func tokenize(text string) []string {
	// Lowercase and split by whitespace
	return strings.Fields(strings.ToLower(text))
}

func usableText(text string) bool {
	return strings.TrimSpace(text) != ""
}
