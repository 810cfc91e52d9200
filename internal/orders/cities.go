// =============================================================================
// EventAlytics - City Normalization
// =============================================================================

package orders

import (
	"strings"

	"github.com/eventalytics/eventalytics/internal/config"
)

// CityNormalizer canonicalizes known multi-spelling city names using an
// ordered rule table.
type CityNormalizer struct {
	rules []config.CityRule
}

// NewCityNormalizer creates a normalizer for the given rule table.
func NewCityNormalizer(rules []config.CityRule) *CityNormalizer {
	return &CityNormalizer{rules: rules}
}

// Normalize strips quote characters, trims whitespace, and rewrites the
// city to its canonical spelling if a rule matches. Rules are tested in
// order with case-insensitive substring matching; the first match wins.
// Unknown cities pass through cleaned but otherwise unchanged.
func (n *CityNormalizer) Normalize(raw string) string {
	city := strings.NewReplacer(`"`, "", `'`, "").Replace(raw)
	city = strings.TrimSpace(city)

	lower := strings.ToLower(city)
	for _, rule := range n.rules {
		if strings.Contains(lower, strings.ToLower(rule.Match)) {
			return rule.Canonical
		}
	}
	return city
}
