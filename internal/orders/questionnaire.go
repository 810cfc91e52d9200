// =============================================================================
// EventAlytics - Questionnaire Blob Decoder
// =============================================================================
//
// The registration platform flattens several independent questionnaire
// answers into a single free-text column, delimited by pipes (and sometimes
// raw newlines). This decoder recovers the typed answers from that blob:
//
//   - TK-card ownership          (boolean, fixed marker phrase)
//   - Translation requirement    (boolean, fixed marker phrase)
//   - Marketing consent          (categorical, ordered patterns)
//
// The blob is first split into segments on the known delimiters and each
// marker is matched per segment. Matching is containment-based because the
// platform appends the question label in front of every answer; the segment
// split keeps a marker from matching across answer boundaries.
//
// Consent resolution is ordered and first-match-wins: the combined
// "email y WhatsApp" phrasing embeds the plain "email" phrasing, so the
// more specific pattern must be tested first.
//
// =============================================================================

package orders

import (
	"strings"

	"github.com/eventalytics/eventalytics/internal/config"
)

// Answers holds the typed answers decoded from one questionnaire blob.
type Answers struct {
	HasTKCard        bool
	NeedsTranslation bool
	MarketingConsent string
}

// Decoder decodes questionnaire blobs according to the configured rules.
type Decoder struct {
	rules config.ExtractionRules
}

// NewDecoder creates a Decoder for the given extraction rules.
func NewDecoder(rules config.ExtractionRules) *Decoder {
	return &Decoder{rules: rules}
}

// Decode extracts the typed answers from a questionnaire blob. The two
// boolean markers are tested independently; consent patterns are tested in
// configuration order and the first match wins.
func (d *Decoder) Decode(blob string) Answers {
	segments := splitSegments(blob)

	answers := Answers{
		HasTKCard:        containsMarker(segments, d.rules.TKCardMarker),
		NeedsTranslation: containsMarker(segments, d.rules.TranslationMarker),
		MarketingConsent: d.rules.ConsentDefault,
	}

	for _, p := range d.rules.ConsentPatterns {
		if containsMarker(segments, p.Contains) {
			answers.MarketingConsent = p.Label
			break
		}
	}

	return answers
}

// splitSegments breaks a blob into trimmed answer segments. Pipes and
// newlines delimit answers; commas do not, because the consent phrasings
// themselves contain commas.
func splitSegments(blob string) []string {
	segments := strings.FieldsFunc(blob, func(r rune) bool {
		return r == '|' || r == '\n'
	})
	for i, s := range segments {
		segments[i] = strings.TrimSpace(s)
	}
	return segments
}

// containsMarker reports whether any segment contains the marker phrase.
func containsMarker(segments []string, marker string) bool {
	if marker == "" {
		return false
	}
	for _, s := range segments {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
