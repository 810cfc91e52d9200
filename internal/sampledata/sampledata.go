// =============================================================================
// EventAlytics - Bundled Sample Export
// =============================================================================
//
// A small anonymized registration export bundled into the binary, used by
// `report --sample` and as the fallback demo data when the input directory
// is empty. The rows exercise every extraction path: city spelling
// variants, payment-method variants, all consent phrasings, both
// questionnaire markers and an unparseable total.
//
// =============================================================================

package sampledata

import (
	_ "embed"
)

//go:embed sample.csv
var csvText string

// SourceName is the display name used for reports built from the sample.
const SourceName = "datos-de-ejemplo.csv"

// CSV returns the bundled sample export.
func CSV() string {
	return csvText
}
