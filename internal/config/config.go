// =============================================================================
// EventAlytics - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. The configuration covers two areas:
//
//   1. Application settings: input/output directories, report formats,
//      output file naming and logging.
//   2. Extraction rules: the CSV column labels of the registration export,
//      the questionnaire marker phrases, the marketing-consent patterns,
//      the city normalization table and the payment-method display rules.
//
// Every rule table ships with built-in defaults matching the event
// registration export, so the tool works without a configuration file.
// A YAML file can override any subset of the settings.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// InputDir is the directory scanned for order exports (.csv / .xlsx).
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated reports are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed exports are moved.
	// Files are only moved here after successful processing.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ReportNameFormat defines the format for report file names.
	// Placeholders:
	//   {name}      - Base name of the source file
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{name}_{timestamp}_{uuid}"
	ReportNameFormat string `yaml:"report_name_format"`

	// Formats lists the report formats to generate.
	// Valid values: "text", "json", "xlsx".
	// Default: ["text"]
	Formats []string `yaml:"formats"`

	// TopCities is the number of cities kept in the city breakdown.
	// Default: 5
	TopCities int `yaml:"top_cities"`

	// Columns maps the logical order fields to the column labels of the
	// export's header row.
	Columns Columns `yaml:"columns"`

	// Extraction contains the questionnaire-blob decoding rules.
	Extraction ExtractionRules `yaml:"extraction"`

	// Cities is the ordered city normalization table. The first rule whose
	// pattern matches (case-insensitive substring) rewrites the city to its
	// canonical spelling.
	Cities []CityRule `yaml:"cities"`

	// Payments is the ordered payment-method display table used by the
	// payment breakdown.
	Payments []PaymentRule `yaml:"payments"`
}

// Columns holds the header labels of the registration export. The export is
// produced in a fixed language, so the defaults are the Spanish labels.
type Columns struct {
	OrderNumber   string `yaml:"order_number"`
	OrderStatus   string `yaml:"order_status"`
	OrderDate     string `yaml:"order_date"`
	CustomerNote  string `yaml:"customer_note"`
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	City          string `yaml:"city"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	PaymentMethod string `yaml:"payment_method"`
	Subtotal      string `yaml:"subtotal"`
	Quantity      string `yaml:"quantity"`
	TotalAmount   string `yaml:"total_amount"`
	OtherFields   string `yaml:"other_fields"`
}

// =============================================================================
// EXTRACTION RULES
// =============================================================================

// ExtractionRules defines how typed answers are recovered from the free-text
// "other form fields" blob of the export.
type ExtractionRules struct {
	// TKCardMarker is the phrase indicating the attendee owns a TK card.
	TKCardMarker string `yaml:"tk_card_marker"`

	// TranslationMarker is the phrase indicating the attendee requested
	// live translation for the event.
	TranslationMarker string `yaml:"translation_marker"`

	// ConsentPatterns is the ordered marketing-consent pattern list.
	// The first pattern contained in the blob wins.
	ConsentPatterns []ConsentPattern `yaml:"consent_patterns"`

	// ConsentDefault is the label used when no pattern matches.
	ConsentDefault string `yaml:"consent_default"`
}

// ConsentPattern maps a consent phrasing to its categorical label.
type ConsentPattern struct {
	// Contains is the substring to look for in the questionnaire blob.
	Contains string `yaml:"contains"`

	// Label is the categorical consent label reported for a match.
	Label string `yaml:"label"`
}

// CityRule canonicalizes a known multi-spelling city name.
type CityRule struct {
	// Match is the case-insensitive substring identifying the city.
	Match string `yaml:"match"`

	// Canonical is the spelling reported for a match.
	Canonical string `yaml:"canonical"`
}

// PaymentRule collapses payment-method label variants to one display label.
// A rule matches when the raw label contains Contains (case-sensitive, as
// exported), or equals one of Equals exactly.
type PaymentRule struct {
	Contains string   `yaml:"contains,omitempty"`
	Equals   []string `yaml:"equals,omitempty"`
	Label    string   `yaml:"label"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration for the event registration
// export. Every value can be overridden via the YAML configuration file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "{name}_{timestamp}_{uuid}"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"text"}
	}
	if cfg.TopCities == 0 {
		cfg.TopCities = 5
	}

	// Column labels of the export header row.
	c := &cfg.Columns
	if c.OrderNumber == "" {
		c.OrderNumber = "Número de pedido"
	}
	if c.OrderStatus == "" {
		c.OrderStatus = "Estado del pedido"
	}
	if c.OrderDate == "" {
		c.OrderDate = "Fecha del pedido"
	}
	if c.CustomerNote == "" {
		c.CustomerNote = "Nota del cliente"
	}
	if c.FirstName == "" {
		c.FirstName = "Nombre"
	}
	if c.LastName == "" {
		c.LastName = "Apellidos"
	}
	if c.City == "" {
		c.City = "Ciudad"
	}
	if c.Email == "" {
		c.Email = "Correo electrónico"
	}
	if c.Phone == "" {
		c.Phone = "Teléfono"
	}
	if c.PaymentMethod == "" {
		c.PaymentMethod = "Método de pago"
	}
	if c.Subtotal == "" {
		c.Subtotal = "Subtotal"
	}
	if c.Quantity == "" {
		c.Quantity = "Cantidad"
	}
	if c.TotalAmount == "" {
		c.TotalAmount = "Importe total"
	}
	if c.OtherFields == "" {
		c.OtherFields = "Otros campos de formulario"
	}

	// Questionnaire markers and consent patterns. The pattern order matters:
	// "Si, Por email y WhatsApp" must be checked before "Si, Por email",
	// otherwise the combined consent would be misread as email-only.
	e := &cfg.Extraction
	if e.TKCardMarker == "" {
		e.TKCardMarker = "Tengo tarjeta TK"
	}
	if e.TranslationMarker == "" {
		e.TranslationMarker = "¿Necesitas Traducción? (Evento En Inglés): Si"
	}
	if len(e.ConsentPatterns) == 0 {
		e.ConsentPatterns = []ConsentPattern{
			{Contains: "Si, Por email y WhatsApp", Label: "Email y WhatsApp"},
			{Contains: "Si, Por email", Label: "Solo Email"},
			{Contains: "Si, Por WhatsApp", Label: "Solo WhatsApp"},
			{Contains: "No, Gracias", Label: "No Consiente"},
		}
	}
	if e.ConsentDefault == "" {
		e.ConsentDefault = "No especificado"
	}

	// City normalization table. Ordered; the first matching rule wins.
	if len(cfg.Cities) == 0 {
		cfg.Cities = []CityRule{
			{Match: "pozuelo", Canonical: "Pozuelo de Alarcón"},
			{Match: "las rozas", Canonical: "Las Rozas"},
			{Match: "madrid", Canonical: "Madrid"},
		}
	}

	// Payment-method display rules for the payment breakdown.
	if len(cfg.Payments) == 0 {
		cfg.Payments = []PaymentRule{
			{Contains: "Tarjeta", Label: "Tarjeta"},
			{Contains: "Apple", Label: "Apple Pay"},
			{Contains: "Google", Label: "Google Pay"},
			{Equals: []string{"Link", "Enlace"}, Label: "Enlace de Pago"},
		}
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file and fills in defaults for
// any unset options.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	for _, f := range cfg.Formats {
		switch f {
		case "text", "json", "xlsx":
		default:
			return fmt.Errorf("unknown report format %q", f)
		}
	}
	if cfg.TopCities < 0 {
		return fmt.Errorf("top_cities must not be negative")
	}
	for i, p := range cfg.Extraction.ConsentPatterns {
		if p.Contains == "" || p.Label == "" {
			return fmt.Errorf("consent pattern %d: contains and label are required", i+1)
		}
	}
	for i, r := range cfg.Cities {
		if r.Match == "" || r.Canonical == "" {
			return fmt.Errorf("city rule %d: match and canonical are required", i+1)
		}
	}
	return nil
}
