package types

// Scanner defaults for Part I of the Philosophical Investigations.
const (
	DefaultSectionMarker = "PART I"
	DefaultEndMarker     = "PART II"
	DefaultSectionLabel  = "Part I"
	DefaultLookahead     = 20
	DefaultMaxNumber     = 1000
)

// ScanConfig holds settings for the boundary scanner.
type ScanConfig struct {
	// SectionMarker is the heading that opens the targeted part. A line
	// matches when, trimmed, it equals the marker exactly.
	SectionMarker string `json:"section_marker" yaml:"section_marker" mapstructure:"section_marker"`

	// EndMarker closes the last span when a line contains it.
	EndMarker string `json:"end_marker" yaml:"end_marker" mapstructure:"end_marker"`

	// Lookahead is how many lines after the section marker are searched for
	// the first proposition (default 20).
	Lookahead int `json:"lookahead" yaml:"lookahead" mapstructure:"lookahead"`

	// MaxNumber rejects captured numerals at or above it, so in-text years
	// such as 1969 never open a span (default 1000).
	MaxNumber int `json:"max_number" yaml:"max_number" mapstructure:"max_number"`
}

// WithDefaults fills zero fields with the package defaults.
func (c ScanConfig) WithDefaults() ScanConfig {
	if c.SectionMarker == "" {
		c.SectionMarker = DefaultSectionMarker
	}
	if c.EndMarker == "" {
		c.EndMarker = DefaultEndMarker
	}
	if c.Lookahead <= 0 {
		c.Lookahead = DefaultLookahead
	}
	if c.MaxNumber <= 0 {
		c.MaxNumber = DefaultMaxNumber
	}
	return c
}

// OutputFormat selects the serialization of proposition records.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ExtractionConfig holds settings for the extract stage.
type ExtractionConfig struct {
	Scan ScanConfig `json:"scan" yaml:"scan" mapstructure:"scan"`

	// SourcePath is the OCR transcription (plain text, or .xz compressed).
	SourcePath string `json:"source" yaml:"source" mapstructure:"source"`

	// LocationsPath is an optional precomputed span file. When empty the
	// spans are re-derived from the source.
	LocationsPath string `json:"locations" yaml:"locations" mapstructure:"locations"`

	// OutputPath receives the serialized records. Empty writes to stdout.
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// Format is json (default) or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// SectionLabel is stamped on every record (default "Part I").
	SectionLabel string `json:"section_label" yaml:"section_label" mapstructure:"section_label"`
}

// AuditConfig holds the integer range checked for missing propositions.
type AuditConfig struct {
	From int `json:"from" yaml:"from" mapstructure:"from"`
	To   int `json:"to" yaml:"to" mapstructure:"to"`
}

// PipelineConfig groups all stage configurations; it mirrors pi-reader.yaml.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Audit      AuditConfig      `json:"audit" yaml:"audit" mapstructure:"audit"`
}
