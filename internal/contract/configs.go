package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/oceanplan/sizecard/schema"
	"golang.org/x/text/language"
)

// Default values for configuration.
const (
	DefaultProjectDir = "project"
	DefaultResultsDir = "results"
	DefaultLocale     = "en"
	DefaultS3Region   = "us-east-1"
)

// S3Config holds the settings of the S3 results source.
type S3Config struct {
	Bucket       string
	Prefix       string
	Region       string
	Endpoint     string // Custom endpoint for S3 compatible stores (empty = AWS)
	UsePathStyle bool
}

// Config holds the runtime configuration for rendering a card.
// This struct is the "final, validated" config.
type Config struct {
	ProjectDir    string
	SketchPath    string
	GeographyID   string
	Locale        language.Tag
	ClassPriority []string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	DownloadFormat schema.OutputMode

	Source     schema.ResultsSource
	ResultsDir string
	S3         S3Config

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in status lines
	UseColors bool // Enable colored text in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SketchPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Project        string `mapstructure:"project"`
	Geography      string `mapstructure:"geography"`
	Locale         string `mapstructure:"locale"`
	Priority       string `mapstructure:"priority"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Source         string `mapstructure:"source"`
	ResultsDir     string `mapstructure:"results-dir"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- S3 source settings ---
	S3Bucket    string `mapstructure:"s3-bucket"`
	S3Prefix    string `mapstructure:"s3-prefix"`
	S3Region    string `mapstructure:"s3-region"`
	S3Endpoint  string `mapstructure:"s3-endpoint"`
	S3PathStyle bool   `mapstructure:"s3-path-style"`

	// --- Fields from downloadCmd.Flags() ---
	Format string `mapstructure:"format"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ClassPriority != nil {
		clone.ClassPriority = make([]string, len(c.ClassPriority))
		copy(clone.ClassPriority, c.ClassPriority)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processResultsSource(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := resolvePaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.GeographyID = strings.TrimSpace(input.Geography)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Locale Validation ---
	locale := input.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale '%s': %w", input.Locale, err)
	}
	cfg.Locale = tag

	// --- 2. Class Priority ---
	cfg.ClassPriority = SplitList(input.Priority)

	// --- 3. Output Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 4. Download Format Validation ---
	format := input.Format
	if format == "" {
		format = string(schema.CSVOut)
	}
	cfg.DownloadFormat = schema.OutputMode(strings.ToLower(format))
	if _, ok := schema.ValidDownloadModes[cfg.DownloadFormat]; !ok {
		return fmt.Errorf("invalid download format '%s'. must be csv, json, parquet", input.Format)
	}

	return nil
}

// processResultsSource validates where results are read from.
func processResultsSource(cfg *Config, input *ConfigRawInput) error {
	source := input.Source
	if source == "" {
		source = string(schema.FileSource)
	}
	cfg.Source = schema.ResultsSource(strings.ToLower(source))
	if _, ok := schema.ValidResultsSources[cfg.Source]; !ok {
		return fmt.Errorf("invalid results source '%s'. must be file, store, s3", input.Source)
	}

	cfg.ResultsDir = input.ResultsDir
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = DefaultResultsDir
	}

	cfg.S3 = S3Config{
		Bucket:       strings.TrimSpace(input.S3Bucket),
		Prefix:       strings.Trim(input.S3Prefix, "/"),
		Region:       input.S3Region,
		Endpoint:     input.S3Endpoint,
		UsePathStyle: input.S3PathStyle,
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = DefaultS3Region
	}
	if cfg.Source == schema.S3Source && cfg.S3.Bucket == "" {
		return fmt.Errorf("s3-bucket is required when using the %s source", cfg.Source)
	}
	return nil
}

// validateBackendConfig validates the results store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := input.StoreBackend
	if backend == "" {
		backend = string(schema.SQLiteBackend)
	}
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(backend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}
	if cfg.Source == schema.StoreSource && cfg.StoreBackend == schema.NoneBackend {
		return fmt.Errorf("the %s source needs a store backend other than %s", cfg.Source, schema.NoneBackend)
	}
	return nil
}

// resolvePaths checks the project directory and the sketch file.
func resolvePaths(cfg *Config, input *ConfigRawInput) error {
	cfg.ProjectDir = input.Project
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = DefaultProjectDir
	}
	info, err := os.Stat(cfg.ProjectDir)
	if err != nil {
		return fmt.Errorf("project directory %q: %w", cfg.ProjectDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project path %q is not a directory", cfg.ProjectDir)
	}

	cfg.SketchPath = input.SketchPathStr
	if cfg.SketchPath == "" {
		return nil
	}
	info, err = os.Stat(cfg.SketchPath)
	if err != nil {
		return fmt.Errorf("sketch file %q: %w", cfg.SketchPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("sketch path %q is a directory", cfg.SketchPath)
	}
	return nil
}

// RevalidateCardRequest applies the per-request overrides of a tool call to cfg and
// re-validates them. Empty geography, locale and priority keep the base values.
func RevalidateCardRequest(cfg *Config, sketchPath, geographyID, locale, priority string) error {
	if strings.TrimSpace(sketchPath) == "" {
		return fmt.Errorf("sketch_path is required")
	}
	info, err := os.Stat(sketchPath)
	if err != nil {
		return fmt.Errorf("sketch file %q: %w", sketchPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("sketch path %q is a directory", sketchPath)
	}
	cfg.SketchPath = sketchPath

	if g := strings.TrimSpace(geographyID); g != "" {
		cfg.GeographyID = g
	}
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("invalid locale '%s': %w", locale, err)
		}
		cfg.Locale = tag
	}
	if p := SplitList(priority); len(p) > 0 {
		cfg.ClassPriority = p
	}
	return nil
}
