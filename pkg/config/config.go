package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlformat/pkg/consts"
	"github.com/pseudomuto/sqlformat/pkg/dialect"
	"github.com/pseudomuto/sqlformat/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config represents the formatting configuration of a project, usually read from
// .sqlformat.yaml at the project root.
type Config struct {
	// Dialect names the SQL dialect used to tokenize input (see dialect.Names)
	Dialect string `yaml:"dialect"`

	// IndentSize is the number of spaces per indent level
	IndentSize int `yaml:"indent_size"`

	// UseTabs indents with tabs instead of spaces
	UseTabs bool `yaml:"use_tabs"`

	// LineWidth is the preferred maximum line width, 0 for unlimited
	LineWidth int `yaml:"line_width"`

	// KeywordCase is one of preserve, upper or lower
	KeywordCase string `yaml:"keyword_case"`

	// LinesBetweenQueries is the number of blank lines between statements
	LinesBetweenQueries int `yaml:"lines_between_queries"`

	// InlineCommands lists commands whose first argument stays on the same line
	InlineCommands []string `yaml:"inline_commands"`
}

// Defaults returns the configuration used when no configuration file exists.
func Defaults() *Config {
	return &Config{
		Dialect:             consts.DefaultDialect,
		IndentSize:          format.Defaults.IndentSize,
		UseTabs:             format.Defaults.UseTabs,
		LineWidth:           format.Defaults.LineWidth,
		KeywordCase:         format.Defaults.KeywordCase.String(),
		LinesBetweenQueries: format.Defaults.LinesBetweenQueries,
		InlineCommands:      append([]string(nil), format.Defaults.InlineCommands...),
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The reader must contain YAML. Keys that are not present keep their default values,
// so an empty document yields Defaults(). The result is validated: the dialect must be
// registered and the option values must be in range.
//
// Example:
//
//	yamlData := `
//	dialect: postgresql
//	keyword_case: upper
//	line_width: 100
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable formatter.
func (c *Config) Validate() error {
	if _, err := dialect.Get(c.Dialect); err != nil {
		return err
	}

	if c.IndentSize < 0 {
		return errors.Errorf("indent_size must not be negative: %d", c.IndentSize)
	}

	if c.LinesBetweenQueries < 0 {
		return errors.Errorf("lines_between_queries must not be negative: %d", c.LinesBetweenQueries)
	}

	_, err := format.ParseKeywordCase(c.KeywordCase)
	return err
}

// Options converts the configuration into format options.
func (c *Config) Options() (format.Options, error) {
	kc, err := format.ParseKeywordCase(c.KeywordCase)
	if err != nil {
		return format.Options{}, err
	}

	return format.Options{
		IndentSize:          c.IndentSize,
		UseTabs:             c.UseTabs,
		LineWidth:           c.LineWidth,
		KeywordCase:         kc,
		LinesBetweenQueries: c.LinesBetweenQueries,
		InlineCommands:      append([]string(nil), c.InlineCommands...),
	}, nil
}

// GetFormatter returns a formatter for the configured dialect and options.
func (c *Config) GetFormatter() (*format.Formatter, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	d, err := dialect.Get(c.Dialect)
	if err != nil {
		return nil, err
	}

	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return format.New(d.Tokenizer(), opts), nil
}
