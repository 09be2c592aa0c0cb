// Package config loads the response-match filter configuration for a
// fuzzing session. Filters arrive either from CLI flags or from a YAML
// file; either way they are validated once at startup and converted into
// an immutable match.Criteria for the rest of the run.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/binaryArrow/cats/internal/errors"
	"github.com/binaryArrow/cats/internal/match"
)

// Config represents the match filter configuration surface. All fields
// are optional; an absent field leaves the corresponding filter
// unconfigured.
type Config struct {
	MatchResponseCodes []string `yaml:"match_response_codes"`
	MatchResponseLines []int64  `yaml:"match_response_lines"`
	MatchResponseWords []int64  `yaml:"match_response_words"`
	MatchResponseSizes []int64  `yaml:"match_response_sizes"`
	MatchResponseRegex string   `yaml:"match_response_regex"`
	MatchInput         bool     `yaml:"match_input"`
}

// NewConfig creates a Config with no filters configured.
func NewConfig() *Config {
	return &Config{}
}

// LoadFromFile loads and validates a configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// codeFilterPattern accepts exact codes ("404") and class patterns ("4XX").
var codeFilterPattern = regexp.MustCompile(`^([0-9]{3}|[2-9][xX]{2})$`)

// Validate checks that every configured filter is usable: response code
// filters must be three digits or a class pattern, and the regex must
// compile.
func (c *Config) Validate() error {
	for _, code := range c.MatchResponseCodes {
		if !codeFilterPattern.MatchString(code) {
			return errors.NewConfigError(fmt.Sprintf("invalid response code filter '%s'", code), errors.ErrInvalidFilter)
		}
	}
	if c.MatchResponseRegex != "" {
		if _, err := regexp.Compile(c.MatchResponseRegex); err != nil {
			return errors.NewConfigError(fmt.Sprintf("invalid response regex '%s'", c.MatchResponseRegex), err)
		}
	}
	return nil
}

// Criteria converts the configuration into the immutable criteria value
// shared across response evaluations.
func (c *Config) Criteria() match.Criteria {
	return match.Criteria{
		Codes:      c.MatchResponseCodes,
		Lines:      c.MatchResponseLines,
		Words:      c.MatchResponseWords,
		Sizes:      c.MatchResponseSizes,
		Regex:      c.MatchResponseRegex,
		MatchInput: c.MatchInput,
	}
}
