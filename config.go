package sifc

import (
	"fmt"
	"io"
	"os"

	"github.com/go-sif/sifc/logging"
	"github.com/go-sif/sifc/pass/annotating"
	"gopkg.in/yaml.v2"
)

// Config configures a Compiler
type Config struct {
	Passes                    []string `yaml:"passes"`                      // the names of the passes to apply, in order
	VerifyProducts            bool     `yaml:"verify_products"`             // iff true, check that each pass set its product wherever it promises to
	StrictStageEdgeMerge      bool     `yaml:"strict_stage_edge_merge"`     // iff true, conflicting properties on merged stage edges fail compilation
	MaxConcurrentCompilations int      `yaml:"max_concurrent_compilations"` // the maximum number of jobs CompileAll compiles at once
	DefaultParallelism        int      `yaml:"default_parallelism"`         // the parallelism assigned to vertices which have none
	LogLevel                  string   `yaml:"log_level"`                   // one of TRACE, DEBUG, INFO, WARN, ERROR, FATAL
}

// DefaultConfig returns the configuration used when none is supplied
func DefaultConfig() *Config {
	return &Config{
		Passes:                    append([]string(nil), annotating.DefaultPasses...),
		VerifyProducts:            true,
		StrictStageEdgeMerge:      false,
		MaxConcurrentCompilations: 4,
		DefaultParallelism:        1,
		LogLevel:                  logging.LogLevelToString(logging.InfoLevel),
	}
}

// LoadConfig reads a YAML configuration. Omitted fields keep their default values.
func LoadConfig(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(raw, conf); err != nil {
		return nil, fmt.Errorf("unable to parse compiler configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadConfigFile reads a YAML configuration from a file
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks that every configured value is usable
func (c *Config) Validate() error {
	if c.MaxConcurrentCompilations < 1 {
		return fmt.Errorf("max_concurrent_compilations must be positive, got %d", c.MaxConcurrentCompilations)
	}
	if c.DefaultParallelism < 1 {
		return fmt.Errorf("default_parallelism must be positive, got %d", c.DefaultParallelism)
	}
	known := annotating.Registry()
	for _, name := range c.Passes {
		if _, err := known.Resolve([]string{name}, passOptions(c)); err != nil {
			return err
		}
	}
	return nil
}
