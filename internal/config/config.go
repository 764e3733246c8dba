// Package config loads the wrike CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// TokenEnvVar overrides wrike.auth_token when set.
const TokenEnvVar = "WRIKE_TOKEN"

// Output formats accepted by the output attribute and -format flag.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the CLI configuration file.
//
//	wrike {
//	  base_url   = "https://www.wrike.com/api/v4/"
//	  auth_token = env("WRIKE_TOKEN")
//	  timeout    = "30s"
//	}
//
//	log_level = "info"
//	output    = "table"
//
//	tracing {
//	  enabled = true
//	  service = "wrike-cli"
//	}
type Config struct {
	Wrike    *Wrike   `hcl:"wrike,block"`
	LogLevel string   `hcl:"log_level,optional"`
	Output   string   `hcl:"output,optional"`
	Tracing  *Tracing `hcl:"tracing,block"`
}

// Wrike configures the API client.
type Wrike struct {
	BaseURL   string `hcl:"base_url,optional"`
	AuthToken string `hcl:"auth_token,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
	Timeout   string `hcl:"timeout,optional"`
}

// Tracing configures Datadog APM tracing of API requests.
type Tracing struct {
	Enabled bool   `hcl:"enabled,optional"`
	Service string `hcl:"service,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Wrike == nil {
		cfg.Wrike = &Wrike{}
	}
	if cfg.Wrike.BaseURL == "" {
		cfg.Wrike.BaseURL = wrike.DefaultBaseURL
	}
	if cfg.Wrike.Timeout == "" {
		cfg.Wrike.Timeout = "30s"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.Tracing == nil {
		cfg.Tracing = &Tracing{}
	}
	if cfg.Tracing.Service == "" {
		cfg.Tracing.Service = "wrike-cli"
	}
}

// Load reads and decodes the HCL file at path from fs. An empty path yields
// Default. The WRIKE_TOKEN environment variable, when set, overrides the
// file's auth_token.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}

		if err := hclsimple.Decode(decodeName(path), src, evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	applyDefaults(cfg)

	if token := os.Getenv(TokenEnvVar); token != "" {
		cfg.Wrike.AuthToken = token
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// decodeName returns a file name hclsimple can infer the syntax from.
// Files without a .hcl or .json suffix are read as native HCL.
func decodeName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".json":
		return path
	default:
		return path + ".hcl"
	}
}

// evalContext exposes env(name) to configuration files.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

// Validate checks the values that are not validated by the client itself.
func (c *Config) Validate() error {
	return validation.Errors{
		"log_level": validation.Validate(c.LogLevel, validation.By(logLevel)),
		"output": validation.Validate(c.Output,
			validation.In(OutputTable, OutputJSON, OutputYAML).Error("must be one of table, json, yaml")),
		"timeout": validation.Validate(c.Wrike.Timeout, validation.By(duration)),
	}.Filter()
}

func logLevel(value interface{}) error {
	s, _ := value.(string)
	if hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

func duration(value interface{}) error {
	s, _ := value.(string)
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as \"30s\"")
	}
	return nil
}

// ClientConfig converts the wrike block to a client configuration.
func (c *Config) ClientConfig() (*wrike.Config, error) {
	timeout, err := time.ParseDuration(c.Wrike.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	return &wrike.Config{
		BaseURL:   c.Wrike.BaseURL,
		AuthToken: c.Wrike.AuthToken,
		TLSVerify: c.Wrike.TLSVerify,
		Timeout:   timeout,
	}, nil
}
