// Package base holds the plumbing shared by all wrike subcommands.
package base

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/hashicorp-forge/wrike/internal/config"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// ClientFactory builds the API client for a loaded configuration.
type ClientFactory func(cfg *config.Config, log hclog.Logger) (*wrike.Client, error)

// Command is embedded by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem configuration files are read from. Nil means the
	// OS filesystem.
	Fs afero.Fs

	// NewClient overrides how the API client is built. Nil means
	// DefaultClientFactory.
	NewClient ClientFactory

	flagConfig   string
	flagLogLevel string
	flagFormat   string

	format     string
	stopTracer func()
}

// GlobalFlags registers the flags every API command accepts.
func (c *Command) GlobalFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", os.Getenv("WRIKE_CONFIG"),
		"[WRIKE_CONFIG] Path to the HCL configuration file",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error); overrides the config file",
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format (table, json, yaml); defaults to table on a terminal and json otherwise",
	)
}

// Setup loads configuration, adjusts the logger and output format, and
// returns a client. Callers must call Close when done.
func (c *Command) Setup() (*wrike.Client, error) {
	if c.Log == nil {
		c.Log = hclog.NewNullLogger()
	}

	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := config.Load(fs, c.flagConfig)
	if err != nil {
		return nil, err
	}

	if c.flagLogLevel != "" {
		cfg.LogLevel = c.flagLogLevel
	}
	if c.flagFormat != "" {
		cfg.Output = c.flagFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	c.format = cfg.Output

	newClient := c.NewClient
	if newClient == nil {
		newClient = c.DefaultClientFactory
	}

	client, err := newClient(cfg, c.Log)
	if err != nil {
		return nil, fmt.Errorf("error creating wrike client: %w", err)
	}

	return client, nil
}

// DefaultClientFactory builds an HTTP client for cfg, traced with Datadog
// APM when tracing is enabled.
func (c *Command) DefaultClientFactory(cfg *config.Config, log hclog.Logger) (*wrike.Client, error) {
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	if err := clientCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wrike configuration: %w", err)
	}

	httpClient := clientCfg.NewHTTPClient()

	if cfg.Tracing.Enabled {
		tracer.Start(tracer.WithService(cfg.Tracing.Service))
		c.stopTracer = tracer.Stop

		httpClient = httptrace.WrapClient(httpClient,
			httptrace.RTWithResourceNamer(func(req *http.Request) string {
				return req.Method + " " + req.URL.Path
			}),
		)
		log.Debug("tracing enabled", "service", cfg.Tracing.Service)
	}

	return wrike.New(clientCfg, log, wrike.WithHTTPClient(httpClient))
}

// Close releases resources acquired by Setup.
func (c *Command) Close() {
	if c.stopTracer != nil {
		c.stopTracer()
		c.stopTracer = nil
	}
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
