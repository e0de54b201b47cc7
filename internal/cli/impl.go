// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the klap commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	coreconfig "github.com/openchoreo/klap/internal/config"
	"github.com/openchoreo/klap/internal/logging"
	"github.com/openchoreo/klap/pkg/cli/common/config"
	"github.com/openchoreo/klap/pkg/cli/common/output"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

type CommandImplementation struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	loader   *coreconfig.Loader
	settings config.Settings
	logger   *slog.Logger
}

var _ api.CommandImplementationInterface = &CommandImplementation{}

// NewCommandImplementation creates an implementation reading from in and writing results to
// out and logs to errOut.
func NewCommandImplementation(in io.Reader, out, errOut io.Writer) *CommandImplementation {
	return &CommandImplementation{
		in:       in,
		out:      out,
		errOut:   errOut,
		settings: config.DefaultSettings(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Configure loads settings from defaults, the config file, the environment, flags and --set
// overrides, then builds the logger.
func (c *CommandImplementation) Configure(params api.ConfigureParams) error {
	loader := coreconfig.NewLoader(config.EnvPrefix, coreconfig.WithLogger(c.bootstrapLogger(params.Flags)))
	if err := loader.LoadWithDefaults(config.DefaultSettings(), params.ConfigPath); err != nil {
		return err
	}
	if params.Flags != nil {
		if err := loader.LoadFlags(params.Flags, config.FlagMappings); err != nil {
			return err
		}
	}
	if len(params.Overrides) > 0 {
		overrides, err := parseOverrides(params.Overrides, loader.Exists)
		if err != nil {
			return err
		}
		if err := loader.LoadMap(overrides); err != nil {
			return err
		}
	}

	var settings config.Settings
	if err := loader.UnmarshalAndValidate("", &settings); err != nil {
		return fmt.Errorf("invalid settings:\n%w", err)
	}

	logCfg := settings.Logging.ToLoggingConfig()
	logCfg.Output = c.errOut
	c.logger = logging.New(logCfg)
	c.loader = loader
	c.settings = settings

	c.logger.Debug("Settings loaded", "config", params.ConfigPath, "output", settings.Output.Format,
		"labels_format", settings.Labels.Format)
	return nil
}

// bootstrapLogger logs while settings are loading, before the configured logger exists. Only
// the logging flags apply to it.
func (c *CommandImplementation) bootstrapLogger(fs *pflag.FlagSet) *slog.Logger {
	defaults := config.DefaultSettings().Logging
	cfg := defaults.ToLoggingConfig()
	if fs != nil {
		if f := fs.Lookup(flags.LogLevel.Name); f != nil && f.Changed {
			cfg.Level = f.Value.String()
		}
		if f := fs.Lookup(flags.LogFormat.Name); f != nil && f.Changed {
			cfg.Format = f.Value.String()
		}
	}
	cfg.Output = c.errOut
	return logging.New(cfg)
}

// parseOverrides turns "path=value" pairs into a map for the loader. Paths must name a known
// setting.
func parseOverrides(overrides []string, known func(string) bool) (map[string]any, error) {
	values := make(map[string]any, len(overrides))
	for _, o := range overrides {
		path, value, ok := strings.Cut(o, "=")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --set %q, expected path=value", o)
		}
		if !known(path) {
			return nil, fmt.Errorf("invalid --set %q: unknown setting %q", o, path)
		}
		values[path] = value
	}
	return values, nil
}

// ViewConfig prints the effective settings as YAML.
func (c *CommandImplementation) ViewConfig() error {
	if c.loader == nil {
		return fmt.Errorf("settings not loaded")
	}
	return c.loader.DumpYAML(c.out)
}

func (c *CommandImplementation) printer() *output.Printer {
	return output.NewPrinter(c.out, c.settings.Output.Format)
}

// readInput returns s, or all of standard input when s is "-".
func (c *CommandImplementation) readInput(s string) (string, error) {
	if s != "-" {
		return s, nil
	}
	data, err := io.ReadAll(c.in)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

func (c *CommandImplementation) openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(c.in), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	return f, nil
}
