// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	coreconfig "github.com/openchoreo/klap/internal/config"
	"github.com/openchoreo/klap/internal/logging"
	"github.com/openchoreo/klap/internal/server"
	"github.com/openchoreo/klap/pkg/klap"
)

// EnvPrefix prefixes environment overrides: KLAP__LABELS__FORMAT -> labels.format.
const EnvPrefix = "KLAP"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// FlagMappings maps flag names to the settings they override.
var FlagMappings = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"output":     "output.format",
	"format":     "labels.format",
	"managed-by": "manifest.managed_by",
	"addr":       "server.addr",
}

// Settings is everything the CLI reads from defaults, file, environment and flags.
type Settings struct {
	Logging  LoggingSettings  `koanf:"logging"`
	Output   OutputSettings   `koanf:"output"`
	Labels   LabelsSettings   `koanf:"labels"`
	Manifest ManifestSettings `koanf:"manifest"`
	Server   ServerSettings   `koanf:"server"`
}

type LoggingSettings struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	AddSource bool   `koanf:"add_source"`
}

type OutputSettings struct {
	// Format is text, yaml or json.
	Format string `koanf:"format"`
}

type LabelsSettings struct {
	// Format is the list format used by labels, selector and manifest.
	Format string `koanf:"format"`
}

type ManifestSettings struct {
	// Labels are added to every manifest, as an env style key=value list.
	Labels string `koanf:"labels"`
	// ManagedBy adds app.kubernetes.io/managed-by=klap.
	ManagedBy bool `koanf:"managed_by"`
}

type ServerSettings struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingSettings{Level: "warn", Format: "text"},
		Output:  OutputSettings{Format: OutputText},
		Labels:  LabelsSettings{Format: string(klap.FormatEither)},
		Server: ServerSettings{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
	}
}

// Validate implements config.Validator.
func (s *Settings) Validate() error {
	var errs coreconfig.ValidationErrors

	logPath := coreconfig.NewPath("logging")
	errs.Add(coreconfig.MustBeOneOf(logPath.Child("level"), s.Logging.Level, []string{"debug", "info", "warn", "error"}))
	errs.Add(coreconfig.MustBeOneOf(logPath.Child("format"), s.Logging.Format, []string{"text", "json"}))

	errs.Add(coreconfig.MustBeOneOf(coreconfig.NewPath("output").Child("format"), s.Output.Format,
		[]string{OutputText, OutputYAML, OutputJSON}))
	errs.Add(coreconfig.MustBeOneOf(coreconfig.NewPath("labels").Child("format"), s.Labels.Format, klap.ListFormatNames()))

	if s.Manifest.Labels != "" {
		errs.Add(coreconfig.MustParse(coreconfig.NewPath("manifest").Child("labels"), s.Manifest.Labels, klap.ParseLabels))
	}

	srv := coreconfig.NewPath("server")
	errs.Add(coreconfig.MustNotBeEmpty(srv.Child("addr"), s.Server.Addr))
	errs.Add(coreconfig.MustBeNonNegative(srv.Child("read_timeout"), s.Server.ReadTimeout))
	errs.Add(coreconfig.MustBeNonNegative(srv.Child("write_timeout"), s.Server.WriteTimeout))
	errs.Add(coreconfig.MustBeNonNegative(srv.Child("idle_timeout"), s.Server.IdleTimeout))
	errs.Add(coreconfig.MustBeGreaterThan(srv.Child("shutdown_timeout"), s.Server.ShutdownTimeout, 0))

	return errs.OrNil()
}

// ListFormat returns the configured list format. Validate has already checked it.
func (s *Settings) ListFormat() klap.ListFormat {
	return klap.ListFormat(s.Labels.Format)
}

// ToLoggingConfig converts to the logging library config.
func (s *LoggingSettings) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:     s.Level,
		Format:    s.Format,
		AddSource: s.AddSource,
	}
}

// ToServerConfig converts to the server library config.
func (s *ServerSettings) ToServerConfig() server.Config {
	return server.Config{
		Addr:            s.Addr,
		ReadTimeout:     s.ReadTimeout,
		WriteTimeout:    s.WriteTimeout,
		IdleTimeout:     s.IdleTimeout,
		ShutdownTimeout: s.ShutdownTimeout,
	}
}
