// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

type testServerConfig struct {
	Addr        string        `koanf:"addr"`
	ReadTimeout time.Duration `koanf:"read_timeout"`
}

type testLoggingConfig struct {
	Level string `koanf:"level"`
}

type testConfig struct {
	Server  testServerConfig  `koanf:"server"`
	Logging testLoggingConfig `koanf:"logging"`
}

func testDefaults() testConfig {
	return testConfig{
		Server: testServerConfig{
			Addr:        ":8080",
			ReadTimeout: 15 * time.Second,
		},
		Logging: testLoggingConfig{
			Level: "info",
		},
	}
}

var testConfigPath = filepath.Join("testdata", "test_config.yaml")

func load(t *testing.T, configPath string) (*Loader, testConfig) {
	t.Helper()
	loader := NewLoader("KLAP_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), configPath); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return loader, cfg
}

func TestLoader_StructDefaults(t *testing.T) {
	_, cfg := load(t, "")

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected read_timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	_, cfg := load(t, testConfigPath)

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090 from config file, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read_timeout 30s from config file, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug from config file, got %s", cfg.Logging.Level)
	}
}

func TestLoader_EnvVarsOverrideConfigFile(t *testing.T) {
	t.Setenv("KLAP_TEST__SERVER__ADDR", ":7070")
	t.Setenv("KLAP_TEST__LOGGING__LEVEL", "warn")

	_, cfg := load(t, testConfigPath)

	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected addr :7070 from env var, got %s", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn from env var, got %s", cfg.Logging.Level)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read_timeout 30s from config file, got %v", cfg.Server.ReadTimeout)
	}
}

func TestLoader_EnvVarKeepsUnderscoresInFieldNames(t *testing.T) {
	t.Setenv("KLAP_TEST__SERVER__READ_TIMEOUT", "45s")

	_, cfg := load(t, "")

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected read_timeout 45s from env var, got %v", cfg.Server.ReadTimeout)
	}
}

func TestLoader_MissingConfigFileFails(t *testing.T) {
	loader := NewLoader("KLAP_TEST")
	err := loader.LoadWithDefaults(testDefaults(), "nonexistent.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "nonexistent.yaml") {
		t.Errorf("error should name the file, got: %v", err)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	loader, _ := load(t, testConfigPath)
	if err := loader.LoadMap(map[string]any{"logging.level": "error"}); err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected level error from LoadMap, got %s", cfg.Logging.Level)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("LoadMap should keep other keys, got addr %s", cfg.Server.Addr)
	}
	if !loader.Exists("logging.level") || loader.Exists("logging.colour") {
		t.Errorf("Exists should report only loaded keys")
	}
}

func TestLoader_Set(t *testing.T) {
	loader, _ := load(t, "")
	if err := loader.Set("server.addr", ":6060"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Server.Addr != ":6060" {
		t.Errorf("expected addr :6060 from Set, got %s", cfg.Server.Addr)
	}
}

func TestLoader_Raw(t *testing.T) {
	loader, _ := load(t, "")

	server, ok := loader.Raw()["server"].(map[string]any)
	if !ok {
		t.Fatalf("expected server key in config map, got: %v", loader.Raw())
	}
	if server["addr"] != ":8080" {
		t.Errorf("expected addr :8080 in Raw(), got %v", server["addr"])
	}
}

func TestLoader_DumpYAML(t *testing.T) {
	loader, _ := load(t, testConfigPath)

	var buf bytes.Buffer
	if err := loader.DumpYAML(&buf); err != nil {
		t.Fatalf("DumpYAML failed: %v", err)
	}
	for _, want := range []string{"server:\n", "  read_timeout: 30s\n", "logging:\n", "  level: debug\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLoader_FlagsOverrideEnvVars(t *testing.T) {
	t.Setenv("KLAP_TEST__SERVER__ADDR", ":7070")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "listen address")
	if err := flags.Parse([]string{"--addr=:5050"}); err != nil {
		t.Fatalf("flags.Parse failed: %v", err)
	}

	var logs bytes.Buffer
	loader := NewLoader("KLAP_TEST", WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	if err := loader.LoadWithDefaults(testDefaults(), testConfigPath); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if err := loader.LoadFlags(flags, map[string]string{"addr": "server.addr"}); err != nil {
		t.Fatalf("LoadFlags failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Server.Addr != ":5050" {
		t.Errorf("expected addr :5050 from flag, got %s", cfg.Server.Addr)
	}
	if !strings.Contains(logs.String(), "Applied flag override") {
		t.Errorf("expected a debug line for the flag override, got: %s", logs.String())
	}
}

func TestLoader_FlagsNotSetDoNotOverride(t *testing.T) {
	t.Setenv("KLAP_TEST__SERVER__ADDR", ":7070")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "listen address")
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("flags.Parse failed: %v", err)
	}

	loader, _ := load(t, "")
	if err := loader.LoadFlags(flags, map[string]string{"addr": "server.addr"}); err != nil {
		t.Fatalf("LoadFlags failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected addr :7070 from env var, got %s", cfg.Server.Addr)
	}
}

type validatingConfig struct {
	Server testServerConfig `koanf:"server"`
}

func (c *validatingConfig) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

func TestLoader_UnmarshalAndValidate(t *testing.T) {
	loader, _ := load(t, "")

	var cfg validatingConfig
	if err := loader.UnmarshalAndValidate("", &cfg); err != nil {
		t.Fatalf("UnmarshalAndValidate failed: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Server.Addr)
	}
}

func TestLoader_UnmarshalAndValidate_Fails(t *testing.T) {
	loader := NewLoader("KLAP_TEST")
	if err := loader.Set("server.addr", ""); err != nil {
		t.Fatalf("loader.Set failed: %v", err)
	}

	var cfg validatingConfig
	if err := loader.UnmarshalAndValidate("", &cfg); err == nil {
		t.Fatal("expected validation error")
	}
}
