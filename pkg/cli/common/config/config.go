// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/openchoreo/klap/pkg/cli/common/constants"

// CLIConfig describes the root command.
type CLIConfig struct {
	Name             string
	ShortDescription string
	LongDescription  string
}

func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		Name:             constants.DefaultCLIName,
		ShortDescription: "Parse and validate Kubernetes label and annotation keys and values",
		LongDescription: `klap validates Kubernetes label keys, label values and annotations, parses label
lists in several textual formats, and applies them to manifests.

Settings are read from --config, then KLAP__ environment variables (for example
KLAP__OUTPUT__FORMAT=json), then flags.`,
	}
}
