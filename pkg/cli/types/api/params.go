// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/spf13/pflag"

// ConfigureParams defines parameters for loading settings before a command runs.
type ConfigureParams struct {
	// ConfigPath is an optional YAML settings file.
	ConfigPath string
	// Flags holds the parsed flags; explicitly set ones override file and environment.
	Flags *pflag.FlagSet
	// Overrides are "path=value" settings applied last.
	Overrides []string
}

// ParseKeysParams defines parameters for parsing keys.
type ParseKeysParams struct {
	Inputs []string
}

// ParseValuesParams defines parameters for parsing label values.
type ParseValuesParams struct {
	Inputs []string
}

// ParseLabelParams defines parameters for parsing a single label.
type ParseLabelParams struct {
	Input string
	// Colon selects "key:value" instead of "key=value".
	Colon bool
}

// ParseLabelsParams defines parameters for parsing a label list. The list format comes from
// settings.
type ParseLabelsParams struct {
	// Input is the list; "-" reads standard input.
	Input string
}

// ParseAnnotationsParams defines parameters for parsing annotations.
type ParseAnnotationsParams struct {
	Inputs []string
}

// PatchManifestsParams defines parameters for patching manifests.
type PatchManifestsParams struct {
	// File is read for manifests; "" or "-" reads standard input.
	File string
	// Labels is a label list in the configured list format.
	Labels string
	// Annotations are "key=value" annotations.
	Annotations []string
	// Validate checks the result against the apiserver's label and annotation rules.
	Validate bool
}

// SelectorParams defines parameters for building a selector.
type SelectorParams struct {
	Input string
}
