// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// CommandImplementationInterface is what the command tree calls into. The command
// definitions only gather arguments and flags.
type CommandImplementationInterface interface {
	ConfigAPI
	ParseAPI
	ManifestAPI
	SelectorAPI
	ServeAPI
}

// ConfigAPI loads and shows settings.
type ConfigAPI interface {
	Configure(params ConfigureParams) error
	ViewConfig() error
}

// ParseAPI parses keys, values, labels and annotations given on the command line.
type ParseAPI interface {
	ParseKeys(params ParseKeysParams) error
	ParseValues(params ParseValuesParams) error
	ParseLabel(params ParseLabelParams) error
	ParseLabels(params ParseLabelsParams) error
	ParseAnnotations(params ParseAnnotationsParams) error
}

// ManifestAPI adds labels and annotations to Kubernetes manifests.
type ManifestAPI interface {
	PatchManifests(ctx context.Context, params PatchManifestsParams) error
}

// SelectorAPI builds label selectors.
type SelectorAPI interface {
	BuildSelector(params SelectorParams) error
}

// ServeAPI runs the HTTP validation service.
type ServeAPI interface {
	Serve(ctx context.Context) error
}
