// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/openchoreo/klap/internal/labels"
	"github.com/openchoreo/klap/internal/logging"
	"github.com/openchoreo/klap/pkg/cli/types/api"
	"github.com/openchoreo/klap/pkg/klap"
	"github.com/openchoreo/klap/pkg/klap/kube"
)

// PatchManifests merges labels from settings and flags into every manifest read from the
// input. Labels given on the command line win over configured ones with the same key.
func (c *CommandImplementation) PatchManifests(ctx context.Context, params api.PatchManifestsParams) error {
	var ls klap.Labels
	if c.settings.Manifest.Labels != "" {
		configured, err := klap.ParseLabels(c.settings.Manifest.Labels)
		if err != nil {
			return fmt.Errorf("manifest.labels: %w", err)
		}
		ls = append(ls, configured...)
	}
	if c.settings.Manifest.ManagedBy {
		ls = append(ls, labels.ManagedBy())
	}
	if params.Labels != "" {
		given, err := c.settings.ListFormat().Parse(params.Labels)
		if err != nil {
			return err
		}
		ls = append(ls, given...)
	}

	as, err := parseAll(params.Annotations, klap.ParseAnnotation)
	if err != nil {
		return err
	}

	lm, am := ls.Map(), klap.Annotations(as).Map()
	if params.Validate {
		errs := kube.ValidateLabels(lm, field.NewPath("metadata", "labels"))
		errs = append(errs, kube.ValidateAnnotations(am, field.NewPath("metadata", "annotations"))...)
		if agg := errs.ToAggregate(); agg != nil {
			return fmt.Errorf("rejected by Kubernetes validation: %w", agg)
		}
	}

	in, err := c.openInput(params.File)
	if err != nil {
		return err
	}
	defer in.Close()

	c.logger.Debug("Patching manifests", "file", params.File, "labels", len(lm), "annotations", len(am))
	return kube.PatchManifests(logging.NewContext(ctx, c.logger), in, c.out, lm, am)
}
