// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/builder"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

func NewManifestCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Manifest,
		Flags: []flags.Flag{
			flags.File,
			flags.Labels,
			flags.Format,
			flags.Annotation,
			flags.ManagedBy,
			flags.Validate,
		},
		RunE: func(fg *builder.FlagGetter) error {
			return impl.PatchManifests(fg.Context(), api.PatchManifestsParams{
				File:        fg.GetString(flags.File),
				Labels:      fg.GetString(flags.Labels),
				Annotations: fg.GetStringArray(flags.Annotation),
				Validate:    fg.GetBool(flags.Validate),
			})
		},
	}).Build()
	cmd.Args = cobra.NoArgs
	return cmd
}
