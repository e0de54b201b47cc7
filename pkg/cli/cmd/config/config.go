// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/builder"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

func NewConfigCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.ConfigRoot.Use,
		Short: constants.ConfigRoot.Short,
		Long:  constants.ConfigRoot.Long,
	}

	view := (&builder.CommandBuilder{
		Command: constants.ConfigView,
		RunE: func(fg *builder.FlagGetter) error {
			return impl.ViewConfig()
		},
	}).Build()
	view.Args = cobra.NoArgs

	cmd.AddCommand(view)
	return cmd
}
