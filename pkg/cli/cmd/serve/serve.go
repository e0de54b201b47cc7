// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/builder"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

func NewServeCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Serve,
		Flags:   []flags.Flag{flags.Addr},
		RunE: func(fg *builder.FlagGetter) error {
			return impl.Serve(fg.Context())
		},
	}).Build()
	cmd.Args = cobra.NoArgs
	return cmd
}
