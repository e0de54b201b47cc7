// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/builder"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

func NewSelectorCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Selector,
		Flags:   []flags.Flag{flags.Format},
		RunE: func(fg *builder.FlagGetter) error {
			return impl.BuildSelector(api.SelectorParams{Input: fg.GetArgs()[0]})
		},
	}).Build()
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}
