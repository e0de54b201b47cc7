// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/builder"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

// NewParseCmds returns the key, value, label, labels and annotation commands.
func NewParseCmds(impl api.CommandImplementationInterface) []*cobra.Command {
	return []*cobra.Command{
		newKeyCmd(impl),
		newValueCmd(impl),
		newLabelCmd(impl),
		newLabelsCmd(impl),
		newAnnotationCmd(impl),
	}
}

func newKeyCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Key,
		RunE: func(fg *builder.FlagGetter) error {
			return impl.ParseKeys(api.ParseKeysParams{Inputs: fg.GetArgs()})
		},
	}).Build()
	cmd.Args = cobra.MinimumNArgs(1)
	return cmd
}

func newValueCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Value,
		RunE: func(fg *builder.FlagGetter) error {
			return impl.ParseValues(api.ParseValuesParams{Inputs: fg.GetArgs()})
		},
	}).Build()
	cmd.Args = cobra.MinimumNArgs(1)
	return cmd
}

func newLabelCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Label,
		Flags:   []flags.Flag{flags.Colon},
		RunE: func(fg *builder.FlagGetter) error {
			return impl.ParseLabel(api.ParseLabelParams{
				Input: fg.GetArgs()[0],
				Colon: fg.GetBool(flags.Colon),
			})
		},
	}).Build()
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}

func newLabelsCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Labels,
		Flags:   []flags.Flag{flags.Format},
		RunE: func(fg *builder.FlagGetter) error {
			params := api.ParseLabelsParams{}
			if args := fg.GetArgs(); len(args) > 0 {
				params.Input = args[0]
			} else {
				params.Input = "-"
			}
			return impl.ParseLabels(params)
		},
	}).Build()
	cmd.Args = cobra.MaximumNArgs(1)
	return cmd
}

func newAnnotationCmd(impl api.CommandImplementationInterface) *cobra.Command {
	cmd := (&builder.CommandBuilder{
		Command: constants.Annotation,
		RunE: func(fg *builder.FlagGetter) error {
			return impl.ParseAnnotations(api.ParseAnnotationsParams{Inputs: fg.GetArgs()})
		},
	}).Build()
	cmd.Args = cobra.MinimumNArgs(1)
	return cmd
}
