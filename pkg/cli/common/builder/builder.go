// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/pkg/cli/common/constants"
	"github.com/openchoreo/klap/pkg/cli/flags"
)

// CommandBuilder turns a command definition, its flags and a run function into a cobra
// command.
type CommandBuilder struct {
	Command constants.Command
	Flags   []flags.Flag
	RunE    func(fg *FlagGetter) error
}

func (b *CommandBuilder) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     b.Command.Use,
		Aliases: b.Command.Aliases,
		Short:   b.Command.Short,
		Long:    b.Command.Long,
		Example: b.Command.Example,
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.RunE(&FlagGetter{cmd: cmd, args: args})
		},
	}
	flags.AddFlags(cmd, b.Flags...)
	return cmd
}

// FlagGetter reads flag values and arguments of a running command.
type FlagGetter struct {
	cmd  *cobra.Command
	args []string
}

func (fg *FlagGetter) GetString(flag flags.Flag) string {
	v, _ := fg.cmd.Flags().GetString(flag.Name)
	return v
}

func (fg *FlagGetter) GetBool(flag flags.Flag) bool {
	v, _ := fg.cmd.Flags().GetBool(flag.Name)
	return v
}

func (fg *FlagGetter) GetStringArray(flag flags.Flag) []string {
	v, _ := fg.cmd.Flags().GetStringArray(flag.Name)
	return v
}

func (fg *FlagGetter) GetArgs() []string {
	return fg.args
}

// Context returns the context the command was executed with.
func (fg *FlagGetter) Context() context.Context {
	if ctx := fg.cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
