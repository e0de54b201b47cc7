// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package root

import (
	"github.com/spf13/cobra"

	configcmd "github.com/openchoreo/klap/pkg/cli/cmd/config"
	"github.com/openchoreo/klap/pkg/cli/cmd/manifest"
	"github.com/openchoreo/klap/pkg/cli/cmd/parse"
	"github.com/openchoreo/klap/pkg/cli/cmd/selector"
	"github.com/openchoreo/klap/pkg/cli/cmd/serve"
	"github.com/openchoreo/klap/pkg/cli/cmd/version"
	"github.com/openchoreo/klap/pkg/cli/common/config"
	"github.com/openchoreo/klap/pkg/cli/flags"
	"github.com/openchoreo/klap/pkg/cli/types/api"
)

// BuildRootCmd assembles the root command with all subcommands. Settings are loaded before
// any subcommand runs.
func BuildRootCmd(config *config.CLIConfig, impl api.CommandImplementationInterface) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           config.Name,
		Short:         config.ShortDescription,
		Long:          config.LongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString(flags.Config.Name)
			overrides, _ := cmd.Flags().GetStringArray(flags.Set.Name)
			return impl.Configure(api.ConfigureParams{
				ConfigPath: configPath,
				Flags:      cmd.Flags(),
				Overrides:  overrides,
			})
		},
	}

	flags.AddPersistentFlags(rootCmd, flags.Config, flags.Set, flags.LogLevel, flags.LogFormat, flags.Output)

	rootCmd.AddCommand(parse.NewParseCmds(impl)...)
	rootCmd.AddCommand(
		manifest.NewManifestCmd(impl),
		selector.NewSelectorCmd(impl),
		serve.NewServeCmd(impl),
		configcmd.NewConfigCmd(impl),
		version.NewVersionCmd(),
	)

	return rootCmd
}
