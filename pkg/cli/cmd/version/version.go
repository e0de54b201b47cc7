// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openchoreo/klap/internal/version"
	"github.com/openchoreo/klap/pkg/cli/common/constants"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.Version.Use,
		Short: constants.Version.Short,
		Long:  constants.Version.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:      %s\n", v.Version)
			fmt.Fprintf(out, "Git Revision: %s\n", v.GitRevision)
			fmt.Fprintf(out, "Build Time:   %s\n", v.BuildTime)
			fmt.Fprintf(out, "Go Version:   %s %s/%s\n", v.GoVersion, v.GoOS, v.GoArch)
			return nil
		},
	}
}
