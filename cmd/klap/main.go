// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openchoreo/klap/internal/cli"
	"github.com/openchoreo/klap/pkg/cli/common/config"
	"github.com/openchoreo/klap/pkg/cli/core/root"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.DefaultConfig()
	commandImpl := cli.NewCommandImplementation(os.Stdin, os.Stdout, os.Stderr)
	rootCmd := root.BuildRootCmd(cfg, commandImpl)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
