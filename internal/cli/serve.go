// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/openchoreo/klap/internal/server"
	"github.com/openchoreo/klap/internal/server/api"
	"github.com/openchoreo/klap/internal/server/metrics"
)

// Serve runs the HTTP validation service until ctx is cancelled.
func (c *CommandImplementation) Serve(ctx context.Context) error {
	handler := api.Routes(c.logger, metrics.New())
	return server.New(c.settings.Server.ToServerConfig(), handler, c.logger).Run(ctx)
}
