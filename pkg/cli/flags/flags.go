// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Flag struct {
	Name      string
	Shorthand string
	Usage     string
	Type      string
}

var (
	Config = Flag{
		Name:  "config",
		Usage: "Path to a YAML settings file",
	}

	LogLevel = Flag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
	}

	LogFormat = Flag{
		Name:  "log-format",
		Usage: "Log format (text, json)",
	}

	Set = Flag{
		Name:  "set",
		Usage: "Override a setting as path=value, e.g. output.format=json; repeatable",
		Type:  "stringArray",
	}

	Output = Flag{
		Name:      "output",
		Shorthand: "o",
		Usage:     "Output format (text, yaml, json)",
	}

	Format = Flag{
		Name:  "format",
		Usage: "Label list format (either, csv, wsv, env)",
	}

	Colon = Flag{
		Name:  "colon",
		Usage: "Parse key:value instead of key=value",
		Type:  "bool",
	}

	File = Flag{
		Name:      "filename",
		Shorthand: "f",
		Usage:     "Manifest file to read, - for standard input",
	}

	Labels = Flag{
		Name:      "labels",
		Shorthand: "l",
		Usage:     "Labels to add, in the --format list format",
	}

	Annotation = Flag{
		Name:      "annotation",
		Shorthand: "a",
		Usage:     "Annotation to add as key=value; repeatable",
		Type:      "stringArray",
	}

	ManagedBy = Flag{
		Name:  "managed-by",
		Usage: "Also add app.kubernetes.io/managed-by=klap",
		Type:  "bool",
	}

	Validate = Flag{
		Name:  "validate",
		Usage: "Reject labels and annotations the Kubernetes API server would refuse",
		Type:  "bool",
	}

	Addr = Flag{
		Name:  "addr",
		Usage: "Listen address of the HTTP service",
	}
)

// AddFlags adds the specified flags to the given command.
func AddFlags(cmd *cobra.Command, flags ...Flag) {
	addTo(cmd.Flags(), flags...)
}

// AddPersistentFlags adds the specified flags to cmd and all of its subcommands.
func AddPersistentFlags(cmd *cobra.Command, flags ...Flag) {
	addTo(cmd.PersistentFlags(), flags...)
}

func addTo(fs *pflag.FlagSet, flags ...Flag) {
	for _, flag := range flags {
		switch flag.Type {
		case "bool":
			fs.BoolP(flag.Name, flag.Shorthand, false, flag.Usage)
		case "stringArray":
			fs.StringArrayP(flag.Name, flag.Shorthand, nil, flag.Usage)
		default:
			fs.StringP(flag.Name, flag.Shorthand, "", flag.Usage)
		}
	}
}
