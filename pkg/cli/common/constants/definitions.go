// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package constants

import "fmt"

// DefaultCLIName is the binary name used in examples.
const DefaultCLIName = "klap"

type Command struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
	Example string
}

var (
	Key = Command{
		Use:     "key KEY...",
		Aliases: []string{"keys"},
		Short:   "Validate label and annotation keys",
		Long:    "Validate keys of the form [prefix/]name and print them in canonical form.",
		Example: fmt.Sprintf(`  # Validate a prefixed key
  %[1]s key app.kubernetes.io/name

  # Show the parts of a key as JSON
  %[1]s key example.com/tier -o json`, DefaultCLIName),
	}

	Value = Command{
		Use:     "value VALUE...",
		Aliases: []string{"values"},
		Short:   "Validate label values",
		Long:    "Validate label values. The empty string is a valid value.",
		Example: fmt.Sprintf(`  %[1]s value frontend ''`, DefaultCLIName),
	}

	Label = Command{
		Use:   "label LABEL",
		Short: "Parse a single label",
		Long: `Parse a single label given as key=value, or as key:value with --colon.
The label is printed as key:value.`,
		Example: fmt.Sprintf(`  %[1]s label honk/foo=bar
  %[1]s label --colon honk/foo:bar`, DefaultCLIName),
	}

	Labels = Command{
		Use:   "labels [LIST]",
		Short: "Parse a list of labels",
		Long: `Parse a list of labels and print one key:value per line.

Formats:
  either  key:value items separated by commas or by whitespace, but not both (default)
  csv     key:value items separated by single commas
  wsv     key:value items separated by spaces, tabs or newlines
  env     key=value items separated by spaces, tabs or newlines

The list is read from standard input when no argument is given.`,
		Example: fmt.Sprintf(`  %[1]s labels 'app:web,tier:frontend'
  printf 'app=web\ntier=frontend\n' | %[1]s labels --format env -o yaml`, DefaultCLIName),
	}

	Annotation = Command{
		Use:     "annotation ANNOTATION...",
		Aliases: []string{"annotations"},
		Short:   "Parse annotations",
		Long:    "Parse annotations given as key=value. Only the key is validated; the value may be any text.",
	}

	Manifest = Command{
		Use:   "manifest",
		Short: "Add labels and annotations to Kubernetes manifests",
		Long: `Read a stream of YAML or JSON Kubernetes objects and merge labels and annotations
into the metadata of each one. Existing entries with other keys are kept.`,
		Example: fmt.Sprintf(`  %[1]s manifest -f deploy.yaml -l 'team:payments,tier:backend' -a 'example.com/owner=Payments Team'
  kustomize build . | %[1]s manifest -l 'env:prod' --managed-by --validate`, DefaultCLIName),
	}

	Selector = Command{
		Use:     "selector LIST",
		Short:   "Build an equality label selector",
		Long:    "Parse a label list and print the equivalent Kubernetes label selector.",
		Example: fmt.Sprintf(`  kubectl get pods -l "$(%[1]s selector 'app:web tier:frontend')"`, DefaultCLIName),
	}

	Serve = Command{
		Use:   "serve",
		Short: "Run the HTTP validation service",
		Long: `Serve POST /api/v1/parse, GET /healthz and GET /metrics until interrupted.`,
	}

	ConfigRoot = Command{
		Use:   "config",
		Short: "Inspect klap settings",
	}

	ConfigView = Command{
		Use:   "view",
		Short: "Print the effective settings",
		Long: `Print the settings after applying defaults, the config file, KLAP__ environment
variables and flags.`,
	}

	Version = Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version information.",
	}
)
