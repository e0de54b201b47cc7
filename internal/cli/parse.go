// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/openchoreo/klap/pkg/cli/common/output"
	"github.com/openchoreo/klap/pkg/cli/types/api"
	"github.com/openchoreo/klap/pkg/klap"
)

type keyView struct {
	Key    string `json:"key" yaml:"key"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Name   string `json:"name" yaml:"name"`
}

func (v keyView) String() string {
	return v.Key
}

func newKeyView(k klap.Key) keyView {
	v := keyView{Key: k.String(), Name: k.Name().String()}
	if p, ok := k.Prefix(); ok {
		v.Prefix = p.String()
	}
	return v
}

// colonView prints a label in key:value form.
type colonView struct {
	klap.Label
}

func (v colonView) String() string {
	return v.Key.String() + ":" + v.Value.String()
}

// parseAll parses every input before anything is printed, so a bad input produces no output.
func parseAll[T any](inputs []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(inputs))
	for _, in := range inputs {
		v, err := parse(in)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *CommandImplementation) ParseKeys(params api.ParseKeysParams) error {
	keys, err := parseAll(params.Inputs, klap.ParseKey)
	if err != nil {
		return err
	}
	views := make([]keyView, len(keys))
	for i, k := range keys {
		views[i] = newKeyView(k)
	}
	return c.printer().Print(views, output.Lines(views))
}

func (c *CommandImplementation) ParseValues(params api.ParseValuesParams) error {
	values, err := parseAll(params.Inputs, klap.ParseLabelValue)
	if err != nil {
		return err
	}
	return c.printer().Print(values, output.Lines(values))
}

func (c *CommandImplementation) ParseLabel(params api.ParseLabelParams) error {
	parse := klap.ParseLabel
	if params.Colon {
		parse = klap.ParseLabelColon
	}
	l, err := parse(params.Input)
	if err != nil {
		return err
	}
	return c.printer().Print(l, output.Lines([]colonView{{l}}))
}

func (c *CommandImplementation) ParseLabels(params api.ParseLabelsParams) error {
	input, err := c.readInput(params.Input)
	if err != nil {
		return err
	}
	ls, err := c.settings.ListFormat().Parse(input)
	if err != nil {
		return err
	}
	c.logger.Debug("Parsed labels", "format", c.settings.Labels.Format, "count", len(ls))

	views := make([]colonView, len(ls))
	for i, l := range ls {
		views[i] = colonView{l}
	}
	return c.printer().Print(ls, output.Lines(views))
}

func (c *CommandImplementation) ParseAnnotations(params api.ParseAnnotationsParams) error {
	as, err := parseAll(params.Inputs, klap.ParseAnnotation)
	if err != nil {
		return err
	}
	return c.printer().Print(as, func(w io.Writer) error {
		for _, a := range as {
			if _, err := fmt.Fprintf(w, "%s\t%q\n", a.Key, a.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
