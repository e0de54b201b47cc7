// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/openchoreo/klap/pkg/cli/types/api"
	"github.com/openchoreo/klap/pkg/klap/kube"
)

type selectorView struct {
	Selector string            `json:"selector" yaml:"selector"`
	Labels   map[string]string `json:"matchLabels" yaml:"matchLabels"`
}

func (c *CommandImplementation) BuildSelector(params api.SelectorParams) error {
	ls, err := c.settings.ListFormat().Parse(params.Input)
	if err != nil {
		return err
	}
	sel, err := kube.Selector(ls)
	if err != nil {
		return err
	}

	view := selectorView{Selector: sel.String(), Labels: kube.ToSet(ls.Map())}
	return c.printer().Print(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, view.Selector)
		return err
	})
}
