// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import "strings"

// text is the validated string carried by KeyPrefix, KeyName and LabelValue. Its field is
// unexported, so a value can only come from a parse function.
type text struct {
	s string
}

// String returns the text exactly as it was parsed, which is also its canonical form.
func (t text) String() string {
	return t.s
}

func (t text) compare(o text) int {
	return strings.Compare(t.s, o.s)
}

// unmarshalText replaces *dst with the result of parsing data, leaving it untouched on error.
func unmarshalText[T any](dst *T, data []byte, parse func(string) (T, error)) error {
	v, err := parse(string(data))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
