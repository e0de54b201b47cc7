// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import (
	"maps"
	"slices"
)

// Labels is an ordered list of labels. Duplicate keys are kept as given.
type Labels []Label

// Map folds ls into a map. A key that occurs more than once keeps its last value.
func (ls Labels) Map() LabelMap {
	m := make(LabelMap, len(ls))
	for _, l := range ls {
		m[l.Key] = l.Value
	}
	return m
}

// LabelMap maps label keys to values.
type LabelMap map[Key]LabelValue

// Keys returns the keys of m in Key.Compare order.
func (m LabelMap) Keys() []Key {
	return slices.SortedFunc(maps.Keys(m), Key.Compare)
}

// Labels returns the entries of m as a list sorted by key.
func (m LabelMap) Labels() Labels {
	out := make(Labels, 0, len(m))
	for _, k := range m.Keys() {
		out = append(out, Label{Key: k, Value: m[k]})
	}
	return out
}

// Strings returns m as plain strings, the shape Kubernetes object metadata uses.
func (m LabelMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k.String()] = v.String()
	}
	return out
}

// Annotations is an ordered list of annotations. Duplicate keys are kept as given.
type Annotations []Annotation

// Map folds as into a map. A key that occurs more than once keeps its last value.
func (as Annotations) Map() AnnotationMap {
	m := make(AnnotationMap, len(as))
	for _, a := range as {
		m[a.Key] = a.Value
	}
	return m
}

// AnnotationMap maps annotation keys to values.
type AnnotationMap map[Key]string

// Keys returns the keys of m in Key.Compare order.
func (m AnnotationMap) Keys() []Key {
	return slices.SortedFunc(maps.Keys(m), Key.Compare)
}

// Strings returns m as plain strings.
func (m AnnotationMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k.String()] = v
	}
	return out
}
