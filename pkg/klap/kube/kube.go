// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package kube connects parsed labels and annotations to Kubernetes API machinery types.
package kube

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/go-logr/logr"
	apivalidation "k8s.io/apimachinery/pkg/api/validation"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metav1validation "k8s.io/apimachinery/pkg/apis/meta/v1/validation"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/openchoreo/klap/pkg/klap"
)

// ToSet converts m to a labels.Set.
func ToSet(m klap.LabelMap) labels.Set {
	return labels.Set(m.Strings())
}

// FromSet parses every entry of a plain label map. Entries are checked in key order and the
// first invalid one is returned as the error.
func FromSet(set map[string]string) (klap.LabelMap, error) {
	m := make(klap.LabelMap, len(set))
	for _, k := range slices.Sorted(maps.Keys(set)) {
		key, err := klap.ParseKey(k)
		if err != nil {
			return nil, err
		}
		value, err := klap.ParseLabelValue(set[k])
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", k, err)
		}
		m[key] = value
	}
	return m, nil
}

// Selector returns an equality selector matching every label in ls. Duplicate keys resolve
// to their last value.
func Selector(ls klap.Labels) (labels.Selector, error) {
	sel, err := labels.ValidatedSelectorFromSet(ToSet(ls.Map()))
	if err != nil {
		return nil, fmt.Errorf("failed to build selector: %w", err)
	}
	return sel, nil
}

// ValidateLabels runs the apiserver's label validation on m. The apiserver is stricter than
// klap about key prefixes: it requires lowercase and at most 253 characters.
func ValidateLabels(m klap.LabelMap, fldPath *field.Path) field.ErrorList {
	return metav1validation.ValidateLabels(m.Strings(), fldPath)
}

// ValidateAnnotations runs the apiserver's annotation validation on m, including the total
// size limit.
func ValidateAnnotations(m klap.AnnotationMap, fldPath *field.Path) field.ErrorList {
	return apivalidation.ValidateAnnotations(m.Strings(), fldPath)
}

// ApplyLabels merges m into the labels of obj. Existing labels with other keys are kept.
func ApplyLabels(ctx context.Context, obj metav1.Object, m klap.LabelMap) {
	entries := make(map[klap.Key]string, len(m))
	for k, v := range m {
		entries[k] = v.String()
	}
	obj.SetLabels(merge(ctx, "label", obj, obj.GetLabels(), entries))
}

// ApplyAnnotations merges m into the annotations of obj.
func ApplyAnnotations(ctx context.Context, obj metav1.Object, m klap.AnnotationMap) {
	obj.SetAnnotations(merge(ctx, "annotation", obj, obj.GetAnnotations(), m))
}

func merge(ctx context.Context, kind string, obj metav1.Object, current map[string]string, entries map[klap.Key]string) map[string]string {
	log := logr.FromContextOrDiscard(ctx).WithValues("namespace", obj.GetNamespace(), "name", obj.GetName())

	out := make(map[string]string, len(current)+len(entries))
	maps.Copy(out, current)
	for _, k := range slices.SortedFunc(maps.Keys(entries), klap.Key.Compare) {
		key, value := k.String(), entries[k]
		if old, ok := out[key]; ok && old != value {
			log.V(1).Info("Overwriting "+kind, "key", key, "old", old, "new", value)
		}
		out[key] = value
	}
	return out
}
