// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package labels holds the label keys klap itself writes onto Kubernetes objects.
package labels

import "github.com/openchoreo/klap/pkg/klap"

// Recommended application labels, see
// https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
var (
	KeyName      = klap.MustParseKey("app.kubernetes.io/name")
	KeyInstance  = klap.MustParseKey("app.kubernetes.io/instance")
	KeyVersion   = klap.MustParseKey("app.kubernetes.io/version")
	KeyComponent = klap.MustParseKey("app.kubernetes.io/component")
	KeyPartOf    = klap.MustParseKey("app.kubernetes.io/part-of")
	KeyManagedBy = klap.MustParseKey("app.kubernetes.io/managed-by")
)

// ValueManagedBy is the managed-by value for objects patched by klap.
const ValueManagedBy = "klap"

// ManagedBy returns the label marking an object as patched by klap.
func ManagedBy() klap.Label {
	v, err := klap.ParseLabelValue(ValueManagedBy)
	if err != nil {
		panic(err)
	}
	return klap.NewLabel(KeyManagedBy, v)
}
