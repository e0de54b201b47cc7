// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"context"
	"errors"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/openchoreo/klap/pkg/klap"
)

func mustLabels(s string) klap.Labels {
	GinkgoHelper()
	ls, err := klap.ParseLabelsEither(s)
	Expect(err).NotTo(HaveOccurred())
	return ls
}

func mustAnnotations(items ...string) klap.AnnotationMap {
	GinkgoHelper()
	var as klap.Annotations
	for _, item := range items {
		a, err := klap.ParseAnnotation(item)
		Expect(err).NotTo(HaveOccurred())
		as = append(as, a)
	}
	return as.Map()
}

var _ = Describe("label sets", func() {
	It("converts a label map to a labels.Set", func() {
		set := ToSet(mustLabels("app:web,example.com/tier:frontend,empty:").Map())
		Expect(set).To(Equal(labels.Set{
			"app":              "web",
			"example.com/tier": "frontend",
			"empty":            "",
		}))
	})

	It("parses a plain map back", func() {
		m, err := FromSet(map[string]string{"app": "web", "example.com/tier": "frontend"})
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(mustLabels("app:web example.com/tier:frontend").Map()))
	})

	It("rejects an invalid key", func() {
		_, err := FromSet(map[string]string{"app-": "web"})
		Expect(err).To(MatchError(ContainSubstring(`invalid key "app-"`)))
	})

	It("names the key of an invalid value", func() {
		_, err := FromSet(map[string]string{"app": "web", "tier": "-front"})
		Expect(err).To(MatchError(ContainSubstring(`label "tier"`)))

		var perr *klap.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.What).To(Equal("label value"))
	})
})

var _ = Describe("Selector", func() {
	It("matches objects carrying every label", func() {
		sel, err := Selector(mustLabels("tier:frontend app:web"))
		Expect(err).NotTo(HaveOccurred())
		Expect(sel.String()).To(Equal("app=web,tier=frontend"))
		Expect(sel.Matches(labels.Set{"app": "web", "tier": "frontend", "x": "y"})).To(BeTrue())
		Expect(sel.Matches(labels.Set{"app": "web"})).To(BeFalse())
	})

	It("uses the last value of a duplicated key", func() {
		sel, err := Selector(mustLabels("app:a,app:b"))
		Expect(err).NotTo(HaveOccurred())
		Expect(sel.String()).To(Equal("app=b"))
	})

	It("reports keys the apiserver would refuse", func() {
		_, err := Selector(mustLabels("Example.com/app:web"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("apiserver validation", func() {
	It("accepts ordinary labels", func() {
		errs := ValidateLabels(mustLabels("app:web example.com/tier:frontend").Map(), field.NewPath("metadata", "labels"))
		Expect(errs).To(BeEmpty())
	})

	It("flags uppercase prefixes", func() {
		errs := ValidateLabels(mustLabels("Example.com/app:web").Map(), field.NewPath("metadata", "labels"))
		Expect(errs).NotTo(BeEmpty())
		Expect(errs[0].Field).To(Equal("metadata.labels"))
	})

	It("flags prefixes longer than 253 characters", func() {
		part := strings.Repeat("a", 63)
		key, err := klap.ParseKey(strings.Join([]string{part, part, part, part}, ".") + "/name")
		Expect(err).NotTo(HaveOccurred())

		errs := ValidateLabels(klap.LabelMap{key: klap.LabelValue{}}, field.NewPath("metadata", "labels"))
		Expect(errs).NotTo(BeEmpty())
	})

	It("enforces the total annotation size", func() {
		Expect(ValidateAnnotations(mustAnnotations("note=hello"), field.NewPath("metadata", "annotations"))).To(BeEmpty())

		big := mustAnnotations("note=" + strings.Repeat("x", 256*1024+1))
		Expect(ValidateAnnotations(big, field.NewPath("metadata", "annotations"))).NotTo(BeEmpty())
	})
})

var _ = Describe("ApplyLabels", func() {
	var (
		ctx  context.Context
		logs []string
	)

	BeforeEach(func() {
		logs = nil
		logger := funcr.New(func(prefix, args string) {
			logs = append(logs, args)
		}, funcr.Options{Verbosity: 1})
		ctx = logr.NewContext(context.Background(), logger)
	})

	It("merges into typed objects and logs overwrites", func() {
		cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{
			Name:      "settings",
			Namespace: "default",
			Labels:    map[string]string{"app": "old", "keep": "me"},
		}}

		ApplyLabels(ctx, cm, mustLabels("app:new tier:web").Map())

		Expect(cm.Labels).To(Equal(map[string]string{"app": "new", "keep": "me", "tier": "web"}))
		Expect(logs).To(HaveLen(1))
		Expect(logs[0]).To(ContainSubstring("Overwriting label"))
		Expect(logs[0]).To(ContainSubstring("settings"))
	})

	It("sets labels on unstructured objects without any", func() {
		obj := &unstructured.Unstructured{}
		obj.SetAPIVersion("apps/v1")
		obj.SetKind("Deployment")
		obj.SetName("web")

		ApplyLabels(ctx, obj, mustLabels("app:web").Map())

		Expect(obj.GetLabels()).To(Equal(map[string]string{"app": "web"}))
		Expect(logs).To(BeEmpty())
	})

	It("merges annotations", func() {
		cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{
			Name:        "settings",
			Annotations: map[string]string{"note": "old"},
		}}

		ApplyAnnotations(ctx, cm, mustAnnotations("note=new text", "example.com/owner=team a"))

		Expect(cm.Annotations).To(Equal(map[string]string{"note": "new text", "example.com/owner": "team a"}))
		Expect(logs).To(HaveLen(1))
		Expect(logs[0]).To(ContainSubstring("Overwriting annotation"))
	})
})
