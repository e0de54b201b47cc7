// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"

	"github.com/openchoreo/klap/pkg/klap"
)

const deployment = `apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  labels:
    app: old
    keep: me
spec:
  replicas: 2
`

func decodeObject(doc []byte) *unstructured.Unstructured {
	GinkgoHelper()
	obj := &unstructured.Unstructured{}
	Expect(yaml.Unmarshal(doc, &obj.Object)).To(Succeed())
	return obj
}

var _ = Describe("PatchManifest", func() {
	It("merges labels and annotations into metadata", func() {
		out, err := PatchManifest([]byte(deployment),
			mustLabels("app:web,example.com/tier:frontend").Map(),
			mustAnnotations("note=hello world"))
		Expect(err).NotTo(HaveOccurred())

		obj := decodeObject(out)
		Expect(obj.GetName()).To(Equal("web"))
		Expect(obj.GetLabels()).To(Equal(map[string]string{
			"app":              "web",
			"keep":             "me",
			"example.com/tier": "frontend",
		}))
		Expect(obj.GetAnnotations()).To(Equal(map[string]string{"note": "hello world"}))

		Expect(obj.Object).To(HaveKeyWithValue("spec", map[string]any{"replicas": float64(2)}))
	})

	It("accepts JSON input", func() {
		out, err := PatchManifest([]byte(`{"kind":"ConfigMap","metadata":{"name":"c"}}`),
			mustLabels("app:web").Map(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(decodeObject(out).GetLabels()).To(Equal(map[string]string{"app": "web"}))
	})

	It("leaves the object alone when there is nothing to add", func() {
		out, err := PatchManifest([]byte(deployment), nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(decodeObject(out).GetLabels()).To(Equal(map[string]string{"app": "old", "keep": "me"}))
	})

	It("does not add metadata to an object without any when there is nothing to add", func() {
		out, err := PatchManifest([]byte("kind: List\nitems: []\n"), klap.LabelMap{}, klap.AnnotationMap{})
		Expect(err).NotTo(HaveOccurred())
		Expect(decodeObject(out).Object).NotTo(HaveKey("metadata"))
		Expect(string(out)).To(Equal("items: []\nkind: List\n"))
	})

	It("rejects documents that are not objects", func() {
		_, err := PatchManifest([]byte("- a\n- b\n"), mustLabels("app:web").Map(), nil)
		Expect(err).To(MatchError("manifest is not an object"))
	})
})

var _ = Describe("PatchManifests", func() {
	It("patches every document of a stream", func() {
		in := deployment + "---\n---\napiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\n"

		var out bytes.Buffer
		Expect(PatchManifests(context.Background(), strings.NewReader(in), &out, mustLabels("team:a").Map(), nil)).To(Succeed())

		docs := strings.Split(out.String(), "---\n")
		Expect(docs).To(HaveLen(2))
		Expect(decodeObject([]byte(docs[0])).GetLabels()).To(HaveKeyWithValue("team", "a"))
		Expect(decodeObject([]byte(docs[1])).GetName()).To(Equal("settings"))
		Expect(decodeObject([]byte(docs[1])).GetLabels()).To(Equal(map[string]string{"team": "a"}))
	})

	It("writes nothing for an empty stream", func() {
		var out bytes.Buffer
		Expect(PatchManifests(context.Background(), strings.NewReader(""), &out, mustLabels("team:a").Map(), nil)).To(Succeed())
		Expect(out.Len()).To(BeZero())
	})

	It("reports the failing document", func() {
		var out bytes.Buffer
		err := PatchManifests(context.Background(), strings.NewReader(deployment+"---\n- a\n"), &out, mustLabels("team:a").Map(), nil)
		Expect(err).To(MatchError("document 1: manifest is not an object"))
	})
})
