// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-logr/logr"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"

	"github.com/openchoreo/klap/pkg/klap"
)

// PatchManifest merges labels and annotations into metadata of a single Kubernetes object
// given as YAML or JSON, using a JSON merge patch. The result is YAML. With nothing to merge
// the document is only re-encoded.
func PatchManifest(doc []byte, ls klap.LabelMap, as klap.AnnotationMap) ([]byte, error) {
	original, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert manifest to JSON: %w", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(original, &obj); err != nil || obj == nil {
		return nil, errors.New("manifest is not an object")
	}
	if len(ls) == 0 && len(as) == 0 {
		return yaml.JSONToYAML(original)
	}

	metadata := map[string]any{}
	if len(ls) > 0 {
		metadata["labels"] = ls.Strings()
	}
	if len(as) > 0 {
		metadata["annotations"] = as.Strings()
	}
	patch, err := json.Marshal(map[string]any{"metadata": metadata})
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata patch: %w", err)
	}

	merged, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to apply metadata patch: %w", err)
	}
	return yaml.JSONToYAML(merged)
}

// PatchManifests applies PatchManifest to every document of a YAML stream and writes the
// results separated by "---". Empty documents are dropped.
func PatchManifests(ctx context.Context, r io.Reader, w io.Writer, ls klap.LabelMap, as klap.AnnotationMap) error {
	log := logr.FromContextOrDiscard(ctx)
	dec := yamlv3.NewDecoder(r)
	for i := 0; ; {
		var node yamlv3.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		if isEmptyDocument(&node) {
			continue
		}

		raw, err := yamlv3.Marshal(&node)
		if err != nil {
			return fmt.Errorf("failed to re-encode document %d: %w", i, err)
		}
		patched, err := PatchManifest(raw, ls, as)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(patched); err != nil {
			return err
		}
		log.V(1).Info("Patched manifest", "document", i, "labels", len(ls), "annotations", len(as))
		i++
	}
}

func isEmptyDocument(node *yamlv3.Node) bool {
	if node.Kind != yamlv3.DocumentNode {
		return node.Kind == 0
	}
	if len(node.Content) == 0 {
		return true
	}
	content := node.Content[0]
	return content.Kind == yamlv3.ScalarNode && content.ShortTag() == "!!null"
}
