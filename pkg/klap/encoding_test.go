// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const labelMapYAML = `foo: bar
edwardgeorge.github.io/test-label: foo-bar
empty-label: ""
`

func expectedLabelMap(t *testing.T) LabelMap {
	return LabelMap{
		MustParseKey("foo"):                               mustValue(t, "bar"),
		MustParseKey("edwardgeorge.github.io/test-label"): mustValue(t, "foo-bar"),
		MustParseKey("empty-label"):                       mustValue(t, ""),
	}
}

func TestLabelMap_YAML(t *testing.T) {
	var parsed LabelMap
	require.NoError(t, yaml.Unmarshal([]byte(labelMapYAML), &parsed))
	assert.Equal(t, expectedLabelMap(t), parsed)

	out, err := yaml.Marshal(parsed)
	require.NoError(t, err)

	var again LabelMap
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, parsed, again)
}

func TestLabelMap_SigsYAML(t *testing.T) {
	out, err := sigsyaml.Marshal(expectedLabelMap(t))
	require.NoError(t, err)
	assert.Equal(t, "edwardgeorge.github.io/test-label: foo-bar\nempty-label: \"\"\nfoo: bar\n", string(out))

	var parsed LabelMap
	require.NoError(t, sigsyaml.Unmarshal(out, &parsed))
	assert.Equal(t, expectedLabelMap(t), parsed)
}

func TestLabelMap_JSON(t *testing.T) {
	out, err := json.Marshal(expectedLabelMap(t))
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":"bar","edwardgeorge.github.io/test-label":"foo-bar","empty-label":""}`, string(out))

	var parsed LabelMap
	require.NoError(t, json.Unmarshal(out, &parsed))
	assert.Equal(t, expectedLabelMap(t), parsed)
}

func TestDecode_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "invalid key", doc: "foo-: bar\n"},
		{name: "invalid value", doc: "foo: bar-\n"},
		{name: "value too long", doc: "foo: " + maxPart + "4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed LabelMap
			err := yaml.Unmarshal([]byte(tt.doc), &parsed)
			require.Error(t, err)

			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}

	var parsed LabelMap
	assert.Error(t, json.Unmarshal([]byte(`{"foo/":"bar"}`), &parsed))
}

func TestLabel_Encoding(t *testing.T) {
	label, err := ParseLabelColon("example.com/tier:web")
	require.NoError(t, err)

	out, err := json.Marshal(label)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"example.com/tier","value":"web"}`, string(out))

	var decoded Label
	require.NoError(t, yaml.Unmarshal([]byte("key: example.com/tier\nvalue: web\n"), &decoded))
	assert.Equal(t, label, decoded)

	annotations := Annotations{NewAnnotation(MustParseKey("note"), "free text")}
	out, err = sigsyaml.Marshal(annotations)
	require.NoError(t, err)
	assert.Equal(t, "- key: note\n  value: free text\n", string(out))
}

func TestKeyParts_Encoding(t *testing.T) {
	var doc struct {
		Prefix KeyPrefix `json:"prefix"`
		Name   KeyName   `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"prefix":"example.com","name":"web"}`), &doc))
	assert.Equal(t, "example.com", doc.Prefix.String())
	assert.Equal(t, "web", doc.Name.String())

	assert.Error(t, json.Unmarshal([]byte(`{"prefix":"example_com","name":"web"}`), &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefix":"example.com","name":"web"}`, string(out))
}
