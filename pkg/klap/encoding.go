// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

// Keys and values encode as their canonical strings and decode through the parse functions,
// so documents carrying an invalid key or value fail to decode. encoding/json,
// gopkg.in/yaml.v3 and sigs.k8s.io/yaml all use these methods, including for map keys.

// MarshalText implements encoding.TextMarshaler.
func (t text) MarshalText() ([]byte, error) {
	return []byte(t.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *KeyPrefix) UnmarshalText(data []byte) error {
	return unmarshalText(p, data, ParseKeyPrefix)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *KeyName) UnmarshalText(data []byte) error {
	return unmarshalText(n, data, ParseKeyName)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *LabelValue) UnmarshalText(data []byte) error {
	return unmarshalText(v, data, ParseLabelValue)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(data []byte) error {
	return unmarshalText(k, data, ParseKey)
}
