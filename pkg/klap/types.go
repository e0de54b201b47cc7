// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import "strings"

// KeyPrefix is the DNS subdomain before the "/" of a key, e.g. "app.kubernetes.io".
type KeyPrefix struct{ text }

// Compare orders prefixes by their text.
func (p KeyPrefix) Compare(o KeyPrefix) int { return p.compare(o.text) }

// KeyName is the mandatory name part of a key.
type KeyName struct{ text }

// Compare orders names by their text.
func (n KeyName) Compare(o KeyName) int { return n.compare(o.text) }

// LabelValue is the value of a label. The zero value is the empty value, which is valid.
type LabelValue struct{ text }

// Compare orders values by their text.
func (v LabelValue) Compare(o LabelValue) int { return v.compare(o.text) }

// IsEmpty reports whether v is the empty value.
func (v LabelValue) IsEmpty() bool { return v.s == "" }

// Key is a label or annotation key: an optional prefix and a name.
//
// Key is comparable and can be used as a map key. The zero Key is not valid; keys come from
// ParseKey or NewKey.
type Key struct {
	// A parsed prefix is never empty, so the zero KeyPrefix stands for "no prefix".
	prefix KeyPrefix
	name   KeyName
}

// NewKey returns a key without prefix.
func NewKey(name KeyName) Key {
	return Key{name: name}
}

// WithPrefix returns a copy of k using prefix p.
func (k Key) WithPrefix(p KeyPrefix) Key {
	return Key{prefix: p, name: k.name}
}

// WithoutPrefix returns a copy of k with the prefix removed.
func (k Key) WithoutPrefix() Key {
	return Key{name: k.name}
}

// Prefix returns the key prefix and whether the key has one.
func (k Key) Prefix() (KeyPrefix, bool) {
	return k.prefix, k.HasPrefix()
}

// HasPrefix reports whether the key has a prefix.
func (k Key) HasPrefix() bool {
	return k.prefix.s != ""
}

// Name returns the name part of the key.
func (k Key) Name() KeyName {
	return k.name
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String returns "prefix/name", or "name" when there is no prefix.
func (k Key) String() string {
	if !k.HasPrefix() {
		return k.name.s
	}
	var b strings.Builder
	b.Grow(len(k.prefix.s) + 1 + len(k.name.s))
	b.WriteString(k.prefix.s)
	b.WriteByte('/')
	b.WriteString(k.name.s)
	return b.String()
}

// Compare orders keys by prefix, then name. Keys without prefix sort first.
func (k Key) Compare(o Key) int {
	if c := k.prefix.Compare(o.prefix); c != 0 {
		return c
	}
	return k.name.Compare(o.name)
}

// Label is a key and value that both follow the Kubernetes label rules.
type Label struct {
	Key   Key        `json:"key" yaml:"key"`
	Value LabelValue `json:"value" yaml:"value"`
}

// NewLabel pairs a key with a value.
func NewLabel(key Key, value LabelValue) Label {
	return Label{Key: key, Value: value}
}

// Parts returns the key and value.
func (l Label) Parts() (Key, LabelValue) {
	return l.Key, l.Value
}

// String returns "key=value", the form accepted by ParseLabel.
func (l Label) String() string {
	return l.Key.String() + "=" + l.Value.s
}

// Annotation is a validated key with free-form text.
type Annotation struct {
	Key   Key    `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// NewAnnotation pairs a key with a value.
func NewAnnotation(key Key, value string) Annotation {
	return Annotation{Key: key, Value: value}
}

// Parts returns the key and value.
func (a Annotation) Parts() (Key, string) {
	return a.Key, a.Value
}

// String returns "key=value", the form accepted by ParseAnnotation.
func (a Annotation) String() string {
	return a.Key.String() + "=" + a.Value
}
