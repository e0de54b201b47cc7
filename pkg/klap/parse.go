// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

package klap

import "github.com/openchoreo/klap/internal/grammar"

func parse(r *grammar.Rule, what, input string) (*grammar.Node, error) {
	node, err := grammar.Parse(r, input)
	if err != nil {
		return nil, newParseError(what, input, err)
	}
	return node, nil
}

// ParseKeyPrefix parses a DNS subdomain such as "example.com".
func ParseKeyPrefix(s string) (KeyPrefix, error) {
	node, err := parse(keyPrefixWhole, "key prefix", s)
	if err != nil {
		return KeyPrefix{}, err
	}
	return KeyPrefix{text{node.Text}}, nil
}

// ParseKeyName parses the name part of a key.
func ParseKeyName(s string) (KeyName, error) {
	node, err := parse(keyNameWhole, "key name", s)
	if err != nil {
		return KeyName{}, err
	}
	return KeyName{text{node.Text}}, nil
}

// ParseLabelValue parses a label value. The empty string is a valid value.
func ParseLabelValue(s string) (LabelValue, error) {
	node, err := parse(labelValueWhole, "label value", s)
	if err != nil {
		return LabelValue{}, err
	}
	return LabelValue{text{node.Text}}, nil
}

// ParseKey parses "prefix/name" or "name".
func ParseKey(s string) (Key, error) {
	node, err := parse(keyRule, "key", s)
	if err != nil {
		return Key{}, err
	}
	return buildKey(node), nil
}

// MustParseKey is like ParseKey but panics on invalid input. It is meant for keys known at
// compile time.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseLabel parses "key=value" as found in environment-style settings. A missing "=value"
// and an empty value after "=" both give the empty value.
func ParseLabel(s string) (Label, error) {
	node, err := parse(labelEqRule, "label", s)
	if err != nil {
		return Label{}, err
	}
	return buildLabel(node), nil
}

// ParseLabels parses whitespace separated "key=value" labels.
func ParseLabels(s string) (Labels, error) {
	return parseList(labelsEnvRule, labelEqRule, s)
}

// ParseLabelColon parses "key:value". A missing ":value" and an empty value after ":" both
// give the empty value.
func ParseLabelColon(s string) (Label, error) {
	node, err := parse(labelColonRule, "label", s)
	if err != nil {
		return Label{}, err
	}
	return buildLabel(node), nil
}

// ParseLabelsCSV parses "key:value" labels separated by single commas. Whitespace around
// the commas is not accepted, and at least one label is required.
func ParseLabelsCSV(s string) (Labels, error) {
	return parseList(labelsCSVRule, labelColonRule, s)
}

// ParseLabelsWSV parses "key:value" labels separated by runs of spaces, tabs or newlines.
// Leading and trailing whitespace and blank lines are ignored.
func ParseLabelsWSV(s string) (Labels, error) {
	return parseList(labelsWSVRule, labelColonRule, s)
}

// ParseLabelsEither parses a list that is either entirely comma separated or entirely
// whitespace separated, as ParseLabelsCSV or ParseLabelsWSV would. Inputs that mix the two
// separators are rejected.
func ParseLabelsEither(s string) (Labels, error) {
	return parseList(labelsEitherRule, labelColonRule, s)
}

// ParseAnnotation parses "key=value" where the value is arbitrary text, including further
// "=" characters and whitespace. Only the key is validated.
func ParseAnnotation(s string) (Annotation, error) {
	node, err := parse(annotationRule, "annotation", s)
	if err != nil {
		return Annotation{}, err
	}
	a := Annotation{Key: buildKey(node.Child(keyRule))}
	if v := node.Child(annotationValueRule); v != nil {
		a.Value = v.Text
	}
	return a, nil
}

func parseList(list, item *grammar.Rule, s string) (Labels, error) {
	node, err := parse(list, "labels", s)
	if err != nil {
		return nil, err
	}
	items := node.Find(item)
	labels := make(Labels, 0, len(items))
	for _, n := range items {
		labels = append(labels, buildLabel(n))
	}
	return labels, nil
}

func buildKey(n *grammar.Node) Key {
	k := Key{name: KeyName{text{n.Child(keyNameRule).Text}}}
	if p := n.Child(keyPrefixRule); p != nil {
		k.prefix = KeyPrefix{text{p.Text}}
	}
	return k
}

func buildLabel(n *grammar.Node) Label {
	l := Label{Key: buildKey(n.Child(keyRule))}
	if v := n.Child(valueRule); v != nil {
		if lv := v.Child(labelValueRule); lv != nil {
			l.Value = LabelValue{text{lv.Text}}
		}
	}
	return l
}
