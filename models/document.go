// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// maxNodeDepth bounds nesting while expanding aliases.
	maxNodeDepth = 256
	// maxExpandedNodes bounds the size of a tree after alias expansion.
	maxExpandedNodes = 1 << 20
)

var (
	// ErrNotMapping is returned when the top level of a YAML document is not
	// a mapping (including an empty document).
	ErrNotMapping = errors.New("top level of the document is not a mapping")
	// ErrDocumentTooLarge is returned when alias expansion exceeds the depth
	// or node limits.
	ErrDocumentTooLarge = errors.New("document is too large after alias expansion")
	// ErrInvalidMerge is returned when a "<<" merge key holds something
	// other than a mapping or a sequence of mappings.
	ErrInvalidMerge = errors.New("merge key value is not a mapping or a sequence of mappings")
)

// Document is an ordered YAML mapping.
//
// Values are kept as [yaml.Node] trees whose Kind is the variant tag
// (scalar, sequence or mapping). Keys keep the order in which they were
// decoded or inserted, and that order is preserved on [Document.Encode].
type Document struct {
	root *yaml.Node
}

// NewDocument returns an empty mapping.
func NewDocument() *Document {
	return &Document{root: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// ParseDocument decodes data into a Document.
//
// The decoded tree is normalized: aliases are replaced with copies of their
// anchored nodes, anchors and comments are dropped and flow collections are
// switched to block style. "<<" merge keys are flattened into their mapping
// and a key repeated in one mapping keeps its first position and its last
// value. Scalar quoting is kept as written. Only the first document of a
// multi-document stream is used.
func ParseDocument(data []byte) (*Document, error) {
	var stream yaml.Node
	if err := yaml.Unmarshal(data, &stream); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}

	if stream.Kind != yaml.DocumentNode || len(stream.Content) == 0 {
		return nil, ErrNotMapping
	}

	root := stream.Content[0]
	budget := maxExpandedNodes
	if err := normalize(root, 0, &budget); err != nil {
		return nil, err
	}

	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	return &Document{root: root}, nil
}

// WrapMapping returns a Document view over an existing mapping node.
// Changes made through the view are visible in n.
func WrapMapping(n *yaml.Node) (*Document, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return &Document{root: n}, nil
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.root.Content) / 2
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.Len())
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		keys = append(keys, d.root.Content[i].Value)
	}
	return keys
}

// Get returns the value stored under the string key.
func (d *Document) Get(key string) (*yaml.Node, bool) {
	i := d.indexOf(StringNode(key))
	if i < 0 {
		return nil, false
	}
	return d.root.Content[i+1], true
}

// Set stores value under the string key. An existing key keeps its
// position; a new key is appended.
func (d *Document) Set(key string, value *yaml.Node) {
	d.SetNode(StringNode(key), value)
}

// SetNode is Set for an arbitrary scalar key node.
func (d *Document) SetNode(key, value *yaml.Node) {
	if i := d.indexOf(key); i >= 0 {
		d.root.Content[i+1] = value
		return
	}
	d.root.Content = append(d.root.Content, key, value)
}

// Delete removes the string key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	i := d.indexOf(StringNode(key))
	if i < 0 {
		return false
	}
	d.root.Content = append(d.root.Content[:i], d.root.Content[i+2:]...)
	return true
}

// Pairs calls fn for every top-level key/value pair in document order.
func (d *Document) Pairs(fn func(key, value *yaml.Node)) {
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		fn(d.root.Content[i], d.root.Content[i+1])
	}
}

// LookupNode returns the value stored under a key node matched with the same
// rules as [SameKey].
func (d *Document) LookupNode(key *yaml.Node) (*yaml.Node, bool) {
	i := d.indexOf(key)
	if i < 0 {
		return nil, false
	}
	return d.root.Content[i+1], true
}

// Node returns the underlying mapping node.
func (d *Document) Node() *yaml.Node {
	return d.root
}

// Decode decodes the document into v, e.g. a map[string]any.
func (d *Document) Decode(v any) error {
	return d.root.Decode(v)
}

// Encode writes the document as block-style YAML with 2-space indentation.
// Unicode is emitted literally and long lines are not wrapped.
//
// yaml.v3 escapes runes outside the Basic Multilingual Plane (emoji such
// as country flags), so those are swapped for unused private-use runes
// while encoding and swapped back in the output.
func (d *Document) Encode(w io.Writer) error {
	root, restore := protectAstral(d.root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	out := buf.String()
	if restore != nil {
		out = restore.Replace(out)
	}

	_, err := io.WriteString(w, out)
	return err
}

func (d *Document) indexOf(key *yaml.Node) int {
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if SameKey(d.root.Content[i], key) {
			return i
		}
	}
	return -1
}

// SameKey reports whether two mapping keys are equal: both scalars with the
// same resolved tag and value, so `1` and `"1"` are different keys.
func SameKey(a, b *yaml.Node) bool {
	return a.Kind == yaml.ScalarNode && b.Kind == yaml.ScalarNode &&
		a.Value == b.Value && a.ShortTag() == b.ShortTag()
}

// StringNode returns a plain string scalar.
func StringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func normalize(n *yaml.Node, depth int, budget *int) error {
	if depth > maxNodeDepth {
		return ErrDocumentTooLarge
	}

	*budget--
	if *budget < 0 {
		return ErrDocumentTooLarge
	}

	if n.Kind == yaml.AliasNode {
		if n.Alias == nil {
			return fmt.Errorf("unresolved alias %q", n.Value)
		}
		*n = *copyNode(n.Alias)
	}

	n.Anchor = ""
	n.Style &^= yaml.FlowStyle
	n.HeadComment, n.LineComment, n.FootComment = "", "", ""

	for _, child := range n.Content {
		if err := normalize(child, depth+1, budget); err != nil {
			return err
		}
	}

	if n.Kind == yaml.MappingNode {
		pairs, err := flattenMerges(n.Content)
		if err != nil {
			return err
		}
		n.Content = dedupeKeys(pairs)
	}

	return nil
}

// flattenMerges replaces "<<" entries with the pairs they reference. Merged
// pairs come before the mapping's own pairs and, for a sequence of sources,
// the later sources come first, so after dedupeKeys explicit keys win over
// merged ones and earlier sources win over later ones.
func flattenMerges(content []*yaml.Node) ([]*yaml.Node, error) {
	var merged, own []*yaml.Node
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]
		if !isMergeKey(key) {
			own = append(own, key, value)
			continue
		}

		switch value.Kind {
		case yaml.MappingNode:
			merged = append(merged, value.Content...)
		case yaml.SequenceNode:
			for j := len(value.Content) - 1; j >= 0; j-- {
				src := value.Content[j]
				if src.Kind != yaml.MappingNode {
					return nil, ErrInvalidMerge
				}
				merged = append(merged, src.Content...)
			}
		default:
			return nil, ErrInvalidMerge
		}
	}

	if merged == nil {
		return content, nil
	}
	return append(merged, own...), nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == "!!merge"
}

// dedupeKeys collapses repeated scalar keys: the first occurrence keeps its
// position and takes the value of the last one.
func dedupeKeys(content []*yaml.Node) []*yaml.Node {
	seen := make(map[string]int, len(content)/2)
	out := content[:0:0]
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]
		if key.Kind != yaml.ScalarNode {
			out = append(out, key, value)
			continue
		}

		id := key.ShortTag() + "\x00" + key.Value
		if at, ok := seen[id]; ok {
			out[at+1] = value
			continue
		}
		seen[id] = len(out)
		out = append(out, key, value)
	}
	return out
}

// protectAstral returns a copy of root where every rune above U+FFFF in a
// scalar is replaced by a private-use rune not otherwise present, plus the
// replacer reverting the substitution. root itself is returned with a nil
// replacer when there is nothing to protect or not enough free runes.
func protectAstral(root *yaml.Node) (*yaml.Node, *strings.Replacer) {
	used := make(map[rune]bool)
	astral := make(map[rune]rune)
	walkScalars(root, func(n *yaml.Node) {
		for _, r := range n.Value {
			switch {
			case r > 0xFFFF:
				astral[r] = 0
			case r >= privateUseFirst && r <= privateUseLast:
				used[r] = true
			}
		}
	})
	if len(astral) == 0 {
		return root, nil
	}

	next := rune(privateUseFirst)
	pairs := make([]string, 0, 2*len(astral))
	for r := range astral {
		for next <= privateUseLast && used[next] {
			next++
		}
		if next > privateUseLast {
			return root, nil
		}
		astral[r] = next
		pairs = append(pairs, string(next), string(r))
		next++
	}

	c := copyNode(root)
	walkScalars(c, func(n *yaml.Node) {
		if !hasAstral(n.Value) {
			return
		}
		n.Value = strings.Map(func(r rune) rune {
			if p, ok := astral[r]; ok {
				return p
			}
			return r
		}, n.Value)
	})

	return c, strings.NewReplacer(pairs...)
}

const (
	privateUseFirst = 0xE000
	privateUseLast  = 0xF8FF
)

func hasAstral(s string) bool {
	for _, r := range s {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

func walkScalars(n *yaml.Node, fn func(*yaml.Node)) {
	if n.Kind == yaml.ScalarNode {
		fn(n)
	}
	for _, child := range n.Content {
		walkScalars(child, fn)
	}
}

// copyNode copies n and its children. Alias nodes inside are copied as
// aliases and expanded later by normalize.
func copyNode(n *yaml.Node) *yaml.Node {
	c := *n
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = copyNode(child)
		}
	}
	return &c
}
