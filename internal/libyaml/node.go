// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node stage: the in-memory representation tree shared by the composer,
// constructor, and representer. A Node mirrors a single production of the
// YAML grammar (a document, a scalar, a sequence, a mapping or an alias)
// together with the style and comments it was parsed, or should be
// emitted, with.

package libyaml

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies which grammar production a Node represents.
type Kind uint32

const (
	// DocumentNode wraps the single root node of a document.
	DocumentNode Kind = 1 << iota
	// SequenceNode is a sequence of nodes (block or flow).
	SequenceNode
	// MappingNode is a sequence of key/value node pairs (block or flow).
	MappingNode
	// ScalarNode holds a scalar value and its resolved or explicit tag.
	ScalarNode
	// AliasNode points back at a previously anchored node.
	AliasNode
	// StreamNode wraps an entire decoded stream, one per STREAM-START
	// event, when the composer has been asked to surface them.
	StreamNode
)

// Style holds presentation hints for a Node: which quoting, block scalar
// indicator, or collection layout was used (or is requested) for it.
type Style uint32

const (
	// TaggedStyle marks a node whose tag was explicit in the source and
	// must survive even if it matches the implicitly resolved tag.
	TaggedStyle Style = 1 << iota
	// DoubleQuotedStyle is a scalar quoted with double quotes.
	DoubleQuotedStyle
	// SingleQuotedStyle is a scalar quoted with single quotes.
	SingleQuotedStyle
	// LiteralStyle is a block scalar introduced with '|'.
	LiteralStyle
	// FoldedStyle is a block scalar introduced with '>'.
	FoldedStyle
	// FlowStyle renders a sequence or mapping using '[]'/'{}' syntax.
	FlowStyle
)

// StreamVersionDirective carries a %YAML directive captured on a StreamNode.
type StreamVersionDirective struct {
	Major, Minor int
}

// StreamTagDirective carries a %TAG directive captured on a StreamNode.
type StreamTagDirective struct {
	Handle, Prefix string
}

// Node represents a single production of the YAML grammar: a document, a
// scalar, a sequence, a mapping, or an alias. Composer builds Node trees
// out of event streams; Constructor turns them into Go values; Representer
// builds them out of Go values; Serializer turns them back into events.
type Node struct {
	// Kind identifies the grammar production this node represents.
	Kind Kind

	// Style holds style hints such as '|' or '>' for scalars, or ',
	// flow for collections.
	Style Style

	// Tag holds the YAML tag for the node, short form (e.g. !!str).
	Tag string

	// Value holds the scalar's string value. Unused for other kinds.
	Value string

	// Anchor holds the anchor name, if the node was anchored.
	Anchor string

	// Alias holds the node the alias refers to, for AliasNode.
	Alias *Node

	// Content holds the node's children: the document root for
	// DocumentNode, the entries for SequenceNode, and the alternating
	// key/value pairs for MappingNode.
	Content []*Node

	// HeadComment, LineComment and FootComment hold the comment text
	// immediately preceding, trailing, or following the node.
	HeadComment string
	LineComment string
	FootComment string

	// Line and Column hold the 1-based position the node was parsed at.
	Line   int
	Column int

	// Encoding holds the stream encoding, for StreamNode.
	Encoding Encoding
	// Version holds the %YAML directive in effect, for StreamNode.
	Version *StreamVersionDirective
	// TagDirectives holds the %TAG directives in effect, for StreamNode.
	TagDirectives []StreamTagDirective

	// cachedValue memoizes TypedValue's result; a Node is immutable from
	// the caller's perspective once composed, so the typed payload only
	// ever needs to be constructed once.
	cachedValue *NodeValue
}

// indicatedString reports whether the node's style pins its value to
// !!str regardless of what the resolver would otherwise infer from the
// text: quoted and block scalar styles are never subject to implicit
// tag resolution.
func (n *Node) indicatedString() bool {
	return n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0
}

// IsZero reports whether the node is the zero Node value, in which case
// it should be treated the same as a node holding an explicit null.
func (n *Node) IsZero() bool {
	return n.Kind == 0 && n.Style == 0 && n.Tag == "" && n.Value == "" &&
		n.Anchor == "" && n.Alias == nil && n.Content == nil &&
		n.HeadComment == "" && n.LineComment == "" && n.FootComment == "" &&
		n.Line == 0 && n.Column == 0
}

// ShortTag returns the node's tag with the long-form YAML tag prefix
// reduced to "!!", e.g. "tag:yaml.org,2002:str" becomes "!!str".
func (n *Node) ShortTag() string {
	if n.Kind == ScalarNode {
		if n.Tag == "" && (n.Value == "" || n.Value == "~" || n.Value == "null" || n.Value == "Null" || n.Value == "NULL") {
			return nullTag
		}
	}
	return shortTag(n.Tag)
}

// LongTag returns the node's tag with the "!!" shorthand expanded to the
// full "tag:yaml.org,2002:" prefix.
func (n *Node) LongTag() string {
	return longTag(n.Tag)
}

// SetString turns the node into a scalar holding the given string. Invalid
// UTF-8 content is tagged and encoded as !!binary, matching the behavior
// the representer applies when marshaling arbitrary byte slices.
func (n *Node) SetString(s string) {
	n.Kind = ScalarNode
	if !utf8.ValidString(s) {
		n.Tag = binaryTag
		n.Value = encodeBase64(s)
		return
	}
	n.Tag = strTag
	n.Value = s
	if shouldUseLiteralStyle(s) {
		n.Style = LiteralStyle
	}
}

// shouldUseLiteralStyle reports whether a plain multi-line string should be
// represented using the literal block style ('|') rather than quoting.
func shouldUseLiteralStyle(s string) bool {
	if s == "" || !strings.Contains(s, "\n") {
		return false
	}
	// Leading or trailing blank lines, or trailing spaces on any line,
	// can't be represented faithfully in literal style without extra
	// chomping/indentation indicators the emitter does not add for us,
	// so fall back to quoting for those.
	if strings.HasPrefix(s, "\n") || strings.HasSuffix(s, " \n") {
		return false
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.HasSuffix(line, " ") {
			return false
		}
	}
	return true
}
