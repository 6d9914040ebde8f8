// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// NodeValue is the typed polymorphic payload of a Node: the tagged union
// over null/bool/int/float/binary/timestamp/string/sequence/mapping/user
// that the constructor builds from a Node's tag and raw text, following
// the same discriminant-plus-flat-fields shape already used by Token and
// Event in yaml.go.

package libyaml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// ValueKind identifies which variant of a NodeValue is populated. The
// ordering doubles as the kind rank used by the total order over values:
// null < bool < int < float < binary < timestamp < string < sequence <
// mapping < user.
type ValueKind uint32

const (
	NullValue ValueKind = iota
	BoolValue
	IntValue
	FloatValue
	BinaryValue
	TimestampValue
	StringValue
	SequenceValue
	MappingValue
	UserValue
)

// NodeValuePair is one (key, value) entry of a MappingValue, preserving
// insertion order. Duplicate keys are tolerated here; it is the
// constructor's job to reject them for tags that forbid them.
type NodeValuePair struct {
	Key   *Node
	Value *Node
}

// NodeValue is the typed payload produced from a Node's tag and text.
// Exactly one of the kind-specific fields is meaningful, selected by Kind.
type NodeValue struct {
	// Kind selects which field below holds the payload.
	Kind ValueKind

	// Tag holds the tag the value was constructed from (the user tag,
	// for UserValue).
	Tag string

	// Bool holds the payload for BoolValue.
	Bool bool
	// Int holds the payload for IntValue.
	Int int64
	// Float holds the payload for FloatValue.
	Float float64
	// Binary holds the payload for BinaryValue.
	Binary []byte
	// Timestamp holds the payload for TimestampValue.
	Timestamp time.Time
	// Str holds the payload for StringValue.
	Str string
	// Sequence holds the payload for SequenceValue (also used for the
	// !!set tag, whose value is the ordered list of its keys).
	Sequence []*Node
	// Mapping holds the payload for MappingValue, in source order.
	Mapping []NodeValuePair
	// User holds the opaque payload for UserValue.
	User any
}

// ConstructValue builds the typed NodeValue for n, applying the default
// tag registry the way Constructor's reflect-based path does, but
// producing the tagged-union payload described in §4.7 instead of
// reflecting into a caller-supplied Go value. DocumentNode and AliasNode
// are followed transparently to the Node they stand for.
func ConstructValue(n *Node) (v NodeValue, err error) {
	defer handleErr(&err)
	return n.constructValue(), nil
}

func (n *Node) constructValue() NodeValue {
	switch n.Kind {
	case DocumentNode:
		if len(n.Content) != 1 {
			failf("document node must have exactly one child")
		}
		return n.Content[0].constructValue()
	case AliasNode:
		if n.Alias == nil {
			failf("alias node has no target")
		}
		return n.Alias.constructValue()
	case ScalarNode:
		return n.constructScalarValue()
	case SequenceNode:
		return n.constructSequenceValue()
	case MappingNode:
		return n.constructMappingValue()
	}
	failf("cannot construct value for node kind %d", n.Kind)
	panic("unreachable")
}

func (n *Node) constructScalarValue() NodeValue {
	var tag string
	var resolved any
	if n.indicatedString() {
		tag, resolved = strTag, n.Value
	} else {
		tag, resolved = resolve(n.Tag, n.Value)
	}

	switch tag {
	case nullTag:
		return NodeValue{Kind: NullValue, Tag: nullTag}
	case boolTag:
		if b, ok := canonicalBool(resolved); ok {
			return NodeValue{Kind: BoolValue, Tag: boolTag, Bool: b}
		}
	case intTag:
		if i, ok := canonicalInt(resolved); ok {
			return NodeValue{Kind: IntValue, Tag: intTag, Int: i}
		}
	case floatTag:
		if f, ok := resolved.(float64); ok {
			return NodeValue{Kind: FloatValue, Tag: floatTag, Float: f}
		}
		if i, ok := canonicalInt(resolved); ok {
			return NodeValue{Kind: FloatValue, Tag: floatTag, Float: float64(i)}
		}
	case binaryTag:
		data, err := decodeBase64(resolved)
		if err != nil {
			failf("!!binary value contains invalid base64 data")
		}
		return NodeValue{Kind: BinaryValue, Tag: binaryTag, Binary: data}
	case timestampTag:
		if t, ok := resolved.(time.Time); ok {
			return NodeValue{Kind: TimestampValue, Tag: timestampTag, Timestamp: t}
		}
		if t, ok := parseTimestamp(n.Value); ok {
			return NodeValue{Kind: TimestampValue, Tag: timestampTag, Timestamp: t}
		}
	case mergeTag:
		failf("cannot construct a value for a merge key")
	case strTag:
		return NodeValue{Kind: StringValue, Tag: strTag, Str: n.Value}
	}

	// Unknown/custom tag: surface the raw text as an opaque user value.
	return NodeValue{Kind: UserValue, Tag: n.ShortTag(), User: n.Value}
}

func (n *Node) constructSequenceValue() NodeValue {
	tag := n.ShortTag()
	if tag == "" {
		tag = seqTag
	}
	return NodeValue{Kind: SequenceValue, Tag: tag, Sequence: n.Content}
}

func (n *Node) constructMappingValue() NodeValue {
	tag := n.ShortTag()
	if tag == "" {
		tag = mapTag
	}
	if len(n.Content)%2 != 0 {
		failf("mapping node has an odd number of content entries")
	}

	pairs := make([]NodeValuePair, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		pairs = append(pairs, NodeValuePair{Key: n.Content[i], Value: n.Content[i+1]})
	}

	switch tag {
	case mapTag, "!!omap":
		checkUniqueKeys(tag, pairs)
	case "!!set":
		checkUniqueKeys(tag, pairs)
		keys := make([]*Node, len(pairs))
		for i, p := range pairs {
			keys[i] = p.Key
		}
		return NodeValue{Kind: SequenceValue, Tag: tag, Sequence: keys}
	case "!!pairs":
		// Duplicates permitted; nothing to check.
	}
	return NodeValue{Kind: MappingValue, Tag: tag, Mapping: pairs}
}

func checkUniqueKeys(tag string, pairs []NodeValuePair) {
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].Key.Equal(pairs[j].Key) {
				failf("duplicate entry in a %s: %s", tag, pairs[i].Key.DebugString())
			}
		}
	}
}

func canonicalBool(resolved any) (bool, bool) {
	switch v := resolved.(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "y", "Y", "yes", "Yes", "YES", "on", "On", "ON", "true", "True", "TRUE":
			return true, true
		case "n", "N", "no", "No", "NO", "off", "Off", "OFF", "false", "False", "FALSE":
			return false, true
		}
	}
	return false, false
}

func canonicalInt(resolved any) (int64, bool) {
	switch v := resolved.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

func decodeBase64(resolved any) ([]byte, error) {
	s, ok := resolved.(string)
	if !ok {
		return nil, fmt.Errorf("not a string")
	}
	return base64.StdEncoding.DecodeString(s)
}

// TypedValue returns the Node's typed payload, computed from its tag and
// content on first access and cached thereafter (a Node, once composed,
// is immutable from the caller's perspective).
func (n *Node) TypedValue() (*NodeValue, error) {
	if n.cachedValue != nil {
		return n.cachedValue, nil
	}
	v, err := ConstructValue(n)
	if err != nil {
		return nil, err
	}
	n.cachedValue = &v
	return n.cachedValue, nil
}

// ValueKind returns the kind of the node's typed payload.
func (n *Node) ValueKind() (ValueKind, error) {
	v, err := n.TypedValue()
	if err != nil {
		return 0, err
	}
	return v.Kind, nil
}

// AsString returns the node's value in string form: bools, ints and floats
// are formatted with strconv, timestamps as RFC 3339, null as the empty
// string, and binary as its raw decoded bytes. Collections are an error.
func (n *Node) AsString() (string, error) {
	v, err := n.TypedValue()
	if err != nil {
		return "", err
	}
	switch v.Kind {
	case NullValue:
		return "", nil
	case BoolValue:
		return strconv.FormatBool(v.Bool), nil
	case IntValue:
		return strconv.FormatInt(v.Int, 10), nil
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil
	case BinaryValue:
		return string(v.Binary), nil
	case TimestampValue:
		return v.Timestamp.Format(time.RFC3339Nano), nil
	case StringValue:
		return v.Str, nil
	}
	return "", fmt.Errorf("yaml: cannot convert %s to a string", n.ShortTag())
}

// AsInt returns the node's value as an int64, converting a float with no
// fractional part.
func (n *Node) AsInt() (int64, error) {
	v, err := n.TypedValue()
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case IntValue:
		return v.Int, nil
	case FloatValue:
		if i := int64(v.Float); float64(i) == v.Float {
			return i, nil
		}
	case BoolValue:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("yaml: cannot convert %s to an int", n.ShortTag())
}

// AsFloat returns the node's value as a float64.
func (n *Node) AsFloat() (float64, error) {
	v, err := n.TypedValue()
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case FloatValue:
		return v.Float, nil
	case IntValue:
		return float64(v.Int), nil
	}
	return 0, fmt.Errorf("yaml: cannot convert %s to a float", n.ShortTag())
}

// AsBool returns the node's value as a bool.
func (n *Node) AsBool() (bool, error) {
	v, err := n.TypedValue()
	if err != nil {
		return false, err
	}
	if v.Kind == BoolValue {
		return v.Bool, nil
	}
	return false, fmt.Errorf("yaml: cannot convert %s to a bool", n.ShortTag())
}

// AsBinary returns the node's value as a byte slice.
func (n *Node) AsBinary() ([]byte, error) {
	v, err := n.TypedValue()
	if err != nil {
		return nil, err
	}
	switch v.Kind {
	case BinaryValue:
		return v.Binary, nil
	case StringValue:
		return []byte(v.Str), nil
	}
	return nil, fmt.Errorf("yaml: cannot convert %s to binary", n.ShortTag())
}

// AsTimestamp returns the node's value as a time.Time.
func (n *Node) AsTimestamp() (time.Time, error) {
	v, err := n.TypedValue()
	if err != nil {
		return time.Time{}, err
	}
	if v.Kind == TimestampValue {
		return v.Timestamp, nil
	}
	return time.Time{}, fmt.Errorf("yaml: cannot convert %s to a timestamp", n.ShortTag())
}

// Len returns the number of elements in a sequence or pairs in a mapping.
func (n *Node) Len() (int, error) {
	v, err := n.TypedValue()
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case SequenceValue:
		return len(v.Sequence), nil
	case MappingValue:
		return len(v.Mapping), nil
	}
	return 0, fmt.Errorf("yaml: %s has no length", n.ShortTag())
}

// Index returns the i-th element of a sequence node.
func (n *Node) Index(i int) (*Node, error) {
	v, err := n.TypedValue()
	if err != nil {
		return nil, err
	}
	if v.Kind != SequenceValue {
		return nil, fmt.Errorf("yaml: %s is not a sequence", n.ShortTag())
	}
	if i < 0 || i >= len(v.Sequence) {
		return nil, fmt.Errorf("yaml: sequence index %d out of range", i)
	}
	return v.Sequence[i], nil
}

// MapGet looks up key in a mapping node by linear scan over its ordered
// pairs, returning the first match. Tolerant of duplicate keys, as
// required for !!pairs.
func (n *Node) MapGet(key *Node) (*Node, bool, error) {
	v, err := n.TypedValue()
	if err != nil {
		return nil, false, err
	}
	if v.Kind != MappingValue {
		return nil, false, fmt.Errorf("yaml: %s is not a mapping", n.ShortTag())
	}
	for _, p := range v.Mapping {
		if p.Key.Equal(key) {
			return p.Value, true, nil
		}
	}
	return nil, false, nil
}

// Equal reports whether n and other hold the same value, per the total
// order over Node values: same kind rank, then value-wise comparison,
// with NaN comparing equal to NaN.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	av, aerr := n.TypedValue()
	bv, berr := other.TypedValue()
	if aerr != nil || berr != nil {
		return false
	}
	return av.Equal(*bv)
}

// Equal reports whether v and o hold the same value under the total
// order described in §3: same kind, then value-wise comparison, with
// NaN comparing equal to NaN.
func (v NodeValue) Equal(o NodeValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NullValue:
		return true
	case BoolValue:
		return v.Bool == o.Bool
	case IntValue:
		return v.Int == o.Int
	case FloatValue:
		if math.IsNaN(v.Float) && math.IsNaN(o.Float) {
			return true
		}
		return v.Float == o.Float
	case BinaryValue:
		return bytes.Equal(v.Binary, o.Binary)
	case TimestampValue:
		return v.Timestamp.Equal(o.Timestamp)
	case StringValue:
		return v.Str == o.Str
	case SequenceValue:
		if len(v.Sequence) != len(o.Sequence) {
			return false
		}
		for i := range v.Sequence {
			if !v.Sequence[i].Equal(o.Sequence[i]) {
				return false
			}
		}
		return true
	case MappingValue:
		if len(v.Mapping) != len(o.Mapping) {
			return false
		}
		for i := range v.Mapping {
			if !v.Mapping[i].Key.Equal(o.Mapping[i].Key) || !v.Mapping[i].Value.Equal(o.Mapping[i].Value) {
				return false
			}
		}
		return true
	case UserValue:
		return reflect.DeepEqual(v.User, o.User)
	}
	return false
}

// DebugString returns a short human-readable rendering of n's typed
// value, for diagnostics and tests.
func (n *Node) DebugString() string {
	v, err := n.TypedValue()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", n.ShortTag(), err)
	}
	return v.String()
}

// String returns a short human-readable rendering of v.
func (v NodeValue) String() string {
	switch v.Kind {
	case NullValue:
		return "null"
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BinaryValue:
		return fmt.Sprintf("!!binary %dB", len(v.Binary))
	case TimestampValue:
		return v.Timestamp.Format(time.RFC3339Nano)
	case StringValue:
		return strconv.Quote(v.Str)
	case SequenceValue:
		parts := make([]string, len(v.Sequence))
		for i, item := range v.Sequence {
			parts[i] = item.DebugString()
		}
		return fmt.Sprintf("[%s]", joinStrings(parts))
	case MappingValue:
		parts := make([]string, len(v.Mapping))
		for i, p := range v.Mapping {
			parts[i] = fmt.Sprintf("%s: %s", p.Key.DebugString(), p.Value.DebugString())
		}
		return fmt.Sprintf("{%s}", joinStrings(parts))
	case UserValue:
		return fmt.Sprintf("!<%s> %v", v.Tag, v.User)
	}
	return "<invalid>"
}

func joinStrings(parts []string) string {
	var b bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p)
	}
	return b.String()
}
