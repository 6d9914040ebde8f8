// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// RepresentValue is the inverse of ConstructValue: it builds a Node tree
// directly from a NodeValue, choosing the default tag for each variant
// the way the reflect-based Representer chooses one from a Go dynamic
// type. It lets callers who already hold a NodeValue (rather than an
// arbitrary Go value) hand it to the Serializer/Emitter pipeline without
// a reflection round-trip.

package libyaml

import (
	"fmt"
	"strconv"
	"time"
)

// RepresentValue builds a Node holding v, assigning the default tag for
// v.Kind unless v.Tag already names a more specific one (e.g. a custom
// tag surfaced on a UserValue).
func RepresentValue(v NodeValue) *Node {
	switch v.Kind {
	case NullValue:
		return &Node{Kind: ScalarNode, Tag: nullTag}
	case BoolValue:
		return &Node{Kind: ScalarNode, Tag: boolTag, Value: strconv.FormatBool(v.Bool)}
	case IntValue:
		return &Node{Kind: ScalarNode, Tag: intTag, Value: strconv.FormatInt(v.Int, 10)}
	case FloatValue:
		return &Node{Kind: ScalarNode, Tag: floatTag, Value: strconv.FormatFloat(v.Float, 'g', -1, 64)}
	case BinaryValue:
		n := &Node{Kind: ScalarNode, Tag: binaryTag, Value: encodeBase64(string(v.Binary))}
		n.Style = LiteralStyle
		return n
	case TimestampValue:
		return &Node{Kind: ScalarNode, Tag: timestampTag, Value: v.Timestamp.UTC().Format(time.RFC3339Nano)}
	case StringValue:
		n := &Node{Kind: ScalarNode, Tag: strTag}
		n.SetString(v.Str)
		return n
	case SequenceValue:
		tag := v.Tag
		if tag == "" {
			tag = seqTag
		}
		return &Node{Kind: SequenceNode, Tag: tag, Content: v.Sequence}
	case MappingValue:
		tag := v.Tag
		if tag == "" {
			tag = mapTag
		}
		content := make([]*Node, 0, len(v.Mapping)*2)
		for _, p := range v.Mapping {
			content = append(content, p.Key, p.Value)
		}
		return &Node{Kind: MappingNode, Tag: tag, Content: content}
	case UserValue:
		if n, ok := v.User.(*Node); ok {
			return n
		}
		return &Node{Kind: ScalarNode, Tag: v.Tag, Value: anyToString(v.User)}
	}
	return &Node{Kind: ScalarNode, Tag: nullTag}
}

func anyToString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
