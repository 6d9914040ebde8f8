// Copyright (c) 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Resolver stage: infers the implicit tag of an untagged scalar from its
// plain text (bool, int, float, null, timestamp, merge key, or else string).
// Only true/false (in lower, title and upper case) resolve to !!bool; the
// YAML 1.1 forms yes/no/on/off and y/n resolve to !!str.

package libyaml

import (
	"encoding/base64"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Short-form tag constants used throughout the composer, constructor,
// representer and resolver.
const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	binaryTag    = "!!binary"
	mergeTag     = "!!merge"
)

const longTagPrefix = "tag:yaml.org,2002:"

var (
	longTags  = make(map[string]string)
	shortTags = make(map[string]string)
	tagMutex  sync.RWMutex
)

// shortTag reduces a long-form YAML tag to its "!!" shorthand, leaving
// any other tag untouched.
func shortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		tagMutex.RLock()
		stag, ok := shortTags[tag]
		tagMutex.RUnlock()
		if ok {
			return stag
		}
		stag = "!!" + tag[len(longTagPrefix):]
		tagMutex.Lock()
		shortTags[tag] = stag
		tagMutex.Unlock()
		return stag
	}
	return tag
}

// longTag expands a "!!" shorthand tag to its full "tag:yaml.org,2002:"
// form, leaving any other tag untouched.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		tagMutex.RLock()
		ltag, ok := longTags[tag]
		tagMutex.RUnlock()
		if ok {
			return ltag
		}
		ltag = longTagPrefix + tag[2:]
		tagMutex.Lock()
		longTags[tag] = ltag
		tagMutex.Unlock()
		return ltag
	}
	return tag
}

func resolvableTag(tag string) bool {
	switch tag {
	case "", strTag, boolTag, intTag, floatTag, nullTag, timestampTag:
		return true
	}
	return false
}

type resolveMapItem struct {
	value any
	tag   string
}

var (
	resolveTable = make([]byte, 256)
	resolveMap   = make(map[string]resolveMapItem)
	initResolve  sync.Once
)

func buildResolveTable() {
	t := resolveTable
	t['+'] = 'S'
	t['-'] = 'S'
	for _, c := range "0123456789" {
		t[c] = 'D'
	}
	for _, c := range "yYnNtTfFoO~" {
		t[c] = 'M'
	}
	t['.'] = '.'

	list := []struct {
		v   any
		tag string
		l   []string
	}{
		{v: true, tag: boolTag, l: []string{"true", "True", "TRUE"}},
		{v: false, tag: boolTag, l: []string{"false", "False", "FALSE"}},
		{tag: nullTag, l: []string{"", "~", "null", "Null", "NULL"}},
		{v: math.NaN(), tag: floatTag, l: []string{".nan", ".NaN", ".NAN"}},
		{v: math.Inf(+1), tag: floatTag, l: []string{".inf", ".Inf", ".INF"}},
		{v: math.Inf(+1), tag: floatTag, l: []string{"+.inf", "+.Inf", "+.INF"}},
		{v: math.Inf(-1), tag: floatTag, l: []string{"-.inf", "-.Inf", "-.INF"}},
		{v: "<<", tag: mergeTag, l: []string{"<<"}},
	}
	for _, item := range list {
		for _, s := range item.l {
			resolveMap[s] = resolveMapItem{value: item.v, tag: item.tag}
		}
	}
}

var yamlStyleFloat = regexp.MustCompile(`^[-+]?(\.\d+|\d+(\.\d*)?)([eE][-+]?\d+)?$`)

// resolve infers the implicit tag and typed Go value for an untagged
// scalar. When tag is non-empty and not one of the core-schema tags, the
// value is returned unresolved: explicit custom tags are left for the
// constructor's registry to handle.
func resolve(tag, in string) (rtag string, out any) {
	initResolve.Do(buildResolveTable)

	tag = shortTag(tag)
	if !resolvableTag(tag) {
		return tag, in
	}

	defer func() {
		switch tag {
		case "", rtag, strTag, binaryTag:
			return
		case floatTag:
			if rtag == intTag {
				switch v := out.(type) {
				case int64:
					rtag, out = floatTag, float64(v)
					return
				case int:
					rtag, out = floatTag, float64(v)
					return
				}
			}
		}
		failf("cannot decode %s `%s` as a %s", shortTag(rtag), in, shortTag(tag))
	}()

	hint := byte('N')
	if in != "" {
		hint = resolveTable[in[0]]
	}
	if hint == 0 || tag == strTag || tag == binaryTag {
		return strTag, in
	}

	if item, ok := resolveMap[in]; ok {
		return item.tag, item.value
	}

	switch hint {
	case '.':
		if floatv, err := strconv.ParseFloat(in, 64); err == nil {
			return floatTag, floatv
		}
	case 'D', 'S':
		if tag == "" || tag == timestampTag {
			if t, ok := parseTimestamp(in); ok {
				return timestampTag, t
			}
		}
		plain := strings.ReplaceAll(in, "_", "")
		if intv, err := strconv.ParseInt(plain, 0, 64); err == nil {
			if intv == int64(int(intv)) {
				return intTag, int(intv)
			}
			return intTag, intv
		}
		if uintv, err := strconv.ParseUint(plain, 0, 64); err == nil {
			return intTag, uintv
		}
		if yamlStyleFloat.MatchString(plain) {
			if floatv, err := strconv.ParseFloat(plain, 64); err == nil {
				return floatTag, floatv
			}
		}
	}
	return strTag, in
}

// encodeBase64 encodes s as base64, broken into multiple lines as
// appropriate for the resulting length, the way the emitter expects
// !!binary scalars to be wrapped.
func encodeBase64(s string) string {
	const lineLen = 70
	encLen := base64.StdEncoding.EncodedLen(len(s))
	lines := encLen/lineLen + 1
	buf := make([]byte, encLen*2+lines)
	in := buf[0:encLen]
	out := buf[encLen:]
	base64.StdEncoding.Encode(in, []byte(s))
	k := 0
	for i := 0; i < len(in); i += lineLen {
		j := i + lineLen
		if j > len(in) {
			j = len(in)
		}
		k += copy(out[k:], in[i:j])
		if lines > 1 {
			out[k] = '\n'
			k++
		}
	}
	return string(out[:k])
}

// allowedTimestampFormats is a subset of the formats allowed by
// http://yaml.org/type/timestamp.html.
var allowedTimestampFormats = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// parseTimestamp parses s as a timestamp string and reports whether it
// succeeded.
func parseTimestamp(s string) (time.Time, bool) {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			break
		}
	}
	if i != 4 || i == len(s) || s[i] != '-' {
		return time.Time{}, false
	}
	for _, format := range allowedTimestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Resolver applies implicit tag resolution to a single scalar Node built
// outside of the composer, such as one assembled programmatically before a
// dump. It does not descend into collections or documents.
type Resolver struct {
	opts *Options
}

// NewResolver creates a Resolver bound to the given options (nil selects
// the defaults).
func NewResolver(opts *Options) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve sets n.Tag to the implicit tag carried by n.Value, unless an
// explicit style or tag on the node already pins it down.
func (r *Resolver) Resolve(n *Node) {
	if n.Kind != ScalarNode {
		return
	}
	if n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) != 0 {
		n.Tag = strTag
		return
	}
	if n.Tag != "" && n.Style&TaggedStyle != 0 {
		n.Tag = shortTag(n.Tag)
		return
	}
	tag, _ := resolve(n.Tag, n.Value)
	n.Tag = tag
}
