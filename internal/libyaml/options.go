// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Options stage: functional options shared by the load and dump
// pipelines, plus the version-default bundles (legacy, v2, v3, v4)
// built out of them.

package libyaml

import "fmt"

// AliasingRestrictionFunction reports whether alias expansion has become
// excessive, given the number of aliases expanded so far and the number
// of values constructed so far. Returning true aborts construction with
// an error, guarding against the "billion laughs" alias-expansion attack.
type AliasingRestrictionFunction func(aliasCount, constructCount int) bool

// DefaultAliasingRestrictions allows up to 1000 expanded aliases
// outright, then flags the expansion as excessive once the alias count
// climbs past ten times the number of values constructed so far.
func DefaultAliasingRestrictions(aliasCount, constructCount int) bool {
	if aliasCount <= 1000 {
		return false
	}
	return aliasCount > 10*constructCount
}

// Options holds the settings that control how a document is loaded,
// resolved, constructed, represented, resolved again for serialization,
// and emitted. A zero Options is never used directly: callers go through
// ApplyOptions, which fills in the v4 defaults before applying overrides.
type Options struct {
	// Indent is the number of spaces used for each nesting level when
	// emitting block style.
	Indent int
	// CompactSeqIndent emits block sequence entries at the same
	// indentation as their parent mapping key, rather than indented an
	// extra level.
	CompactSeqIndent bool
	// KnownFields rejects mapping keys that don't match any field of
	// the destination struct during construction.
	KnownFields bool
	// SingleDocument rejects streams containing more than one document
	// during loading.
	SingleDocument bool
	// StreamNodes makes the composer return one Node per document,
	// wrapped in a StreamNode, instead of only the first document.
	StreamNodes bool
	// AllDocuments requests every document in a stream be decoded, in
	// order, rather than only the first.
	AllDocuments bool
	// LineWidth is the preferred column at which the emitter folds
	// long plain and quoted scalars. A negative value disables folding.
	LineWidth int
	// Unicode allows non-ASCII characters to be emitted unescaped.
	Unicode bool
	// UniqueKeys rejects mapping nodes containing duplicate keys.
	UniqueKeys bool
	// Canonical emits in YAML's canonical form: explicit tags and flow
	// style throughout.
	Canonical bool
	// LineBreak selects the line break style used by the emitter.
	LineBreak LineBreak
	// ExplicitStart always emits the "---" document start marker.
	ExplicitStart bool
	// ExplicitEnd always emits the "..." document end marker.
	ExplicitEnd bool
	// FlowSimpleCollections emits sequences and mappings containing
	// only scalars using flow style, even outside of Canonical mode.
	FlowSimpleCollections bool
	// QuotePreference selects which quote character the representer
	// and emitter prefer when a scalar must be quoted.
	QuotePreference QuoteStyle
	// AliasingRestrictionFunction bounds how far the constructor will
	// expand aliases. Defaults to DefaultAliasingRestrictions.
	AliasingRestrictionFunction AliasingRestrictionFunction
	// FromLegacy marks an Options built for the deprecated Unmarshal
	// entry point, which tolerates trailing documents in the stream
	// that loadSingle would otherwise reject.
	FromLegacy bool
}

// Option configures an Options value. ApplyOptions builds the v4 defaults
// and then applies each Option, in order, reporting the first error.
type Option func(*Options) error

func boolOption(name string, set func(*Options, bool)) func(args ...bool) Option {
	return func(args ...bool) Option {
		return func(o *Options) error {
			switch len(args) {
			case 0:
				set(o, true)
			case 1:
				set(o, args[0])
			default:
				return fmt.Errorf("yaml: %s: at most one bool argument allowed, got %d", name, len(args))
			}
			return nil
		}
	}
}

// WithIndent sets the number of spaces used per nesting level when
// emitting block style. Valid range is 1 through 9; the emitter raises
// an indent of 1 to 2.
func WithIndent(n int) Option {
	return func(o *Options) error {
		if n < 1 || n > 9 {
			return fmt.Errorf("yaml: indent must be between 1 and 9, got %d", n)
		}
		o.Indent = n
		return nil
	}
}

// WithLineWidth sets the preferred line width the emitter folds long
// scalars at. A value of -1 disables folding.
func WithLineWidth(n int) Option {
	return func(o *Options) error {
		o.LineWidth = n
		return nil
	}
}

// WithLineBreak selects the emitter's line break style.
func WithLineBreak(lb LineBreak) Option {
	return func(o *Options) error {
		o.LineBreak = lb
		return nil
	}
}

// WithQuotePreference selects which quote style the representer and
// emitter prefer for scalars that must be quoted.
func WithQuotePreference(q QuoteStyle) Option {
	return func(o *Options) error {
		o.QuotePreference = q
		return nil
	}
}

// WithAliasingRestrictionFunction overrides the function used to bound
// alias expansion during construction.
func WithAliasingRestrictionFunction(fn AliasingRestrictionFunction) Option {
	return func(o *Options) error {
		o.AliasingRestrictionFunction = fn
		return nil
	}
}

var (
	// WithCompactSeqIndent toggles compact block sequence indentation.
	// With no arguments it enables the setting.
	WithCompactSeqIndent = boolOption("WithCompactSeqIndent", func(o *Options, v bool) { o.CompactSeqIndent = v })

	// WithKnownFields toggles rejection of unknown mapping keys during
	// construction into a struct. With no arguments it enables the
	// setting.
	WithKnownFields = boolOption("WithKnownFields", func(o *Options, v bool) { o.KnownFields = v })

	// WithSingleDocument toggles rejecting streams with more than one
	// document. With no arguments it enables the setting.
	WithSingleDocument = boolOption("WithSingleDocument", func(o *Options, v bool) { o.SingleDocument = v })

	// WithStreamNodes toggles returning a StreamNode wrapping every
	// document in the stream. With no arguments it enables the
	// setting.
	WithStreamNodes = boolOption("WithStreamNodes", func(o *Options, v bool) { o.StreamNodes = v })

	// WithAllDocuments toggles decoding every document in a stream
	// rather than only the first. With no arguments it enables the
	// setting.
	WithAllDocuments = boolOption("WithAllDocuments", func(o *Options, v bool) { o.AllDocuments = v })

	// WithUnicode toggles emitting non-ASCII characters unescaped.
	// With no arguments it enables the setting.
	WithUnicode = boolOption("WithUnicode", func(o *Options, v bool) { o.Unicode = v })

	// WithUniqueKeys toggles rejecting mapping nodes with duplicate
	// keys. With no arguments it enables the setting.
	WithUniqueKeys = boolOption("WithUniqueKeys", func(o *Options, v bool) { o.UniqueKeys = v })

	// WithCanonical toggles canonical emission. With no arguments it
	// enables the setting.
	WithCanonical = boolOption("WithCanonical", func(o *Options, v bool) { o.Canonical = v })

	// WithExplicitStart toggles always emitting the document start
	// marker. With no arguments it enables the setting.
	WithExplicitStart = boolOption("WithExplicitStart", func(o *Options, v bool) { o.ExplicitStart = v })

	// WithExplicitEnd toggles always emitting the document end marker.
	// With no arguments it enables the setting.
	WithExplicitEnd = boolOption("WithExplicitEnd", func(o *Options, v bool) { o.ExplicitEnd = v })

	// WithFlowSimpleCollections toggles flow style for collections
	// containing only scalars. With no arguments it enables the
	// setting.
	WithFlowSimpleCollections = boolOption("WithFlowSimpleCollections", func(o *Options, v bool) { o.FlowSimpleCollections = v })
)

// v4Defaults returns the baseline Options ApplyOptions starts from before
// applying overrides: 2-space compact indentation, an 80-column fold
// width, Unicode on, and duplicate keys rejected.
func v4Defaults() *Options {
	return &Options{
		Indent:                      2,
		CompactSeqIndent:            true,
		LineWidth:                   80,
		Unicode:                     true,
		UniqueKeys:                  true,
		AliasingRestrictionFunction: DefaultAliasingRestrictions,
	}
}

// ApplyOptions builds the v4 default Options and applies each Option to
// it in order, returning the first error encountered.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := v4Defaults()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions bundles several Options into one, applying them in
// order so that later options override earlier ones. The result can be
// passed anywhere a single Option is expected, including as an element of
// another CombineOptions call.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// LegacyOptions reproduces the behavior of the original, pre-functional-
// options API used by Marshal, Unmarshal, NewEncoder and NewDecoder:
// 4-space indentation, non-compact sequences, no line folding, unicode
// output, and duplicate mapping keys rejected.
var LegacyOptions = mustApplyOptions(
	WithIndent(4),
	WithCompactSeqIndent(false),
	WithLineWidth(-1),
	WithUnicode(true),
	WithUniqueKeys(true),
)

// DefaultOptions is the v4 default Options bundle, for callers building
// a Representer or Serializer directly rather than through ApplyOptions.
var DefaultOptions = v4Defaults()

func mustApplyOptions(opts ...Option) *Options {
	o, err := ApplyOptions(opts...)
	if err != nil {
		panic(err)
	}
	return o
}
