// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Desolver is the dump-pipeline stage between the Representer and the
// Serializer. Desolve currently leaves nodes unchanged; omitting tags that
// match implicit resolution is done by the Serializer.

package libyaml

// Desolver handles tag desolution for YAML nodes.
type Desolver struct {
	opts *Options
}

// NewDesolver creates a new Desolver with the given options.
func NewDesolver(opts *Options) *Desolver {
	return &Desolver{opts: opts}
}

// Desolve does not modify n: it removes no tags and changes no styles.
// Tags that match implicit resolution are dropped by Serializer.node
// during the serialize pass.
func (d *Desolver) Desolve(n *Node) {
}
