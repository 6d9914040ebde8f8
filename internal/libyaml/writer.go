// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// The writer: delivers the emitter's working buffer to its configured
// destination.

package libyaml

// flush writes the accumulated bytes in the working buffer out through the
// configured write handler and resets the buffer position.
func (emitter *Emitter) flush() error {
	if emitter.write_handler == nil {
		panic("write handler not set")
	}

	if emitter.buffer_pos == 0 {
		return nil
	}

	if err := emitter.write_handler(emitter, emitter.buffer[:emitter.buffer_pos]); err != nil {
		return err
	}
	emitter.buffer_pos = 0
	return nil
}

// tryFlush flushes the buffer, recording any write error as an emitter
// problem for callers using the bool-returning emit helpers.
func (emitter *Emitter) tryFlush() bool {
	if err := emitter.flush(); err != nil {
		return emitter.setEmitterError(err.Error())
	}
	return true
}
