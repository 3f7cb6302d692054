package main

import "bytes"

// outputBuffer accumulates one frame's worth of terminal output so it
// can be flushed in a single write, avoiding the flicker of many small
// writes (spec.md §4.6, §7: the renderer must never leave the terminal
// in a bad state mid-frame).
type outputBuffer struct {
	bytes.Buffer
}

func newOutputBuffer() *outputBuffer {
	return &outputBuffer{}
}

// Flush writes the accumulated bytes to w in one call and resets the
// buffer for the next frame.
func (b *outputBuffer) Flush(w interface{ Write([]byte) (int, error) }) error {
	_, err := w.Write(b.Bytes())
	b.Reset()
	return err
}
