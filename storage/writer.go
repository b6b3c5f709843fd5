package storage

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer is the external collaborator the codec writes to.
type Writer struct {
	w   io.Writer
	buf [2]byte
}

// NewWriter wraps w as a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer, forwarding to the wrapped writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// WriteWord writes one little-endian 16-bit word.
func (w *Writer) WriteWord(word uint16) error {
	binary.LittleEndian.PutUint16(w.buf[:2], word)
	if _, err := w.w.Write(w.buf[:2]); err != nil {
		return errors.Wrap(err, "storage: write word")
	}
	return nil
}
