// Package storage wraps a byte-stream source or sink so that the
// format packages reading it never talk to an *os.File directly.
package storage

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Reader is the external collaborator the codec reads from. It wraps
// any io.Reader and adds the little helpers the on-disk formats in
// this repo need: reading a single byte and reading a single 16-bit
// little-endian word.
type Reader struct {
	r   io.Reader
	buf [2]byte
}

// NewReader wraps r as a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader, forwarding to the wrapped reader.
func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadWord reads one little-endian 16-bit word.
func (r *Reader) ReadWord() (uint16, error) {
	if _, err := io.ReadFull(r.r, r.buf[:2]); err != nil {
		return 0, errors.Wrap(err, "storage: read word")
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}
