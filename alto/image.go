package alto

import (
	"fmt"
	"io"

	"altofs/storage"
)

// metaWords is the number of 16-bit words occupied by a page's header
// and label on external media (2 header words + 8 label words). The
// word immediately before this run is discarded on load and written
// as a convenience VDA value on save; it is never relied upon.
const metaWords = 10

// LoadImage reads exactly len(pages) pages from r into pages, in VDA
// order, performing the word-order and byte-order conversions the
// external format requires: the discarded leading word is skipped,
// the header+label words are read little-endian, and the 512 data
// bytes are byte-swapped in pairs. Each page's PageVDA is set to its
// index. A short read reports ErrPrematureEnd; any byte left over
// after the last page reports ErrTrailingGarbage.
func LoadImage(r *storage.Reader, pages []Page) error {
	for vda := range pages {
		pg := &pages[vda]
		pg.PageVDA = uint16(vda)

		if _, err := r.ReadWord(); err != nil {
			return fmt.Errorf("page %d: discarded word: %v: %w", vda, err, ErrPrematureEnd)
		}

		words := make([]uint16, metaWords)
		for j := range words {
			w, err := r.ReadWord()
			if err != nil {
				return fmt.Errorf("page %d: metadata word %d: %v: %w", vda, j, err, ErrPrematureEnd)
			}
			words[j] = w
		}
		decodeMeta(pg, words)

		for j := 0; j < PageDataSize; j++ {
			b, err := r.ReadByte()
			if err != nil {
				return fmt.Errorf("page %d: data byte %d: %v: %w", vda, j, err, ErrPrematureEnd)
			}
			pg.Data[j^1] = b
		}
	}

	if _, err := r.ReadByte(); err != io.EOF {
		if err == nil {
			return ErrTrailingGarbage
		}
		return fmt.Errorf("%v: %w", err, ErrIoRead)
	}

	return nil
}

// SaveImage writes len(pages) pages to w, in VDA order, using the same
// encoding LoadImage expects: a convenience VDA word, little-endian
// header+label words, and data bytes byte-swapped in pairs.
func SaveImage(w *storage.Writer, pages []Page) error {
	for vda, pg := range pages {
		if err := w.WriteWord(uint16(vda)); err != nil {
			return fmt.Errorf("page %d: %v: %w", vda, err, ErrIoWrite)
		}

		for _, word := range encodeMeta(&pg) {
			if err := w.WriteWord(word); err != nil {
				return fmt.Errorf("page %d: %v: %w", vda, err, ErrIoWrite)
			}
		}

		var swapped [PageDataSize]byte
		for j := 0; j < PageDataSize; j++ {
			swapped[j] = pg.Data[j^1]
		}
		if _, err := w.Write(swapped[:]); err != nil {
			return fmt.Errorf("page %d: data: %v: %w", vda, err, ErrIoWrite)
		}
	}

	return nil
}

func decodeMeta(pg *Page, words []uint16) {
	pg.Header = Header{Word0: words[0], Word1: words[1]}
	pg.Label = Label{
		NextRDA:   words[2],
		PrevRDA:   words[3],
		Unused:    words[4],
		NBytes:    words[5],
		FilePgNum: words[6],
		Version:   words[7],
		SN: SerialNumber{
			FileType: words[8],
			FileID:   words[9],
		},
	}
}

func encodeMeta(pg *Page) []uint16 {
	return []uint16{
		pg.Header.Word0, pg.Header.Word1,
		pg.Label.NextRDA, pg.Label.PrevRDA, pg.Label.Unused, pg.Label.NBytes,
		pg.Label.FilePgNum, pg.Label.Version,
		pg.Label.SN.FileType, pg.Label.SN.FileID,
	}
}
