package alto

import (
	"fmt"

	"altofs/storage"
)

// Filesystem is a decoded Alto disk image held entirely in memory: a
// geometry, the flat page array it addresses, and the diagnostic sink
// integrity checks and scans report through.
type Filesystem struct {
	dg       Geometry
	pages    []Page
	reporter Reporter
}

// Create allocates a Filesystem for the given geometry with every page
// initialised to the free sentinel. The reporter receives integrity
// and scan diagnostics; NewStderrReporter() is used if reporter is
// nil.
func Create(dg Geometry, reporter Reporter) (*Filesystem, error) {
	if err := dg.Validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = NewStderrReporter()
	}

	length := dg.Length()
	pages := make([]Page, length)
	for vda := range pages {
		rda, err := dg.VDAToRDA(uint16(vda))
		if err != nil {
			return nil, err
		}
		pages[vda] = Page{
			PageVDA: uint16(vda),
			Header:  Header{Word0: 0, Word1: rda},
			Label:   Label{Version: VersionFree},
		}
	}

	return &Filesystem{dg: dg, pages: pages, reporter: reporter}, nil
}

// LoadImage reads a raw Alto disk image from r, replacing the
// filesystem's page contents in place. dg must already describe the
// image's geometry (use Create to size the filesystem first).
func (fs *Filesystem) LoadImage(r *storage.Reader) error {
	return LoadImage(r, fs.pages)
}

// SaveImage writes the filesystem's current page contents to w in raw
// Alto disk image format.
func (fs *Filesystem) SaveImage(w *storage.Writer) error {
	return SaveImage(w, fs.pages)
}

// Geometry returns the disk geometry this filesystem was created with.
func (fs *Filesystem) Geometry() Geometry {
	return fs.dg
}

// ExtractFile reads fe's entire body (excluding the leader page) into
// a single byte slice.
func (fs *Filesystem) ExtractFile(fe FileEntry) ([]byte, error) {
	of, err := fs.Open(fe, false)
	if err != nil {
		return nil, err
	}

	var out []byte
	buf := make([]byte, PageDataSize)
	for {
		n, err := fs.Read(of, buf)
		if err != nil {
			return nil, err
		}
		out = append(out, buf[:n]...)
		if n < len(buf) {
			break
		}
	}
	return out, nil
}

// ReplaceFile overwrites fe's body with data in its entirety: the
// existing chain is trimmed to zero length and then re-extended with
// the new contents.
func (fs *Filesystem) ReplaceFile(fe FileEntry, data []byte) error {
	of, err := fs.Open(fe, false)
	if err != nil {
		return err
	}
	if err := fs.Trim(of); err != nil {
		return fmt.Errorf("replace file: trim to zero: %w", err)
	}

	reopened, err := fs.Open(fe, false)
	if err != nil {
		return err
	}
	if _, err := fs.Write(reopened, data, true); err != nil {
		return fmt.Errorf("replace file: write new contents: %w", err)
	}
	return nil
}
