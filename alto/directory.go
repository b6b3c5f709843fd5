package alto

import (
	"fmt"

	"github.com/pkg/errors"
)

// Directory entry control-word layout: the high 6 bits carry the
// validity tag, the low 10 bits carry the entry's total length in
// 16-bit words (including the control word itself).
const (
	dirEntryValidTag  = 1
	dirEntryValidShift = 10
	dirEntryLenMask   = 0x3FF

	dirEntrySNOffset        = 2
	dirEntryVersionOffset   = 6
	dirEntryLeaderVDAOffset = 10
	dirEntryFilenameOffset  = 12

	dirEntryBufferSize = 128
)

// DirectoryEntry is one decoded record from a directory file: the
// handle of the file it names, and the display name under which it
// appears in that directory.
type DirectoryEntry struct {
	FE       FileEntry
	Filename string
}

// ScanDirectoryFunc is called once per valid entry found while walking
// a directory. Returning an error aborts the scan; the sentinel
// ErrStopScan stops the scan early without it being treated as a
// failure.
type ScanDirectoryFunc func(de DirectoryEntry) error

// ErrStopScan lets a ScanDirectoryFunc or ScanFilesFunc end a scan
// early without signalling failure to the caller.
var ErrStopScan = errors.New("alto: scan stopped by callback")

// ScanDirectory walks the directory file named by fe, decoding each
// variable-length entry (reassembling it across a page boundary when
// it straddles one) and invoking cb for every entry tagged valid.
func (fs *Filesystem) ScanDirectory(fe FileEntry, cb ScanDirectoryFunc) error {
	of, err := fs.Open(fe, false)
	if err != nil {
		return err
	}

	var buffer [dirEntryBufferSize]byte
	for {
		n, err := fs.Read(of, buffer[:2])
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		if n != 2 {
			return fmt.Errorf("scan directory: truncated control word: %w", ErrDirEntryLengthZero)
		}

		w := readWordBE16(buffer[:2])
		isValid := (w >> dirEntryValidShift) == dirEntryValidTag
		deLen := int(w & dirEntryLenMask)
		if deLen == 0 {
			return ErrDirEntryLengthZero
		}

		toRead := 2 * deLen
		if toRead > dirEntryBufferSize {
			n, err = fs.Read(of, buffer[2:])
			if err != nil {
				return err
			}
			if n != dirEntryBufferSize-2 {
				return fmt.Errorf("scan directory: short read of oversized entry: %w", ErrDirEntryTooLong)
			}
			if _, err := fs.Skip(of, toRead-dirEntryBufferSize); err != nil {
				return err
			}
		} else {
			n, err = fs.Read(of, buffer[2:toRead])
			if err != nil {
				return err
			}
			if n != toRead-2 {
				return fmt.Errorf("scan directory: short read of entry body: %w", ErrDirEntryLengthZero)
			}
		}

		if !isValid {
			continue
		}

		de := DirectoryEntry{
			FE: FileEntry{
				SN: SerialNumber{
					FileType: readWordBE16(buffer[dirEntrySNOffset:]),
					FileID:   readWordBE16(buffer[dirEntrySNOffset+2:]),
				},
				Version:   readWordBE16(buffer[dirEntryVersionOffset:]),
				LeaderVDA: readWordBE16(buffer[dirEntryLeaderVDAOffset:]),
			},
			Filename: decodeFilename(buffer[dirEntryFilenameOffset:]),
		}

		if err := cb(de); err != nil {
			if err == ErrStopScan {
				return nil
			}
			return err
		}
	}

	return nil
}

// ScanFilesFunc is called once per leader page found while walking the
// whole volume.
type ScanFilesFunc func(fe FileEntry) error

// ScanFiles walks every page of the filesystem in ascending VDA order
// and invokes cb once for each leader page that is neither free, bad,
// nor unlabelled.
func (fs *Filesystem) ScanFiles(cb ScanFilesFunc) error {
	for vda := uint16(0); vda < uint16(len(fs.pages)); vda++ {
		pg := &fs.pages[vda]
		if pg.Label.FilePgNum != 0 {
			continue
		}
		if pg.Label.Version == VersionFree || pg.Label.Version == VersionBad || pg.Label.Version == 0 {
			continue
		}

		fe := FileEntry{SN: pg.Label.SN, Version: pg.Label.Version, LeaderVDA: vda}
		if err := cb(fe); err != nil {
			if err == ErrStopScan {
				return nil
			}
			return err
		}
	}
	return nil
}

// FileEntryFromLeaderVDA builds a FileEntry for the leader page at
// leaderVDA by reading its label directly, without scanning.
func (fs *Filesystem) FileEntryFromLeaderVDA(leaderVDA uint16) (FileEntry, error) {
	if leaderVDA >= uint16(len(fs.pages)) {
		return FileEntry{}, ErrInvalidVDA
	}
	pg := &fs.pages[leaderVDA]
	return FileEntry{SN: pg.Label.SN, Version: pg.Label.Version, LeaderVDA: leaderVDA}, nil
}

// readWordBE16 reads a big-endian 16-bit word from the start of a
// slice (a slice-based counterpart to readWordBE's array-based form,
// used where directory buffers are plain slices rather than a page's
// fixed data array).
func readWordBE16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
