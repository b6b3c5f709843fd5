package alto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildDirectoryEntry encodes one directory entry as the bytes a
// directory's data area holds: a control word (validity tag in the high 6 bits, length in
// words in the low 10), followed by the fixed serial_number/version/
// leader_vda fields and a length-prefixed filename.
func buildDirectoryEntry(valid bool, sn SerialNumber, version, leaderVDA uint16, name string) []byte {
	nameField := append([]byte{byte(len(name))}, []byte(name)...)
	body := make([]byte, 0, 12+len(nameField))
	body = append(body, byte(sn.FileType>>8), byte(sn.FileType))
	body = append(body, byte(sn.FileID>>8), byte(sn.FileID))
	body = append(body, byte(version>>8), byte(version))
	body = append(body, 0, 0) // blank word, unused
	body = append(body, byte(leaderVDA>>8), byte(leaderVDA))
	body = append(body, nameField...)
	if len(body)%2 != 0 {
		body = append(body, 0)
	}

	words := uint16(len(body)/2) + 1
	var validBit uint16
	if valid {
		validBit = 1
	}
	control := (validBit << 10) | (words & dirEntryLenMask)

	entry := []byte{byte(control >> 8), byte(control)}
	entry = append(entry, body...)
	return entry
}

func TestScanDirectorySingleEntry(t *testing.T) {
	fs := newTestFS(t)
	fe := twoPageChain(t, fs)

	want := SerialNumber{FileType: FileTypeRegular, FileID: 99}
	entry := buildDirectoryEntry(true, want, 3, 5, "Foo.txt")

	body := &fs.pages[2]
	copy(body.Data[:], entry)
	body.Label.NBytes = uint16(len(entry))

	var got []DirectoryEntry
	err := fs.ScanDirectory(fe, func(de DirectoryEntry) error {
		got = append(got, de)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Foo.txt", got[0].Filename)
	require.Equal(t, want, got[0].FE.SN)
	require.EqualValues(t, 3, got[0].FE.Version)
	require.EqualValues(t, 5, got[0].FE.LeaderVDA)
}

func TestScanDirectorySkipsInvalidEntry(t *testing.T) {
	fs := newTestFS(t)
	fe := twoPageChain(t, fs)

	invalid := buildDirectoryEntry(false, SerialNumber{FileType: 1, FileID: 2}, 1, 9, "Hidden")
	valid := buildDirectoryEntry(true, SerialNumber{FileType: 1, FileID: 3}, 1, 10, "Visible")

	body := &fs.pages[2]
	n := copy(body.Data[:], invalid)
	copy(body.Data[n:], valid)
	body.Label.NBytes = uint16(len(invalid) + len(valid))

	var got []DirectoryEntry
	err := fs.ScanDirectory(fe, func(de DirectoryEntry) error {
		got = append(got, de)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Visible", got[0].Filename)
}

func TestScanDirectoryZeroLengthIsError(t *testing.T) {
	fs := newTestFS(t)
	fe := twoPageChain(t, fs)

	body := &fs.pages[2]
	body.Data[0] = 0x04 // high 6 bits = 1 (valid), low 10 bits = 0 (zero length)
	body.Data[1] = 0x00
	body.Label.NBytes = 2

	err := fs.ScanDirectory(fe, func(DirectoryEntry) error { return nil })
	require.ErrorIs(t, err, ErrDirEntryLengthZero)
}
