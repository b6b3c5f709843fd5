package alto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildRootWithChild creates a root directory (leader VDA 1, the fixed
// rootLeaderVDA) whose single directory entry names a regular file
// whose own leader lives at VDA 3, and returns that file's FileEntry.
func buildRootWithChild(t *testing.T, fs *Filesystem, childName string) FileEntry {
	t.Helper()
	dg := fs.dg

	rootRDA, err := dg.VDAToRDA(1)
	require.NoError(t, err)
	dirBodyRDA, err := dg.VDAToRDA(2)
	require.NoError(t, err)

	rootSN := SerialNumber{FileType: FileTypeDirectory, FileID: 1}
	root := &fs.pages[1]
	root.Header = Header{Word0: 0, Word1: rootRDA}
	root.Label = Label{NextRDA: dirBodyRDA, NBytes: PageDataSize, FilePgNum: 0, Version: 1, SN: rootSN}
	setLeaderFilename(root, "SysDir")

	childSN := SerialNumber{FileType: FileTypeRegular, FileID: 2}
	entry := buildDirectoryEntry(true, childSN, 1, 3, childName)

	dirBody := &fs.pages[2]
	dirBody.Header = Header{Word0: 0, Word1: dirBodyRDA}
	dirBody.Label = Label{PrevRDA: rootRDA, NBytes: uint16(len(entry)), FilePgNum: 1, Version: 1, SN: rootSN}
	copy(dirBody.Data[:], entry)

	childRDA, err := dg.VDAToRDA(3)
	require.NoError(t, err)
	child := &fs.pages[3]
	child.Header = Header{Word0: 0, Word1: childRDA}
	child.Label = Label{NBytes: PageDataSize, FilePgNum: 0, Version: 1, SN: childSN}
	setLeaderFilename(child, childName)

	return FileEntry{SN: childSN, Version: 1, LeaderVDA: 3}
}

func TestFindFileResolvesTopLevelEntry(t *testing.T) {
	fs := newTestFS(t)
	want := buildRootWithChild(t, fs, "Report.press")

	fe, err := fs.FindFile("Report.press")
	require.NoError(t, err)
	require.Equal(t, want, fe)
}

func TestFindFileNotFound(t *testing.T) {
	fs := newTestFS(t)
	buildRootWithChild(t, fs, "Report.press")

	_, err := fs.FindFile("Missing.press")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindFileDescendIntoNonDirectoryFails(t *testing.T) {
	fs := newTestFS(t)
	buildRootWithChild(t, fs, "Report.press")

	_, err := fs.FindFile("Report.press>Sub")
	require.ErrorIs(t, err, ErrNotADirectory)
}

func TestScavengeFileUniqueName(t *testing.T) {
	fs := newTestFS(t)
	want := buildRootWithChild(t, fs, "Report.press")

	fe, err := fs.ScavengeFile("Report.press")
	require.NoError(t, err)
	require.Equal(t, want, fe)
}

func TestScavengeFileAmbiguous(t *testing.T) {
	fs := newTestFS(t)
	buildRootWithChild(t, fs, "Report.press")

	dupRDA, err := fs.dg.VDAToRDA(4)
	require.NoError(t, err)
	dup := &fs.pages[4]
	dup.Header = Header{Word0: 0, Word1: dupRDA}
	dup.Label = Label{NBytes: PageDataSize, FilePgNum: 0, Version: 1, SN: SerialNumber{FileType: FileTypeRegular, FileID: 9}}
	setLeaderFilename(dup, "Report.press")

	_, err = fs.ScavengeFile("Report.press")
	require.ErrorIs(t, err, ErrAmbiguous)
}
