package alto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileInfoDecodesSysDirLeader(t *testing.T) {
	fs := newTestFS(t)

	leader := &fs.pages[1]
	leader.Label = Label{
		NBytes:    PageDataSize,
		FilePgNum: 0,
		Version:   1,
		SN:        SerialNumber{FileType: FileTypeDirectory, FileID: 42},
	}
	setLeaderFilename(leader, "SysDir")

	fe := FileEntry{SN: leader.Label.SN, Version: leader.Label.Version, LeaderVDA: 1}

	info, err := fs.FileInfo(fe)
	require.NoError(t, err)
	require.Equal(t, "SysDir", info.Filename)

	length, err := fs.FileLength(fe)
	require.NoError(t, err)
	require.EqualValues(t, 0, length)
}

func TestDecodeFilenameEmpty(t *testing.T) {
	field := []byte{0, 0, 0, 0}
	require.Equal(t, "", decodeFilename(field))
}
