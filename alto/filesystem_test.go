package alto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestFS builds a Filesystem of the default geometry with every
// page still at the free sentinel, for tests to fill in by hand.
func newTestFS(t *testing.T) *Filesystem {
	t.Helper()
	fs, err := Create(DefaultGeometry(), NewDiscardReporter())
	require.NoError(t, err)
	return fs
}

// setLeaderFilename writes a length-prefixed filename field into a
// page's data area at the leader filename offset.
func setLeaderFilename(pg *Page, name string) {
	pg.Data[leaderFilenameOffset] = byte(len(name))
	copy(pg.Data[leaderFilenameOffset+1:], name)
}

func TestFreshDiskIsAllFreeAndPassesIntegrity(t *testing.T) {
	fs := newTestFS(t)

	for _, pg := range fs.pages {
		if !pg.Label.IsFree() {
			t.Fatalf("page %d is not free", pg.PageVDA)
		}
	}

	ok, err := fs.CheckIntegrity()
	require.NoError(t, err)
	require.True(t, ok)
}
