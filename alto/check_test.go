package alto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckIntegrityDetectsBrokenForwardLink(t *testing.T) {
	fs := newTestFS(t)
	twoPageChain(t, fs)

	// Corrupt the forward link: leader claims a next page whose
	// prev_rda does not point back at it.
	badRDA, err := fs.dg.VDAToRDA(10)
	require.NoError(t, err)
	fs.pages[10].Header = Header{Word0: 0, Word1: badRDA}
	fs.pages[10].Label = Label{
		PrevRDA:   0xFFFF, // deliberately wrong
		NBytes:    50,
		FilePgNum: 1,
		Version:   1,
		SN:        fs.pages[1].Label.SN,
	}
	fs.pages[1].Label.NextRDA = badRDA
	fs.pages[1].Label.NBytes = PageDataSize

	ok, err := fs.CheckIntegrity()
	require.Error(t, err)
	require.False(t, ok)
}

func TestCheckIntegrityAcceptsWellFormedChain(t *testing.T) {
	fs := newTestFS(t)
	twoPageChain(t, fs)

	ok, err := fs.CheckIntegrity()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckIntegrityFlagsBadSentinelInconsistency(t *testing.T) {
	fs := newTestFS(t)

	pg := &fs.pages[100]
	rda, err := fs.dg.VDAToRDA(100)
	require.NoError(t, err)
	pg.Header = Header{Word0: 0, Word1: rda}
	pg.Label = Label{Version: VersionBad, SN: SerialNumber{FileType: 1, FileID: 2}}

	ok, err := fs.CheckIntegrity()
	require.Error(t, err)
	require.False(t, ok)
}
