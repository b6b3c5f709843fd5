package alto

// OpenFile is a cursor over the linked chain of sectors making up a
// file. It borrows its Filesystem for its lifetime; it owns no
// sectors itself. Once an error occurs the cursor is poisoned and every
// subsequent read, write, or trim short-circuits with ErrCursorPoisoned.
type OpenFile struct {
	FE      FileEntry
	pos     Position
	errored bool
}

// Position returns the cursor's current location within the file.
func (of *OpenFile) Position() Position {
	return of.pos
}

// Open returns a cursor positioned at the start of fe's body (the
// first page after the leader). When includeLeader is true, the
// cursor instead starts at the leader page itself (file_pgnum 0).
func (fs *Filesystem) Open(fe FileEntry, includeLeader bool) (*OpenFile, error) {
	if fe.LeaderVDA >= uint16(len(fs.pages)) {
		return nil, ErrInvalidVDA
	}

	if includeLeader {
		return &OpenFile{FE: fe, pos: Position{VDA: fe.LeaderVDA, PgNum: 0, Pos: 0}}, nil
	}

	leader := &fs.pages[fe.LeaderVDA]
	vda, err := fs.dg.RDAToVDA(leader.Label.NextRDA)
	if err != nil {
		return nil, err
	}

	return &OpenFile{FE: fe, pos: Position{VDA: vda, PgNum: 1, Pos: 0}}, nil
}

// Read transfers up to len(dst) bytes into dst, advancing the cursor.
// It returns the number of bytes actually transferred; reading past
// the end of the file returns 0 with no error and does not advance the
// cursor further.
func (fs *Filesystem) Read(of *OpenFile, dst []byte) (int, error) {
	return fs.transfer(of, dst, len(dst))
}

// Skip advances the cursor by up to n bytes without copying any data,
// the "skip" counterpart to Read with a null destination.
func (fs *Filesystem) Skip(of *OpenFile, n int) (int, error) {
	return fs.transfer(of, nil, n)
}

func (fs *Filesystem) transfer(of *OpenFile, dst []byte, n int) (int, error) {
	if of.errored {
		return 0, ErrCursorPoisoned
	}

	pos := 0
	for n > 0 {
		vda := of.pos.VDA
		if vda == 0 {
			break
		}
		if vda >= uint16(len(fs.pages)) {
			of.errored = true
			return pos, ErrInvalidVDA
		}

		pg := &fs.pages[vda]
		if pg.Label.FilePgNum != of.pos.PgNum {
			of.errored = true
			return pos, ErrPageNumberMismatch
		}

		if of.pos.Pos < pg.Label.NBytes {
			avail := int(pg.Label.NBytes) - int(of.pos.Pos)
			if avail > n {
				avail = n
			}
			if dst != nil {
				copy(dst[pos:pos+avail], pg.Data[of.pos.Pos:int(of.pos.Pos)+avail])
			}
			of.pos.Pos += uint16(avail)
			pos += avail
			n -= avail
			continue
		}

		if of.pos.Pos > pg.Label.NBytes {
			of.errored = true
			return pos, ErrLabelInvalid
		}

		nextVDA, err := fs.dg.RDAToVDA(pg.Label.NextRDA)
		if err != nil {
			of.errored = true
			return pos, err
		}
		of.pos.VDA = nextVDA
		of.pos.Pos = 0
		if nextVDA != 0 {
			of.pos.PgNum++
		} else {
			of.pos.PgNum = 0
		}
	}

	return pos, nil
}

// Write transfers bytes from src into the file at the cursor,
// overwriting in place wherever the cursor lands inside a page's
// current used size. When extend is set and the cursor reaches the
// end of the chain, the terminal page's used size is grown up to 512
// bytes, and once that page is full a new page is allocated and linked
// into the chain. With extend unset, writing stops at the current
// end-of-file. Returns the number of bytes actually written.
func (fs *Filesystem) Write(of *OpenFile, src []byte, extend bool) (int, error) {
	if of.errored {
		return 0, ErrCursorPoisoned
	}

	pos := 0
	for pos < len(src) {
		vda := of.pos.VDA
		if vda == 0 {
			if !extend {
				break
			}

			newVDA, err := fs.findFreePage()
			if err != nil {
				of.errored = true
				return pos, err
			}
			if err := fs.linkFirstBodyPage(of.FE, newVDA); err != nil {
				of.errored = true
				return pos, err
			}
			of.pos.VDA = newVDA
			of.pos.PgNum = 1
			of.pos.Pos = 0
			continue
		}
		if vda >= uint16(len(fs.pages)) {
			of.errored = true
			return pos, ErrInvalidVDA
		}

		pg := &fs.pages[vda]
		if pg.Label.FilePgNum != of.pos.PgNum {
			of.errored = true
			return pos, ErrPageNumberMismatch
		}

		if of.pos.Pos < pg.Label.NBytes {
			avail := int(pg.Label.NBytes) - int(of.pos.Pos)
			if avail > len(src)-pos {
				avail = len(src) - pos
			}
			copy(pg.Data[of.pos.Pos:int(of.pos.Pos)+avail], src[pos:pos+avail])
			of.pos.Pos += uint16(avail)
			pos += avail
			continue
		}

		if of.pos.Pos > pg.Label.NBytes {
			of.errored = true
			return pos, ErrLabelInvalid
		}

		if pg.Label.NextRDA != 0 {
			nextVDA, err := fs.dg.RDAToVDA(pg.Label.NextRDA)
			if err != nil {
				of.errored = true
				return pos, err
			}
			of.pos.VDA = nextVDA
			of.pos.PgNum++
			of.pos.Pos = 0
			continue
		}

		if !extend {
			break
		}

		if pg.Label.NBytes < PageDataSize {
			room := PageDataSize - int(pg.Label.NBytes)
			n := room
			if n > len(src)-pos {
				n = len(src) - pos
			}
			copy(pg.Data[pg.Label.NBytes:int(pg.Label.NBytes)+n], src[pos:pos+n])
			pg.Label.NBytes += uint16(n)
			of.pos.Pos += uint16(n)
			pos += n
			continue
		}

		newVDA, err := fs.findFreePage()
		if err != nil {
			of.errored = true
			return pos, err
		}
		if err := fs.linkNewTailPage(vda, newVDA, pg); err != nil {
			of.errored = true
			return pos, err
		}
		of.pos.VDA = newVDA
		of.pos.PgNum = pg.Label.FilePgNum + 1
		of.pos.Pos = 0
	}

	return pos, nil
}

// linkNewTailPage wires a freshly allocated page onto the end of a
// chain: prev_rda points back at the old tail, the old tail's
// next_rda points forward at the new page, and the new page inherits
// the chain's serial number, version, and next file_pgnum.
func (fs *Filesystem) linkNewTailPage(tailVDA, newVDA uint16, tail *Page) error {
	tailRDA, err := fs.dg.VDAToRDA(tailVDA)
	if err != nil {
		return err
	}
	newRDA, err := fs.dg.VDAToRDA(newVDA)
	if err != nil {
		return err
	}

	newPg := &fs.pages[newVDA]
	newPg.Header = Header{Word0: 0, Word1: newRDA}
	newPg.Label = Label{
		NextRDA:   0,
		PrevRDA:   tailRDA,
		NBytes:    0,
		FilePgNum: tail.Label.FilePgNum + 1,
		Version:   tail.Label.Version,
		SN:        tail.Label.SN,
	}
	newPg.Data = [PageDataSize]byte{}

	tail.Label.NextRDA = newRDA
	return nil
}

// linkFirstBodyPage wires a freshly allocated page onto a file whose
// body chain is still empty (the leader's next_rda is 0): the new
// page becomes file_pgnum 1, its prev_rda points back at the leader,
// and the leader's next_rda is updated to point at it. The new page
// inherits its serial number and version from the leader's label.
func (fs *Filesystem) linkFirstBodyPage(fe FileEntry, newVDA uint16) error {
	if fe.LeaderVDA >= uint16(len(fs.pages)) {
		return ErrInvalidVDA
	}
	leader := &fs.pages[fe.LeaderVDA]

	leaderRDA, err := fs.dg.VDAToRDA(fe.LeaderVDA)
	if err != nil {
		return err
	}
	newRDA, err := fs.dg.VDAToRDA(newVDA)
	if err != nil {
		return err
	}

	newPg := &fs.pages[newVDA]
	newPg.Header = Header{Word0: 0, Word1: newRDA}
	newPg.Label = Label{
		NextRDA:   0,
		PrevRDA:   leaderRDA,
		NBytes:    0,
		FilePgNum: 1,
		Version:   leader.Label.Version,
		SN:        leader.Label.SN,
	}
	newPg.Data = [PageDataSize]byte{}

	leader.Label.NextRDA = newRDA
	return nil
}

// Trim truncates the file at the cursor. The page the cursor is on has
// its used size set to the cursor's offset within it; if that leaves
// the page short, every page that followed it in the old chain is
// freed. If the cursor instead lands exactly on a full page boundary,
// the immediately following page is kept and the release begins after
// it.
func (fs *Filesystem) Trim(of *OpenFile) error {
	if of.errored {
		return ErrCursorPoisoned
	}

	vda := of.pos.VDA
	if vda == 0 {
		return nil
	}
	if vda >= uint16(len(fs.pages)) {
		of.errored = true
		return ErrInvalidVDA
	}

	pg := &fs.pages[vda]
	if pg.Label.FilePgNum != of.pos.PgNum {
		of.errored = true
		return ErrPageNumberMismatch
	}

	cutAt := of.pos.Pos
	pg.Label.NBytes = cutAt

	if cutAt < PageDataSize {
		oldNext := pg.Label.NextRDA
		pg.Label.NextRDA = 0
		return fs.freeChainFrom(oldNext)
	}

	if pg.Label.NextRDA == 0 {
		return nil
	}
	nextVDA, err := fs.dg.RDAToVDA(pg.Label.NextRDA)
	if err != nil {
		of.errored = true
		return err
	}
	nextPg := &fs.pages[nextVDA]
	oldNextNext := nextPg.Label.NextRDA
	nextPg.Label.NextRDA = 0
	return fs.freeChainFrom(oldNextNext)
}

// freeChainFrom walks the chain starting at rda, resetting each page's
// label to the free sentinel (clearing linkage and file identity).
func (fs *Filesystem) freeChainFrom(rda uint16) error {
	for rda != 0 {
		vda, err := fs.dg.RDAToVDA(rda)
		if err != nil {
			return err
		}
		pg := &fs.pages[vda]
		next := pg.Label.NextRDA
		pg.Label = Label{Version: VersionFree}
		rda = next
	}
	return nil
}
