package alto

import "errors"

// Error taxonomy, per the filesystem's error handling design: every
// failure the engine can report is one of these sentinels, optionally
// wrapped for context with fmt.Errorf and %w so that errors.Is still
// matches it.
var (
	ErrGeometryInvalid   = errors.New("alto: invalid disk geometry")
	ErrOutOfMemory       = errors.New("alto: out of memory")
	ErrIoOpen            = errors.New("alto: could not open image")
	ErrIoRead            = errors.New("alto: error reading image")
	ErrIoWrite           = errors.New("alto: error writing image")
	ErrPrematureEnd      = errors.New("alto: premature end of image")
	ErrTrailingGarbage   = errors.New("alto: trailing garbage after image")
	ErrInvalidRDA        = errors.New("alto: invalid real disk address")
	ErrInvalidVDA        = errors.New("alto: invalid virtual disk address")
	ErrHeaderMismatch    = errors.New("alto: page header mismatch")
	ErrLabelInvalid      = errors.New("alto: invalid page label")
	ErrLinkBroken        = errors.New("alto: broken chain link")
	ErrPageNumberMismatch = errors.New("alto: discontiguous file page number")
	ErrSerialMismatch    = errors.New("alto: differing file serial numbers")
	ErrShortPageInMiddle = errors.New("alto: short page in the middle of a chain")
	ErrLeaderShort       = errors.New("alto: short leader page")
	ErrFilenameInvalid   = errors.New("alto: invalid filename")
	ErrDirEntryLengthZero = errors.New("alto: zero-length directory entry")
	ErrDirEntryTooLong   = errors.New("alto: directory entry too long")
	ErrNotADirectory     = errors.New("alto: not a directory")
	ErrNotFound          = errors.New("alto: file not found")
	ErrAmbiguous         = errors.New("alto: ambiguous filename")
	ErrDiskFull          = errors.New("alto: disk full")
	ErrCursorPoisoned    = errors.New("alto: cursor poisoned by a previous error")
)
