package alto

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// CheckIntegrity walks every page of the filesystem and verifies
// invariants I1-I6 (header self-check, label sanity, chain linkage,
// page numbering, serial-number agreement, free/bad sentinel
// consistency). Violations are reported individually through the
// Reporter and accumulated into the returned error, but do not abort
// the scan; the boolean result is the overall success. A catastrophic
// failure of the address translator (a valid VDA that cannot be
// converted to an RDA) aborts immediately with a fatal error instead.
func (fs *Filesystem) CheckIntegrity() (bool, error) {
	success := true
	var errs *multierror.Error

	for vda := uint16(0); vda < uint16(len(fs.pages)); vda++ {
		pg := &fs.pages[vda]

		rda, err := fs.dg.VDAToRDA(vda)
		if err != nil {
			return false, fmt.Errorf("fatal: could not convert VDA %d to RDA: %w", vda, err)
		}

		if pg.Header.Word1 != rda || pg.Header.Word0 != 0 {
			fs.reportf(&errs, &success, "invalid page header at VDA %d", vda)
			continue
		}

		if pg.Label.IsFree() {
			continue
		}

		if pg.Label.IsBad() {
			if pg.Label.SN.FileType != VersionBad || pg.Label.SN.FileID != VersionBad {
				fs.reportf(&errs, &success, "inconsistent bad-page sentinel at VDA %d", vda)
			}
			continue
		}

		if pg.Label.Version == 0 {
			fs.reportf(&errs, &success, "invalid label version at VDA %d", vda)
			continue
		}

		if pg.Label.NBytes > PageDataSize {
			fs.reportf(&errs, &success, "invalid label nbytes at VDA %d", vda)
			continue
		}

		if ok := fs.checkBackLink(vda, rda, pg, &errs, &success); !ok {
			continue
		}

		fs.checkForwardLink(vda, rda, pg, &errs, &success)
	}

	if errs != nil {
		errs.ErrorFormat = multierror.ListFormatFunc
		return success, errs.ErrorOrNil()
	}
	return success, nil
}

// checkBackLink enforces I4 (backward linkage) and, for pages with no
// previous page (prev_rda == 0), the leader-page requirements of I3.
// Returns false if a violation was found that should short-circuit the
// rest of this page's checks (mirrors the C "continue" control flow).
func (fs *Filesystem) checkBackLink(vda, rda uint16, pg *Page, errs **multierror.Error, success *bool) bool {
	if pg.Label.PrevRDA != 0 {
		otherVDA, err := fs.dg.RDAToVDA(pg.Label.PrevRDA)
		if err != nil {
			fs.reportf(errs, success, "invalid prev_rda at VDA %d", vda)
			return false
		}

		other := &fs.pages[otherVDA]
		if other.Label.FilePgNum+1 != pg.Label.FilePgNum {
			fs.reportf(errs, success, "discontiguous file_pgnum (backwards) at VDA %d", vda)
			return false
		}
		if other.Label.SN != pg.Label.SN {
			fs.reportf(errs, success, "differing file serial numbers (backwards) at VDA %d", vda)
			return false
		}
		if vda != 0 && other.Label.NextRDA != rda {
			fs.reportf(errs, success, "broken link (backwards) at VDA %d", vda)
			return false
		}
		return true
	}

	if pg.Label.NBytes < PageDataSize {
		fs.reportf(errs, success, "short leader page at VDA %d", vda)
		return false
	}
	if pg.Label.FilePgNum != 0 {
		fs.reportf(errs, success, "file_pgnum is not zero at VDA %d", vda)
		return false
	}
	slen := pg.Data[leaderFilenameOffset]
	if slen == 0 || slen >= FilenameMaxLength {
		fs.reportf(errs, success, "invalid filename at VDA %d", vda)
		return false
	}
	return true
}

// checkForwardLink enforces I4 (forward linkage) and, for a terminal
// page (next_rda == 0), nothing further.
func (fs *Filesystem) checkForwardLink(vda, rda uint16, pg *Page, errs **multierror.Error, success *bool) {
	if pg.Label.NextRDA == 0 {
		return
	}

	if pg.Label.NBytes < PageDataSize {
		fs.reportf(errs, success, "short page in the middle of a chain at VDA %d", vda)
		return
	}

	otherVDA, err := fs.dg.RDAToVDA(pg.Label.NextRDA)
	if err != nil {
		fs.reportf(errs, success, "invalid next_rda at VDA %d", vda)
		return
	}

	other := &fs.pages[otherVDA]
	if other.Label.FilePgNum != pg.Label.FilePgNum+1 {
		fs.reportf(errs, success, "discontiguous file_pgnum (forward) at VDA %d", vda)
		return
	}
	if other.Label.SN != pg.Label.SN {
		fs.reportf(errs, success, "differing file serial numbers (forward) at VDA %d", vda)
		return
	}
	if vda != 0 && other.Label.PrevRDA != rda {
		fs.reportf(errs, success, "broken link (forward) at VDA %d", vda)
	}
}

func (fs *Filesystem) reportf(errs **multierror.Error, success *bool, format string, args ...interface{}) {
	*success = false
	fs.reporter.Report(format, args...)
	*errs = multierror.Append(*errs, errors.Errorf(format, args...))
}
