package alto

// findFreePage performs a linear, ascending-VDA scan for the first
// page whose label carries the free sentinel. The scan order is
// deterministic and forms part of the observable contract: allocation
// is always first-fit by VDA. VDA 0, the boot sector and chain-level
// end-of-file sentinel, is never handed out — allocating it would make
// a genuine body page indistinguishable from "no such page".
func (fs *Filesystem) findFreePage() (uint16, error) {
	for vda := uint16(1); vda < uint16(len(fs.pages)); vda++ {
		if fs.pages[vda].Label.IsFree() {
			return vda, nil
		}
	}
	return 0, ErrDiskFull
}
