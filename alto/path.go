package alto

import "strings"

// rootLeaderVDA is the fixed leader-page VDA of the volume's root
// directory (SysDir on a standard Alto pack).
const rootLeaderVDA uint16 = 1

// FindFile resolves a path of the form "name1>name2>name3" against the
// directory hierarchy, trusting the directory structure rather than
// scanning the whole volume. A leading '<' resets resolution to the
// root directory (redundant for a path that already starts there, but
// meaningful mid-path after a prior '<'). Every '>'-terminated
// component must itself resolve to a directory for the path to
// continue past it.
func (fs *Filesystem) FindFile(path string) (FileEntry, error) {
	root, err := fs.FileEntryFromLeaderVDA(rootLeaderVDA)
	if err != nil {
		return FileEntry{}, err
	}

	cur := root
	pos := 0
	for pos < len(path) {
		if path[pos] == '<' {
			cur = root
			pos++
			continue
		}

		end := pos + 1
		for end < len(path) && path[end] != '<' && path[end] != '>' {
			end++
		}

		component := path[pos:end]
		if len(component) >= FilenameMaxLength {
			return FileEntry{}, ErrFilenameInvalid
		}

		found, ok, err := fs.findInDirectory(cur, component)
		if err != nil {
			return FileEntry{}, err
		}
		if !ok {
			return FileEntry{}, ErrNotFound
		}
		cur = found

		if end < len(path) && path[end] == '>' {
			if !cur.SN.IsDirectory() {
				return FileEntry{}, ErrNotADirectory
			}
			end++
		}

		pos = end
	}

	return cur, nil
}

// findInDirectory scans dir's entries for one whose filename begins
// with name (matching the original's prefix comparison over the
// component's exact length), stopping at the first match.
func (fs *Filesystem) findInDirectory(dir FileEntry, name string) (FileEntry, bool, error) {
	var found FileEntry
	ok := false

	err := fs.ScanDirectory(dir, func(de DirectoryEntry) error {
		if strings.HasPrefix(de.Filename, name) {
			found = de.FE
			ok = true
			return ErrStopScan
		}
		return nil
	})
	if err != nil {
		return FileEntry{}, false, err
	}
	return found, ok, nil
}

// ScavengeFile recovers a file by its name alone, ignoring directory
// structure entirely: every leader page on the volume is visited and
// compared against filename. Returns ErrNotFound if no leader matches
// and ErrAmbiguous if more than one does, since recovery only makes
// sense when the name uniquely identifies a file.
func (fs *Filesystem) ScavengeFile(filename string) (FileEntry, error) {
	var found FileEntry
	count := 0

	err := fs.ScanFiles(func(fe FileEntry) error {
		info, err := fs.FileInfo(fe)
		if err != nil {
			return err
		}
		if info.Filename == filename {
			found = fe
			count++
		}
		return nil
	})
	if err != nil {
		return FileEntry{}, err
	}

	if count == 0 {
		return FileEntry{}, ErrNotFound
	}
	if count > 1 {
		return FileEntry{}, ErrAmbiguous
	}
	return found, nil
}
