// Package commit publishes the rendered hosts file. The new content is
// written next to the target under a deterministic name and moved into
// place with a single rename, so the target path always holds either the
// old file or the new one, never a partial write.
package commit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// TempSuffix is appended to the target path to form the staging file name,
// keeping leftovers from crashed runs discoverable by path alone.
const TempSuffix = ".new"

func TempPath(path string) string {
	return path + TempSuffix
}

// StaleTempFileError means a staging file from an earlier run is still in
// place. Its content was never validated by this invocation, so it is not
// reused and not deleted; an operator has to clean it up.
type StaleTempFileError struct {
	Path string
}

func (e StaleTempFileError) Error() string {
	return fmt.Sprintf("stale commit file %q left over from a previous run, remove it manually to proceed", e.Path)
}

// Commit writes data to the staging file and renames it onto path.
// A failure before the rename leaves the target untouched. The staging
// file is not cleaned up on failure, mirroring the stale-file policy.
func Commit(path string, data []byte) error {
	tmp := TempPath(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return StaleTempFileError{Path: tmp}
		}
		return fmt.Errorf("unable to create commit file: %w", err)
	}
	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("unable to write commit file %q: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("unable to move commit file into place: %w", err)
	}
	return nil
}
