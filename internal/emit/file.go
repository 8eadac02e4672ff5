package emit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/dsplut/internal/lut"
)

// FileMode is the permission of the written artifact.
const FileMode os.FileMode = 0o644

// ErrDirSync is returned when the artifact is already in place but the
// parent directory could not be synced, so the rename may not survive a
// crash. It does not wrap ErrIOFailure.
var ErrDirSync = errors.New("dsplut: directory sync failed")

// syncParent is swapped out in tests.
var syncParent = syncDir

// WriteFile writes the artifact for t to path atomically. The content
// goes to a temporary file in the same directory which is synced and
// renamed over path only once complete. An ErrIOFailure means path was
// left as it was and the temporary file was removed; ErrDirSync means
// path already holds the complete new artifact.
func WriteFile(path string, t *lut.Tables, p Preamble) (err error) {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	tmp := f.Name()
	renamed := false

	defer func() {
		if err != nil && !renamed {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = Write(f, t, p); err != nil {
		return err
	}

	if err = f.Chmod(FileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	renamed = true

	if syncErr := syncParent(dir); syncErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirSync, dir, syncErr)
	}

	return nil
}
