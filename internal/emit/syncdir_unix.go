//go:build unix

package emit

import "golang.org/x/sys/unix"

// syncDir flushes the directory entry created by the rename.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY, 0)
	if err != nil {
		return err
	}

	defer unix.Close(fd)

	return unix.Fsync(fd)
}
