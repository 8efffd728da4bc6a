package renamer

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// renameNoReplace refuses to replace an existing target on the OS filesystem,
// so a file created between the probe and the rename makes the rename fail.
// Filesystems without RENAME_NOREPLACE fall back to a plain rename.
func renameNoReplace(fs afero.Fs, oldpath, newpath string) error {
	if _, ok := fs.(*afero.OsFs); !ok {
		return fs.Rename(oldpath, newpath)
	}

	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EINVAL) {
		return fs.Rename(oldpath, newpath)
	}
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	return nil
}
