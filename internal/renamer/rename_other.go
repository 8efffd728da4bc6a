//go:build !linux

package renamer

import "github.com/spf13/afero"

func renameNoReplace(fs afero.Fs, oldpath, newpath string) error {
	return fs.Rename(oldpath, newpath)
}
