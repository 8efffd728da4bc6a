package verify

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

type Verifier struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Verifier {
	return &Verifier{fs: fs}
}

// Verify checks that a rename from srcPath to destPath left a file of the
// expected size at destPath and nothing at srcPath.
func (v *Verifier) Verify(srcPath, destPath string, expectedSize int64) error {
	destInfo, err := v.fs.Stat(destPath)
	if err != nil {
		return fmt.Errorf("destination file not found: %w", err)
	}

	if destInfo.Size() != expectedSize {
		return fmt.Errorf("size mismatch: expected %d, got %d", expectedSize, destInfo.Size())
	}

	if _, err := v.fs.Stat(srcPath); err == nil {
		return fmt.Errorf("source still present after rename: %s", srcPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	return nil
}
