package scanner

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

type Scanner struct {
	fs         afero.Fs
	includeExt map[string]bool
}

func New(fs afero.Fs, extensions []string) *Scanner {
	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[strings.TrimPrefix(strings.ToLower(ext), ".")] = true
	}
	return &Scanner{fs: fs, includeExt: extMap}
}

// CheckDir reports whether dir can be opened as a directory listing.
func (s *Scanner) CheckDir(dir string) error {
	f, err := s.fs.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// Open opens dir for listing. It fails when dir is missing, unreadable or
// not a directory.
func (s *Scanner) Open(dir string) (afero.File, error) {
	if err := s.CheckDir(dir); err != nil {
		return nil, err
	}
	return s.fs.Open(dir)
}

// Names reads every entry name of an opened directory once, in the order the
// filesystem yields them.
func (s *Scanner) Names(dir afero.File) ([]string, error) {
	return dir.Readdirnames(-1)
}

// Lstat returns entry metadata without following symlinks when the
// filesystem supports it.
func (s *Scanner) Lstat(path string) (os.FileInfo, error) {
	if lst, ok := s.fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return s.fs.Stat(path)
}

// Allowed reports whether ext is in the allow-list, ignoring case.
func (s *Scanner) Allowed(ext string) bool {
	return s.includeExt[strings.ToLower(ext)]
}

// ValidName reports whether name can denote a directory entry at all.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsRune(name, os.PathSeparator)
}

// SplitName splits name into stem and extension (without dot). ok is false
// when there is no extension: no dot at all, or a dotfile such as ".profile".
func SplitName(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
