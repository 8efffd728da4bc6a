// Package preview plans a run without touching the real directory: the
// listing is mirrored into memory and the renamer runs against the mirror.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/On-Jun9/ShutterRename/internal/metadata"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

type recorded struct {
	t   time.Time
	err error
}

// Mirror copies the listing of dir on src into a new in-memory filesystem.
// Regular files become empty files of the same name and modification time;
// every other entry kind becomes an empty directory so it still occupies its
// name and is still skipped. Listing dir on the returned filesystem yields the
// entries in the order src yielded them. The returned Source replays the
// creation times (or errors) that source reported for the real files.
func Mirror(src afero.Fs, dir string, source metadata.Source) (afero.Fs, metadata.Source, error) {
	f, err := src.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return nil, nil, err
	}

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	times := make(map[string]recorded, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)

		info, err := lstat(src, path)
		if err != nil {
			return nil, nil, err
		}

		if !info.Mode().IsRegular() {
			if err := mem.Mkdir(path, 0755); err != nil {
				return nil, nil, err
			}
			continue
		}

		if err := afero.WriteFile(mem, path, nil, 0644); err != nil {
			return nil, nil, err
		}
		if err := mem.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
			return nil, nil, err
		}

		t, err := source.CreationTime(path, info)
		times[path] = recorded{t: t, err: err}
	}

	replay := metadata.Func(func(path string, _ os.FileInfo) (time.Time, error) {
		r, ok := times[path]
		if !ok {
			return time.Time{}, fmt.Errorf("no recorded creation time for %s", path)
		}
		return r.t, r.err
	})

	order := make(map[string]int, len(names))
	for i, name := range names {
		order[name] = i
	}

	return &orderedFs{Fs: mem, dir: filepath.Clean(dir), order: order}, replay, nil
}

// orderedFs lists dir in a recorded order. Names unknown to the recording
// follow in the order of the wrapped filesystem.
type orderedFs struct {
	afero.Fs
	dir   string
	order map[string]int
}

func (o *orderedFs) Open(name string) (afero.File, error) {
	f, err := o.Fs.Open(name)
	if err != nil || filepath.Clean(name) != o.dir {
		return f, err
	}
	return &orderedDir{File: f, order: o.order}, nil
}

func (o *orderedFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lst, ok := o.Fs.(afero.Lstater); ok {
		return lst.LstatIfPossible(name)
	}
	info, err := o.Fs.Stat(name)
	return info, false, err
}

type orderedDir struct {
	afero.File
	order map[string]int
}

func (d *orderedDir) Readdirnames(n int) ([]string, error) {
	names, err := d.File.Readdirnames(n)
	rank := func(name string) int {
		if i, ok := d.order[name]; ok {
			return i
		}
		return len(d.order)
	}
	sort.SliceStable(names, func(i, j int) bool { return rank(names[i]) < rank(names[j]) })
	return names, err
}

// Listing returns the sorted entry names of dir.
func Listing(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Diff renders a unified diff between two listings of dir. It returns an
// empty string when they are equal.
func Diff(dir string, before, after []string) (string, error) {
	u := difflib.UnifiedDiff{
		A:        difflib.SplitLines(joinLines(before)),
		B:        difflib.SplitLines(joinLines(after)),
		FromFile: dir + " (before)",
		ToFile:   dir + " (after)",
		Context:  0,
	}
	return difflib.GetUnifiedDiffString(u)
}

func joinLines(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, "\n") + "\n"
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if lst, ok := fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
