package policy

import (
	"os"
	"path/filepath"

	"github.com/On-Jun9/ShutterRename/internal/planner"
	"github.com/On-Jun9/ShutterRename/pkg/types"
	"github.com/spf13/afero"
)

type CollisionResolver struct {
	fs      afero.Fs
	planner *planner.Planner
}

func NewCollisionResolver(fs afero.Fs, p *planner.Planner) *CollisionResolver {
	return &CollisionResolver{fs: fs, planner: p}
}

type Resolution struct {
	Name          string
	Path          string
	Disambiguator int
	// Unchanged is set when the source already sits at its canonical path.
	Unchanged bool
}

// Resolve picks the first canonical name for entry that is free in the
// entry's directory. The counter starts over for every entry and has no cap:
// each candidate is distinct and the directory is finite.
func (c *CollisionResolver) Resolve(entry types.FileEntry) (Resolution, error) {
	dir := filepath.Dir(entry.Path)
	self := filepath.Clean(entry.Path)

	for n := 0; ; n++ {
		name := c.planner.Name(entry.CreatedAt, entry.Extension, n)
		target := filepath.Join(dir, name)

		if target == self {
			return Resolution{Name: name, Path: target, Disambiguator: n, Unchanged: true}, nil
		}

		taken, err := c.exists(target)
		if err != nil {
			return Resolution{}, err
		}
		if !taken {
			return Resolution{Name: name, Path: target, Disambiguator: n}, nil
		}
	}
}

// exists uses lstat so that a dangling symlink still counts as taken.
func (c *CollisionResolver) exists(path string) (bool, error) {
	var err error
	if lst, ok := c.fs.(afero.Lstater); ok {
		_, _, err = lst.LstatIfPossible(path)
	} else {
		_, err = c.fs.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
