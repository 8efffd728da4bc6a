package metadata

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
)

// ErrNoBirthTime is returned when the platform or filesystem does not record
// a creation time for a file.
var ErrNoBirthTime = errors.New("creation time not supported by this filesystem")

// Source reports the creation time of a file.
type Source interface {
	CreationTime(path string, info os.FileInfo) (time.Time, error)
}

// Func adapts an ordinary function to a Source.
type Func func(path string, info os.FileInfo) (time.Time, error)

func (f Func) CreationTime(path string, info os.FileInfo) (time.Time, error) {
	return f(path, info)
}

// BirthTime reads the filesystem birth time (statx on Linux, st_birthtime on
// BSD/macOS, CreationTime on Windows).
type BirthTime struct{}

func NewBirthTime() *BirthTime {
	return &BirthTime{}
}

func (b *BirthTime) CreationTime(path string, _ os.FileInfo) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	if !ts.HasBirthTime() {
		return time.Time{}, ErrNoBirthTime
	}
	return ts.BirthTime(), nil
}

// CreatedAt asks src for the creation time of path and normalizes it to UTC
// with whole-second precision. Instants before the Unix epoch are rejected.
func CreatedAt(src Source, path string, info os.FileInfo) (time.Time, error) {
	t, err := src.CreationTime(path, info)
	if err != nil {
		return time.Time{}, err
	}
	if t.Before(time.Unix(0, 0)) {
		return time.Time{}, fmt.Errorf("creation time %s is before the Unix epoch", t.UTC().Format(time.RFC3339))
	}
	return t.UTC().Truncate(time.Second), nil
}
