// Package renamer renames the image files of one directory after their
// creation timestamp.
package renamer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/On-Jun9/ShutterRename/internal/config"
	"github.com/On-Jun9/ShutterRename/internal/log"
	"github.com/On-Jun9/ShutterRename/internal/metadata"
	"github.com/On-Jun9/ShutterRename/internal/planner"
	"github.com/On-Jun9/ShutterRename/internal/policy"
	"github.com/On-Jun9/ShutterRename/internal/scanner"
	"github.com/On-Jun9/ShutterRename/internal/verify"
	"github.com/On-Jun9/ShutterRename/pkg/types"
	"github.com/spf13/afero"
)

type Renamer struct {
	fs         afero.Fs
	scanner    *scanner.Scanner
	source     metadata.Source
	resolver   *policy.CollisionResolver
	verifier   *verify.Verifier
	logger     *log.Logger
	missingExt types.MissingExtensionPolicy
}

func New(fs afero.Fs, source metadata.Source, cfg *config.Config, logger *log.Logger) *Renamer {
	return &Renamer{
		fs:         fs,
		scanner:    scanner.New(fs, cfg.IncludeExtensions),
		source:     source,
		resolver:   policy.NewCollisionResolver(fs, planner.New(cfg.DateFormat)),
		verifier:   verify.New(fs),
		logger:     logger,
		missingExt: cfg.MissingExtension,
	}
}

// ValidatePath is the check applied to a path before a run: it must be
// non-empty and openable as a directory listing.
func ValidatePath(fs afero.Fs, path string) error {
	if path == "" {
		return &Error{Kind: ErrInvalidInput, Err: errEmptyPath}
	}
	if err := scanner.New(fs, nil).CheckDir(path); err != nil {
		return &Error{Kind: ErrInvalidPath, Path: path, Err: err}
	}
	return nil
}

// Run processes every entry of params.Path once, in enumeration order. The
// first error aborts the run; renames done before it are kept and the
// partial summary is returned alongside the error.
func (r *Renamer) Run(params types.Params) (*types.RunSummary, error) {
	summary := &types.RunSummary{
		Dir:       params.Path,
		DryRun:    params.DryRun,
		StartTime: time.Now(),
	}

	names, err := r.list(params.Path)
	if err != nil {
		r.finish(summary)
		r.logger.Error("Run aborted", err)
		return summary, err
	}
	summary.ScannedEntries = len(names)

	for _, name := range names {
		if err := r.processEntry(params, name, summary); err != nil {
			r.finish(summary)
			r.logger.Error("Run aborted", err)
			return summary, err
		}
	}

	r.finish(summary)
	r.logger.Summary(*summary)
	return summary, nil
}

func (r *Renamer) list(dir string) ([]string, error) {
	if dir == "" {
		return nil, &Error{Kind: ErrInvalidInput, Err: errEmptyPath}
	}

	f, err := r.scanner.Open(dir)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidPath, Path: dir, Err: err}
	}
	defer f.Close()

	names, err := r.scanner.Names(f)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidEntry, Path: dir, Err: err}
	}
	return names, nil
}

func (r *Renamer) processEntry(params types.Params, name string, summary *types.RunSummary) error {
	path := filepath.Join(params.Path, name)

	info, err := r.scanner.Lstat(path)
	if err != nil {
		return &Error{Kind: ErrMetadata, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		summary.SkippedNonRegular++
		return nil
	}

	created, err := metadata.CreatedAt(r.source, path, info)
	if err != nil {
		return &Error{Kind: ErrMetadata, Path: path, Err: err}
	}

	if !scanner.ValidName(name) {
		return &Error{Kind: ErrNameExtraction, Path: path, Err: fmt.Errorf("invalid file name %q", name)}
	}
	_, ext, ok := scanner.SplitName(name)
	if !ok {
		if r.missingExt == types.MissingExtensionFail {
			return &Error{Kind: ErrNameExtraction, Path: path, Err: errNoExtension}
		}
		summary.SkippedExtension++
		return nil
	}

	ext = strings.ToLower(ext)
	if !r.scanner.Allowed(ext) {
		summary.SkippedExtension++
		return nil
	}

	entry := types.FileEntry{
		Path:      path,
		Name:      name,
		Size:      info.Size(),
		CreatedAt: created,
		Extension: ext,
	}

	res, err := r.resolver.Resolve(entry)
	if err != nil {
		return &Error{Kind: ErrRename, Path: path, Err: fmt.Errorf("probe target: %w", err)}
	}

	task := types.RenameTask{
		Source:        entry,
		DestName:      res.Name,
		DestPath:      res.Path,
		Disambiguator: res.Disambiguator,
	}

	if res.Unchanged {
		task.Action = types.RenameActionKept
		summary.AlreadyNamed++
		summary.Tasks = append(summary.Tasks, task)
		r.logger.LogTask(task)
		return nil
	}

	if err := renameNoReplace(r.fs, path, res.Path); err != nil {
		return &Error{Kind: ErrRename, Path: path, Err: err}
	}
	if err := r.verifier.Verify(path, res.Path, entry.Size); err != nil {
		return &Error{Kind: ErrRename, Path: path, Err: err}
	}

	task.Action = types.RenameActionRenamed
	summary.Renamed++
	summary.Tasks = append(summary.Tasks, task)
	r.logger.LogTask(task)

	if params.Verbose {
		r.logger.Success(fmt.Sprintf("%s renamed by %s", name, res.Name))
	}
	return nil
}

func (r *Renamer) finish(summary *types.RunSummary) {
	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)
}
