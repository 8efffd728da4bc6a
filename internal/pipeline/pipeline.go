// Package pipeline wires configuration, logging, the directory lock and the
// renamer together for one invocation.
package pipeline

import (
	"fmt"
	"io"

	"github.com/On-Jun9/ShutterRename/internal/config"
	"github.com/On-Jun9/ShutterRename/internal/lock"
	"github.com/On-Jun9/ShutterRename/internal/log"
	"github.com/On-Jun9/ShutterRename/internal/metadata"
	"github.com/On-Jun9/ShutterRename/internal/preview"
	"github.com/On-Jun9/ShutterRename/internal/renamer"
	"github.com/On-Jun9/ShutterRename/pkg/types"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

type Pipeline struct {
	cfg     *config.Config
	fs      afero.Fs
	source  metadata.Source
	logger  *log.Logger
	lockDir bool
}

// New builds a pipeline on the OS filesystem. Per-file lines and the total
// line are written to out.
func New(cfg *config.Config, out io.Writer) (*Pipeline, error) {
	logger, err := log.New(out, cfg.LogFile, cfg.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetRunID(uuid.NewString())

	return &Pipeline{
		cfg:     cfg,
		fs:      afero.NewOsFs(),
		source:  metadata.NewBirthTime(),
		logger:  logger,
		lockDir: cfg.LockDir,
	}, nil
}

// ValidatePath reports whether path can be used as the target of a run.
func (p *Pipeline) ValidatePath(path string) error {
	return renamer.ValidatePath(p.fs, path)
}

func (p *Pipeline) Run(params types.Params) (*types.RunSummary, error) {
	p.logger.Info("Starting rename: '" + params.Path + "'")

	if err := p.ValidatePath(params.Path); err != nil {
		p.logger.Error("Invalid target", err)
		return nil, err
	}

	if params.DryRun {
		return p.dryRun(params)
	}

	if p.lockDir {
		l, err := lock.Acquire(params.Path)
		if err != nil {
			p.logger.Error("Failed to lock directory", err)
			return nil, err
		}
		defer l.Release()
	}

	var before []string
	if params.ShowDiff {
		names, err := preview.Listing(p.fs, params.Path)
		if err != nil {
			return nil, &renamer.Error{Kind: renamer.ErrInvalidEntry, Path: params.Path, Err: err}
		}
		before = names
	}

	summary, runErr := renamer.New(p.fs, p.source, p.cfg, p.logger).Run(params)

	if params.ShowDiff {
		if err := p.printDiff(p.fs, params.Path, before); err != nil {
			p.logger.Error("Failed to render diff", err)
		}
	}
	return summary, runErr
}

func (p *Pipeline) dryRun(params types.Params) (*types.RunSummary, error) {
	mem, replay, err := preview.Mirror(p.fs, params.Path, p.source)
	if err != nil {
		p.logger.Error("Failed to prepare dry run", err)
		return nil, &renamer.Error{Kind: renamer.ErrInvalidEntry, Path: params.Path, Err: err}
	}

	before, err := preview.Listing(mem, params.Path)
	if err != nil {
		return nil, &renamer.Error{Kind: renamer.ErrInvalidEntry, Path: params.Path, Err: err}
	}

	summary, runErr := renamer.New(mem, replay, p.cfg, p.logger).Run(params)

	if params.ShowDiff {
		if err := p.printDiff(mem, params.Path, before); err != nil {
			p.logger.Error("Failed to render diff", err)
		}
	}
	return summary, runErr
}

func (p *Pipeline) printDiff(fs afero.Fs, dir string, before []string) error {
	after, err := preview.Listing(fs, dir)
	if err != nil {
		return err
	}
	diff, err := preview.Diff(dir, before, after)
	if err != nil {
		return err
	}
	p.logger.Print(diff)
	return nil
}

func (p *Pipeline) Close() error {
	return p.logger.Close()
}
