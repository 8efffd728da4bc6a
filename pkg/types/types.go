// Package types defines core data structures used across ShutterRename modules.
package types

import (
	"time"
)

// FileEntry represents a directory entry that qualified for renaming.
type FileEntry struct {
	// Path is the path to the source file (directory joined with Name).
	Path string
	// Name is the base filename.
	Name string
	// Size is the file size in bytes.
	Size int64
	// CreatedAt is the creation timestamp in UTC, truncated to whole seconds.
	CreatedAt time.Time
	// Extension is the lowercase file extension without dot (e.g., "jpg", "heic").
	Extension string
}

// RenameTask represents the outcome for one file of a run.
type RenameTask struct {
	// Source is the source FileEntry.
	Source FileEntry
	// DestName is the resolved canonical file name (e.g., "2024-01-01_1.jpg").
	DestName string
	// DestPath is the full destination file path.
	DestPath string
	// Disambiguator is the collision counter used for DestName, 0 when none was needed.
	Disambiguator int
	// Action indicates what happened to the file.
	Action RenameAction
}

// RenameAction represents the action taken for a file.
type RenameAction string

const (
	RenameActionRenamed RenameAction = "renamed"
	// RenameActionKept marks a file that already carries its canonical name.
	RenameActionKept RenameAction = "kept"
)

// DateFormat selects the granularity of the date part of a canonical name.
type DateFormat string

const (
	// DateFormatDate: YYYY-MM-DD
	DateFormatDate DateFormat = "date"
	// DateFormatDateTime: YYYY-MM-DD_HH-MM-SS
	DateFormatDateTime DateFormat = "datetime"
)

// MissingExtensionPolicy defines how files without an extension are handled.
type MissingExtensionPolicy string

const (
	MissingExtensionSkip MissingExtensionPolicy = "skip"
	MissingExtensionFail MissingExtensionPolicy = "fail"
)

// ColorMode controls ANSI colors on the console.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Params are the invocation parameters handed to a run. They are built once
// by the CLI and passed by value.
type Params struct {
	Path    string
	Verbose bool
	// DryRun plans every rename in an in-memory copy of the listing.
	DryRun bool
	// ShowDiff prints a unified diff of the listing before and after the run.
	ShowDiff bool
}

// RunSummary contains statistics for a completed (or aborted) run.
type RunSummary struct {
	Dir               string
	ScannedEntries    int
	Renamed           int
	AlreadyNamed      int
	SkippedNonRegular int
	SkippedExtension  int
	DryRun            bool
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
	// Tasks holds the per-file outcomes in processing order.
	Tasks []RenameTask
}
