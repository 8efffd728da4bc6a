package renamer

import "errors"

// Kind classifies a fatal run error. Kinds are valid errors.Is targets:
//
//	errors.Is(err, renamer.ErrInvalidPath)
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrInvalidInput   Kind = "invalid input"
	ErrInvalidPath    Kind = "invalid path"
	ErrInvalidEntry   Kind = "invalid entry"
	ErrMetadata       Kind = "metadata error"
	ErrNameExtraction Kind = "name extraction error"
	ErrRename         Kind = "rename error"
)

var (
	errEmptyPath   = errors.New("please provide a non empty path")
	errNoExtension = errors.New("file has no extension")
)

// Error is returned for every condition that aborts a run.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Path != "" {
		msg += " '" + e.Path + "'"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
