package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/On-Jun9/ShutterRename/internal/term"
	"github.com/On-Jun9/ShutterRename/pkg/types"
)

// Logger writes user-facing lines to the console and, when a log file is
// configured, structured entries to that file.
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	logJSON bool
	runID   string
}

// New returns a logger writing console lines to console. An empty
// logFilePath disables the file sink.
func New(console io.Writer, logFilePath string, logJSON bool) (*Logger, error) {
	l := &Logger{console: console, logJSON: logJSON}
	if logFilePath == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.file = file

	return l, nil
}

// NewConsole returns a logger without file sink that writes to w.
func NewConsole(w io.Writer) *Logger {
	return &Logger{console: w}
}

// SetRunID stamps every following file entry with id.
func (l *Logger) SetRunID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = id
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

type LogEntry struct {
	Timestamp time.Time          `json:"timestamp"`
	Level     string             `json:"level"`
	Message   string             `json:"message"`
	RunID     string             `json:"run_id,omitempty"`
	Source    string             `json:"source,omitempty"`
	Dest      string             `json:"dest,omitempty"`
	Action    types.RenameAction `json:"action,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (l *Logger) LogTask(task types.RenameTask) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   fmt.Sprintf("%s: %s -> %s", task.Action, task.Source.Name, task.DestName),
		Source:    task.Source.Path,
		Dest:      task.DestPath,
		Action:    task.Action,
	}
	l.writeEntry(entry)
}

func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeEntry(LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   msg,
	})
}

func (l *Logger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeEntry(LogEntry{
		Timestamp: time.Now(),
		Level:     "ERROR",
		Message:   msg,
		Error:     err.Error(),
	})
}

// Success prints a green check line on the console.
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s✔%s  %s\n", term.Green, term.NC, msg)
}

// Warn prints a yellow line on the console and records it in the log file.
func (l *Logger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s▲%s  %s\n", term.Yellow, term.NC, msg)
	l.writeEntry(LogEntry{
		Timestamp: time.Now(),
		Level:     "WARN",
		Message:   msg,
	})
}

// Print writes text to the console as is.
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	io.WriteString(l.console, text)
}

func (l *Logger) writeEntry(entry LogEntry) {
	if l.file == nil {
		return
	}
	entry.RunID = l.runID

	if l.logJSON {
		data, _ := json.Marshal(entry)
		l.file.Write(data)
		l.file.Write([]byte("\n"))
		return
	}

	line := fmt.Sprintf("[%s] %s %s\n",
		entry.Timestamp.Format("2006-01-02 15:04:05"),
		entry.Level,
		entry.Message,
	)
	if entry.Error != "" {
		line = fmt.Sprintf("[%s] %s %s - Error: %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Level,
			entry.Message,
			entry.Error,
		)
	}
	l.file.WriteString(line)
}

// Summary prints the final count line and records the run totals in the log file.
func (l *Logger) Summary(summary types.RunSummary) {
	msg := fmt.Sprintf("Total renamed images: %d", summary.Renamed)
	if summary.DryRun {
		msg += " (dry run)"
	}
	l.Success(msg)

	l.Info(fmt.Sprintf("Run finished in %s: scanned=%d renamed=%d kept=%d non-regular=%d other-ext=%d",
		summary.Duration.Round(time.Millisecond),
		summary.ScannedEntries,
		summary.Renamed,
		summary.AlreadyNamed,
		summary.SkippedNonRegular,
		summary.SkippedExtension,
	))
}
