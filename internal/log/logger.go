package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/davidwu111/extract-livp/pkg/types"
)

type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	logJSON bool
	logText bool
}

func New(logFilePath string, logJSON, logText bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &Logger{
		console: os.Stdout,
		file:    file,
		logJSON: logJSON,
		logText: logText,
	}, nil
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type LogEntry struct {
	Timestamp time.Time           `json:"timestamp"`
	Level     string              `json:"level"`
	Message   string              `json:"message"`
	Archive   string              `json:"archive,omitempty"`
	Status    types.ExtractStatus `json:"status,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// LogResult records the outcome of one archive. Failures also go to the
// console so the user sees which file went wrong without opening the log.
func (l *Logger) LogResult(entry types.FileEntry, result types.ExtractResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   fmt.Sprintf("%s: %s", result.Status, entry.Name),
		Archive:   entry.Path,
		Status:    result.Status,
	}

	if !result.OK() {
		e.Level = "ERROR"
		if result.Err != nil {
			e.Error = result.Err.Error()
		}
		consoleMsg := e.Message
		if e.Error != "" {
			consoleMsg += ": " + e.Error
		}
		fmt.Fprintf(l.console, "[!] %s\n", consoleMsg)
	}

	l.writeEntry(e)
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

func (l *Logger) writeEntry(entry LogEntry) {
	if l.logJSON && l.file != nil {
		data, _ := json.Marshal(entry)
		l.file.Write(data)
		l.file.Write([]byte("\n"))
	}

	if l.logText && l.file != nil {
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
}

func (l *Logger) Summary(summary types.RunSummary) {
	fmt.Fprintln(l.console, "\n=== Extraction Summary ===")
	fmt.Fprintf(l.console, "Total processed: %d\n", summary.Total)
	fmt.Fprintf(l.console, "Successful:      %d\n", summary.Succeeded)
	fmt.Fprintf(l.console, "Failed:          %d\n", summary.Failed)
	fmt.Fprintf(l.console, "Output folder:   %s\n", summary.OutputDir)
	fmt.Fprintf(l.console, "Duration:        %s\n", summary.Duration.Round(time.Second))
	if summary.BytesWritten > 0 {
		fmt.Fprintf(l.console, "Bytes written:   %.2f MB\n", float64(summary.BytesWritten)/1024/1024)
		fmt.Fprintf(l.console, "Speed:           %.2f MB/s\n", summary.BytesPerSecond/1024/1024)
	}
	fmt.Fprintln(l.console, "==========================")
}

// Progress prints a console progress line. The pipeline calls this every
// hundred archives and at the end of the batch so large folders show signs
// of life without flooding the console.
func (l *Logger) Progress(current, total int) {
	percent := float64(current) / float64(total) * 100
	fmt.Fprintf(l.console, "Processing %d/%d (%.1f%%)...\n", current, total, percent)
}
