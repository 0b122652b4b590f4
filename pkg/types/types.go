// Package types defines core data structures shared across extract-livp modules.
package types

import (
	"time"
)

// FileEntry represents a scanned .livp archive on disk.
type FileEntry struct {
	// Path is the absolute path to the archive.
	Path string
	// Name is the base filename including the extension.
	Name string
	// Stem is the base filename without the extension.
	Stem string
	// Size is the archive size in bytes.
	Size int64
	// ModTime is the archive modification time.
	ModTime time.Time
}

// ExtractStatus classifies the outcome of extracting one archive.
type ExtractStatus string

const (
	// ExtractOK means both the image and the video member were written.
	ExtractOK ExtractStatus = "ok"
	// ExtractSkippedIncomplete means the archive is readable but is missing
	// its image member, its video member, or both.
	ExtractSkippedIncomplete ExtractStatus = "skipped_incomplete"
	// ExtractCorrupt means the file is not a readable zip container.
	ExtractCorrupt ExtractStatus = "corrupt"
	// ExtractFailed means an I/O or other unexpected error occurred.
	ExtractFailed ExtractStatus = "failed"
)

// ExtractResult is the per-archive outcome consumed by the run loop.
type ExtractResult struct {
	// Status classifies the outcome.
	Status ExtractStatus
	// ImagePath is the written image file path, set only on ExtractOK.
	ImagePath string
	// VideoPath is the written video file path, set only on ExtractOK.
	VideoPath string
	// BytesWritten is the total payload size copied out of the archive.
	BytesWritten int64
	// Err carries the underlying cause for non-OK statuses. It is nil for
	// ExtractOK and may be nil for ExtractSkippedIncomplete.
	Err error
}

// OK reports whether the extraction produced both output files.
func (r ExtractResult) OK() bool {
	return r.Status == ExtractOK
}

// RunSummary contains statistics for a completed run.
type RunSummary struct {
	Total          int
	Succeeded      int
	Failed         int
	OutputDir      string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	BytesWritten   int64
	BytesPerSecond float64
}
