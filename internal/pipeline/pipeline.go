package pipeline

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/davidwu111/extract-livp/internal/archive"
	"github.com/davidwu111/extract-livp/internal/config"
	"github.com/davidwu111/extract-livp/internal/log"
	"github.com/davidwu111/extract-livp/internal/naming"
	"github.com/davidwu111/extract-livp/internal/scanner"
	"github.com/davidwu111/extract-livp/internal/verify"
	"github.com/davidwu111/extract-livp/pkg/types"
)

// ErrCancelled is returned by Run when the confirm callback declines to
// proceed. It marks a normal early exit, not a failure.
var ErrCancelled = errors.New("extraction cancelled by user")

// ConfirmFunc is asked once, after scanning, whether to proceed with the
// given number of archives. The CLI backs it with a prompt; the web UI
// confirms up front.
type ConfirmFunc func(count int) bool

type Pipeline struct {
	cfg              *config.Config
	scanner          *scanner.Scanner
	extractor        *archive.Extractor
	logger           *log.Logger
	progressCallback ProgressCallback
	confirm          ConfirmFunc
}

func New(cfg *config.Config) (*Pipeline, error) {
	logger, err := log.New(cfg.LogFile, cfg.LogJSON, true)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:       cfg,
		scanner:   scanner.New(),
		extractor: archive.New(cfg.ImageExtensions, cfg.VideoExtension, verify.New(cfg.CRCVerify), cfg.DryRun),
		logger:    logger,
	}, nil
}

func (p *Pipeline) SetProgressCallback(cb ProgressCallback) {
	p.progressCallback = cb
}

func (p *Pipeline) SetConfirm(fn ConfirmFunc) {
	p.confirm = fn
}

// Run scans the source tree for .livp archives and extracts each one
// sequentially: allocate a stem, pull out the image and video members,
// count the outcome, move on. Per-archive failures are logged and counted
// but never abort the batch; only a scan failure is fatal.
func (p *Pipeline) Run() (*types.RunSummary, error) {
	startTime := time.Now()

	p.logger.Info("Starting scan: '" + p.cfg.Source + "'")
	p.sendProgress(ProgressUpdate{
		Type:    "status",
		Message: "Scanning directory tree...",
	})

	entries, err := p.scanner.Scan(p.cfg.Source)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Found " + strconv.Itoa(len(entries)) + " .livp file(s)")
	p.sendProgress(ProgressUpdate{
		Type:    "status",
		Message: "Found " + strconv.Itoa(len(entries)) + " .livp file(s)",
		Total:   len(entries),
	})

	summary := &types.RunSummary{
		Total:     len(entries),
		OutputDir: p.cfg.OutputDir,
		StartTime: startTime,
	}

	if len(entries) == 0 {
		p.finish(summary)
		return summary, nil
	}

	if p.confirm != nil && !p.confirm(len(entries)) {
		p.logger.Info("Extraction cancelled by user")
		return nil, ErrCancelled
	}

	if !p.cfg.DryRun {
		if err := os.MkdirAll(p.cfg.OutputDir, 0755); err != nil {
			return nil, err
		}
	}

	p.logger.Info("Starting extraction to: " + p.cfg.OutputDir)

	// The allocator is scoped to this run; the output directory contents
	// carry collision state between runs.
	allocator := naming.New(p.cfg.OutputDir, p.cfg.OutputExtensions())

	for i, entry := range entries {
		if (i+1)%100 == 0 || i+1 == len(entries) {
			p.logger.Progress(i+1, len(entries))
		}

		stem := allocator.Allocate(entry.Stem)
		result := p.extractor.Extract(entry.Path, stem, p.cfg.OutputDir)

		if result.OK() {
			summary.Succeeded++
			summary.BytesWritten += result.BytesWritten
		} else {
			summary.Failed++
		}

		p.logger.LogResult(entry, result)
		p.sendProgress(ProgressUpdate{
			Type:     "progress",
			Current:  i + 1,
			Total:    len(entries),
			Filename: entry.Name,
			Status:   result.Status,
		})
	}

	p.finish(summary)
	return summary, nil
}

func (p *Pipeline) finish(summary *types.RunSummary) {
	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)
	if summary.Duration.Seconds() > 0 {
		summary.BytesPerSecond = float64(summary.BytesWritten) / summary.Duration.Seconds()
	}

	p.logger.Summary(*summary)
	p.sendProgress(ProgressUpdate{
		Type:    "complete",
		Summary: summary,
	})
}

func (p *Pipeline) sendProgress(update ProgressUpdate) {
	if p.progressCallback != nil {
		p.progressCallback(update)
	}
}

func (p *Pipeline) Close() error {
	return p.logger.Close()
}
