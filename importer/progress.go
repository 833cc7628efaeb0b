package importer

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressTracker reports how far an import has got.
type ProgressTracker struct {
	writer         io.Writer
	total          int
	imported       int
	skipped        int
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

// NewProgressTracker creates a tracker that writes to writer every
// reportInterval processed records. A nil writer discards output.
func NewProgressTracker(writer io.Writer, total, reportInterval int) *ProgressTracker {
	if writer == nil {
		writer = io.Discard
	}
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressTracker{
		writer:         writer,
		total:          total,
		reportInterval: reportInterval,
	}
}

// Start begins tracking progress.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.imported = 0
	p.skipped = 0
	p.lastReported = 0
}

// Imported records n newly stored records.
func (p *ProgressTracker) Imported(n int) {
	p.advance(n, 0)
}

// Skipped records n records that were left out, for example duplicates.
func (p *ProgressTracker) Skipped(n int) {
	p.advance(0, n)
}

func (p *ProgressTracker) advance(imported, skipped int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.imported += imported
	p.skipped += skipped
	if done := p.processed(); done-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = done
	}
}

// Finish prints the final line.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.report()
	fmt.Fprintln(p.writer)
}

// Counts returns the imported and skipped totals so far.
func (p *ProgressTracker) Counts() (imported, skipped int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.imported, p.skipped
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}

func (p *ProgressTracker) processed() int {
	return min(p.imported+p.skipped, p.total)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressTracker) report() {
	done := p.processed()
	rate := float64(done) / time.Since(p.startTime).Seconds()

	percentage := 0.0
	if p.total > 0 {
		percentage = float64(done) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rImported: %d/%d (%.1f%%), %d skipped - %.1f records/s",
		p.imported, p.total, percentage, p.skipped, rate)
}
