package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avezina/scrutiny/internal/model"
)

// Validator validates one bibliography file into a citation report.
// Implemented by the pipeline; declared here to keep the dependency
// pointing inward.
type Validator interface {
	ValidateFile(ctx context.Context, path string) (*model.CitationReport, error)
}

// FileJob validates a single bibliography file
type FileJob struct {
	Path      string
	Validator Validator
}

// Execute runs the validation job
func (j *FileJob) Execute(ctx context.Context) Result {
	report, err := j.Validator.ValidateFile(ctx, j.Path)
	return &FileResult{Path: j.Path, Report: report, Err: err}
}

// FileResult is the outcome of validating one file
type FileResult struct {
	Path   string
	Report *model.CitationReport
	Err    error
}

// GetError returns the error from the file result
func (r *FileResult) GetError() error {
	return r.Err
}

// BatchProcessor validates many bibliography files concurrently
type BatchProcessor struct {
	validator   Validator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(validator Validator, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{validator: validator, concurrency: concurrency}
}

// ProcessFiles validates each file with the worker pool. A failure on
// one file never aborts the others.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&FileJob{Path: path, Validator: b.validator})
	}

	var results []*FileResult
	for _, r := range pool.Wait() {
		if fr, ok := r.(*FileResult); ok {
			results = append(results, fr)
		}
	}
	return results
}

// ReadFileList reads a manifest of file paths, one per line, skipping
// blanks and # comments
func ReadFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file list: %w", err)
	}
	return paths, nil
}
