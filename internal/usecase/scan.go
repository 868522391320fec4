package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"stopdfa/internal/adapter/fs"
	"stopdfa/internal/domain"
	"stopdfa/internal/port"
)

// ProgressFunc is called after each file is classified.
type ProgressFunc func(processed, total int, path string)

// ScanUseCase classifies every selected file under a directory.
type ScanUseCase struct {
	walker     port.FileWalker
	classifier *Classifier
	workers    int
	logger     *zap.Logger
}

// NewScanUseCase creates a new scan use case. A nil logger discards output.
func NewScanUseCase(walker port.FileWalker, classifier *Classifier, workers int, logger *zap.Logger) *ScanUseCase {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanUseCase{
		walker:     walker,
		classifier: classifier,
		workers:    workers,
		logger:     logger,
	}
}

// ScanResult contains the results of a scan.
type ScanResult struct {
	Files     []domain.FileResult `json:"files"`
	Totals    []domain.Occurrence `json:"totals"`
	Tokens    int                 `json:"tokens"`
	Stopwords int                 `json:"stopwords"`
	Errors    []string            `json:"errors,omitempty"`
}

// Scan classifies the files under root. Files that cannot be read are
// reported in ScanResult.Errors and do not stop the scan.
func (u *ScanUseCase) Scan(ctx context.Context, root string, progress ProgressFunc) (*ScanResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	results := make([]*domain.FileResult, len(files))
	errs := make([]error, len(files))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		processed int
	)
	sem := make(chan struct{}, u.workers)

	for i, file := range files {
		select {
		case <-ctx.Done():
		case sem <- struct{}{}:
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int, file port.FileInfo) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i], errs[i] = u.scanFile(file.Path)

			mu.Lock()
			processed++
			if progress != nil {
				progress(processed, len(files), file.Path)
			}
			mu.Unlock()
		}(i, file)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ScanResult{Files: make([]domain.FileResult, 0, len(files))}
	totals := make(map[string]int)
	for i, fr := range results {
		if errs[i] != nil {
			u.logger.Warn("skipping file", zap.String("path", files[i].Path), zap.Error(errs[i]))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", files[i].Path, errs[i]))
			continue
		}
		result.Files = append(result.Files, *fr)
		result.Tokens += fr.Tokens
		result.Stopwords += fr.Stopwords
		for _, o := range fr.Occurrences {
			totals[o.Word] += o.Count
		}
	}
	result.Totals = sortedOccurrences(totals)

	u.logger.Debug("scan finished",
		zap.String("root", root),
		zap.Int("files", len(result.Files)),
		zap.Int("errors", len(result.Errors)),
		zap.Int("stopwords", result.Stopwords),
	)

	return result, nil
}

func (u *ScanUseCase) scanFile(path string) (*domain.FileResult, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.ValidString(content) {
		return nil, errors.New("not UTF-8 text")
	}

	res := u.classifier.Classify(content)
	fr := &domain.FileResult{
		Path:        path,
		Tokens:      len(res.Tokens),
		Occurrences: res.Occurrences,
	}
	for _, o := range res.Occurrences {
		fr.Stopwords += o.Count
	}
	return fr, nil
}
