package repositories

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
)

const summaryFileName = "summary.txt"

// Summaries persists the plain-text run summary.
type Summaries struct {
	path string
}

func NewSummaryRepository(dataDir string) *Summaries {
	return &Summaries{path: filepath.Join(dataDir, summaryFileName)}
}

func (r *Summaries) Save(ctx context.Context, text string) error {
	return errors.Wrap(writeFileAtomic(r.path, []byte(text)), "write summary document")
}
