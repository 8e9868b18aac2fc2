package repositories

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
)

const (
	postingsFileName    = "jobs_full_open.json"
	postingsCSVFileName = "jobs_full_open.csv"
)

// Fixed column schema of the tabular export, regardless of which fields
// are populated.
var csvColumns = []string{
	"url", "title", "company", "location", "closing_date", "closing_date_raw",
	"apply_url", "apply_method", "emails", "phones", "source",
	"description", "details", "is_new",
}

// Postings persists the job store: a JSON document of normalized postings
// plus a flattened CSV projection for spreadsheet consumption.
type Postings struct {
	jsonPath string
	csvPath  string
}

func NewPostingsRepository(dataDir string) *Postings {
	return &Postings{
		jsonPath: filepath.Join(dataDir, postingsFileName),
		csvPath:  filepath.Join(dataDir, postingsCSVFileName),
	}
}

// LoadRaw reads the scraped postings document. A missing or unparseable
// document yields an empty batch; entries that are not JSON objects are
// dropped.
func (r *Postings) LoadRaw(ctx context.Context) []entities.RawPosting {
	data, err := os.ReadFile(r.jsonPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("failed to read postings document: %v", err)
		}
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warnf("postings document is not a JSON array, treating as empty: %v", err)
		return nil
	}

	postings := make([]entities.RawPosting, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			postings = append(postings, entities.RawPosting(obj))
		}
	}
	return postings
}

// SaveNormalized rewrites both the JSON document and its CSV projection.
func (r *Postings) SaveNormalized(ctx context.Context, postings []entities.Posting) error {
	if postings == nil {
		postings = []entities.Posting{}
	}

	data, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal postings")
	}
	if err = writeFileAtomic(r.jsonPath, append(data, '\n')); err != nil {
		return errors.Wrap(err, "write postings document")
	}

	csvData, err := renderCSV(postings)
	if err != nil {
		return errors.Wrap(err, "render postings csv")
	}
	if err = writeFileAtomic(r.csvPath, csvData); err != nil {
		return errors.Wrap(err, "write postings csv")
	}
	return nil
}

func renderCSV(postings []entities.Posting) ([]byte, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, p := range postings {
		row := []string{
			p.URL, p.Title, p.Company, p.Location, p.ClosingDate, p.ClosingDateRaw,
			p.ApplyURL, p.ApplyMethod,
			strings.Join(p.Emails, "; "), strings.Join(p.Phones, "; "),
			p.Source, p.Description, p.Details,
			strconv.FormatBool(p.IsNew),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
