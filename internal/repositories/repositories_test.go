package repositories

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
)

func Test_States_Load_MissingFileGivesDefaults(t *testing.T) {
	r := NewStateRepository(t.TempDir())
	state := r.Load(context.Background())
	assert.Empty(t, state.SeenURLs)
	assert.Empty(t, state.LastNewURLs)
	assert.Empty(t, state.LastRun)
}

func Test_States_Load_CorruptFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0644))

	state := NewStateRepository(dir).Load(context.Background())
	assert.Empty(t, state.SeenURLs)
	assert.Empty(t, state.LastRun)
}

func Test_States_SaveLoadRoundtrip(t *testing.T) {
	r := NewStateRepository(t.TempDir())
	saved := entities.RunState{
		SeenURLs:    []string{"https://a", "https://b"},
		LastRun:     "2024-01-02T10:00:00",
		LastNewURLs: []string{"https://b"},
	}
	require.NoError(t, r.Save(context.Background(), saved))

	loaded := r.Load(context.Background())
	assert.Equal(t, saved, loaded)
}

func Test_States_Save_NormalizesNilSlices(t *testing.T) {
	dir := t.TempDir()
	r := NewStateRepository(dir)
	require.NoError(t, r.Save(context.Background(), entities.RunState{LastRun: "x"}))

	data, err := os.ReadFile(filepath.Join(dir, stateFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seen_urls": []`)
	assert.NotContains(t, string(data), "null")
}

func Test_Postings_LoadRaw_MissingFile(t *testing.T) {
	r := NewPostingsRepository(t.TempDir())
	assert.Empty(t, r.LoadRaw(context.Background()))
}

func Test_Postings_LoadRaw_DropsNonObjectEntries(t *testing.T) {
	dir := t.TempDir()
	doc := `[{"url": "https://a"}, "junk", 42, {"url": "https://b"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, postingsFileName), []byte(doc), 0644))

	postings := NewPostingsRepository(dir).LoadRaw(context.Background())
	require.Len(t, postings, 2)
	assert.Equal(t, "https://a", postings[0].Field("url"))
	assert.Equal(t, "https://b", postings[1].Field("url"))
}

func Test_Postings_LoadRaw_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, postingsFileName), []byte("{oops"), 0644))
	assert.Empty(t, NewPostingsRepository(dir).LoadRaw(context.Background()))
}

func Test_Postings_SaveNormalized_WritesJSONAndCSV(t *testing.T) {
	dir := t.TempDir()
	r := NewPostingsRepository(dir)

	postings := []entities.Posting{{
		URL:         "https://jobs.af/jobs/1",
		Title:       "Go Developer",
		ApplyMethod: entities.ApplyMethodEmail,
		Emails:      []string{"hr@example.com", "jobs@example.com"},
		Phones:      []string{"+93700123456"},
		Source:      "jobs.af",
		IsNew:       true,
	}}
	require.NoError(t, r.SaveNormalized(context.Background(), postings))

	loaded := r.LoadRaw(context.Background())
	require.Len(t, loaded, 1)
	assert.Equal(t, "https://jobs.af/jobs/1", loaded[0].Field("url"))

	csvData, err := os.ReadFile(filepath.Join(dir, postingsCSVFileName))
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(csvData))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvColumns, rows[0])
	assert.Equal(t, "hr@example.com; jobs@example.com", rows[1][8])
	assert.Equal(t, "+93700123456", rows[1][9])
	assert.Equal(t, "true", rows[1][13])
}

func Test_Summaries_Save(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewSummaryRepository(dir).Save(context.Background(), "hello\n"))

	data, err := os.ReadFile(filepath.Join(dir, summaryFileName))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
