package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_RawPosting_Field(t *testing.T) {
	raw := RawPosting{
		"url":    "  https://jobs.af/jobs/1  ",
		"count":  float64(3),
		"flag":   true,
		"nested": map[string]any{"x": 1},
		"null":   nil,
	}

	assert.Equal(t, "https://jobs.af/jobs/1", raw.Field("url"))
	assert.Equal(t, "3", raw.Field("count"))
	assert.Equal(t, "true", raw.Field("flag"))
	assert.Equal(t, "", raw.Field("nested"))
	assert.Equal(t, "", raw.Field("null"))
	assert.Equal(t, "", raw.Field("absent"))
}

func Test_Posting_ClosingOn(t *testing.T) {
	p := Posting{ClosingDate: "2024-06-30"}
	got, ok := p.ClosingOn()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), got)

	_, ok = Posting{}.ClosingOn()
	assert.False(t, ok)

	_, ok = Posting{ClosingDate: "by end of Ramadan"}.ClosingOn()
	assert.False(t, ok)
}

func Test_Posting_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Untitled", Posting{}.DisplayTitle())
	assert.Equal(t, "Go Developer", Posting{Title: "Go Developer"}.DisplayTitle())
}

func Test_RunState_SeenSet(t *testing.T) {
	state := RunState{SeenURLs: []string{"a", "b", "a"}}
	set := state.SeenSet()
	assert.Len(t, set, 2)
	_, ok := set["a"]
	assert.True(t, ok)
}
