package entities

import (
	"strconv"
	"strings"
	"time"
)

const (
	ApplyMethodURL     = "apply_url"
	ApplyMethodEmail   = "email"
	ApplyMethodUnknown = "unknown"
)

// ClosingDateLayout is the canonical on-disk form of a resolved closing date.
const ClosingDateLayout = "2006-01-02"

// RawPosting is a scraped record as it arrives from the upstream producer.
// Nothing about its shape is trusted beyond "it is a JSON object".
type RawPosting map[string]any

// Field returns the named field as a trimmed string. Absent, null and
// non-scalar values become the empty string.
func (p RawPosting) Field(name string) string {
	switch v := p[name].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Posting is the normalized form of a raw posting.
type Posting struct {
	URL            string   `json:"url"`
	Title          string   `json:"title,omitempty"`
	Company        string   `json:"company,omitempty"`
	Location       string   `json:"location,omitempty"`
	ClosingDate    string   `json:"closing_date,omitempty"`
	ClosingDateRaw string   `json:"closing_date_raw,omitempty"`
	ApplyURL       string   `json:"apply_url,omitempty"`
	ApplyMethod    string   `json:"apply_method"`
	Emails         []string `json:"emails"`
	Phones         []string `json:"phones"`
	Source         string   `json:"source"`
	Description    string   `json:"description,omitempty"`
	Details        string   `json:"details,omitempty"`
	IsNew          bool     `json:"is_new"`
}

// ClosingOn reports the resolved closing date, if the posting has one.
// Only the canonical form counts; an unresolvable raw string stays opaque.
func (p Posting) ClosingOn() (time.Time, bool) {
	if p.ClosingDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ClosingDateLayout, p.ClosingDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DisplayTitle is the title as rendered in summaries.
func (p Posting) DisplayTitle() string {
	if p.Title == "" {
		return "Untitled"
	}
	return p.Title
}
