package services

import (
	"fmt"
	"strings"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
)

// BuildSummary renders the run summary document. Every section is present
// even when empty, so an operator always sees the zero counts.
func BuildSummary(runTS string, newPostings, expiringToday, expiringSoon []entities.Posting) string {
	var lines []string
	lines = append(lines, "Jobs Tracker summary")
	lines = append(lines, fmt.Sprintf("Run: %s", runTS))
	lines = append(lines, "")
	lines = appendSection(lines, fmt.Sprintf("New jobs: %d", len(newPostings)), newPostings)
	lines = append(lines, "")
	lines = appendSection(lines, fmt.Sprintf("Expiring today: %d", len(expiringToday)), expiringToday)
	lines = append(lines, "")
	lines = appendSection(lines, fmt.Sprintf("Expiring soon (1-2 days): %d", len(expiringSoon)), expiringSoon)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func appendSection(lines []string, header string, postings []entities.Posting) []string {
	lines = append(lines, header)
	for _, p := range postings {
		lines = append(lines, fmt.Sprintf("- %s | %s", p.DisplayTitle(), p.URL))
	}
	return lines
}

// Digest is the one-line summary used by transient notification channels.
func Digest(newCount, expiringToday, expiringSoon int) string {
	return fmt.Sprintf("New: %d | Expiring today: %d | Expiring soon: %d",
		newCount, expiringToday, expiringSoon)
}
