package services

import (
	"time"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
)

// ClassifyExpiry partitions postings by closing-date urgency: due today,
// and due within the next two days. Postings with no resolvable closing
// date land in neither bucket. Input order is preserved.
func ClassifyExpiry(postings []entities.Posting, today time.Time) (expiringToday, expiringSoon []entities.Posting) {
	for _, p := range postings {
		closing, ok := p.ClosingOn()
		if !ok {
			continue
		}
		delta := int(closing.Sub(today).Hours() / 24)
		switch {
		case delta == 0:
			expiringToday = append(expiringToday, p)
		case delta >= 1 && delta <= 2:
			expiringSoon = append(expiringSoon, p)
		}
	}
	return expiringToday, expiringSoon
}
