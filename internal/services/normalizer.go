package services

import (
	"time"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/dates"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/extract"
)

// Normalizer turns raw scraped postings into normalized ones: contacts
// extracted, apply method classified, closing date canonicalized, expired
// postings dropped, new/seen status stamped.
type Normalizer struct {
	resolver *dates.Resolver
	source   string
}

func NewNormalizer(resolver *dates.Resolver, source string) *Normalizer {
	return &Normalizer{resolver: resolver, source: source}
}

// Normalize processes the batch in input order. Within the batch the first
// occurrence of a URL wins; later duplicates are dropped silently. seen is
// the state from before this run and is never consulted for postings
// produced earlier in the same batch. A posting whose resolved closing date
// is strictly before today is dropped entirely; one with no resolvable date
// is always retained.
func (n *Normalizer) Normalize(raw []entities.RawPosting, seen map[string]struct{}, today time.Time) []entities.Posting {
	normalized := make([]entities.Posting, 0, len(raw))
	seenInRun := make(map[string]struct{}, len(raw))

	for _, job := range raw {
		url := job.Field("url")
		if url == "" {
			continue
		}
		if _, dup := seenInRun[url]; dup {
			continue
		}
		seenInRun[url] = struct{}{}

		description := job.Field("description")
		details := job.Field("details")
		combined := description + "\n" + details

		emails := extract.Emails(combined)
		phones := extract.Phones(combined)
		applyURL := job.Field("apply_url")

		applyMethod := entities.ApplyMethodUnknown
		if applyURL != "" {
			applyMethod = entities.ApplyMethodURL
		} else if len(emails) > 0 {
			applyMethod = entities.ApplyMethodEmail
		}

		closingValue := job.Field("closing_date")
		if closingValue == "" {
			closingValue = job.Field("closing_date_raw")
		}
		closingDate := job.Field("closing_date")
		closing, resolved := n.resolver.Resolve(closingValue)
		if resolved {
			closingDate = closing.Format(entities.ClosingDateLayout)
			if closing.Before(today) {
				continue
			}
		}

		_, wasSeen := seen[url]
		normalized = append(normalized, entities.Posting{
			URL:            url,
			Title:          job.Field("title"),
			Company:        job.Field("company"),
			Location:       job.Field("location"),
			ClosingDate:    closingDate,
			ClosingDateRaw: job.Field("closing_date_raw"),
			ApplyURL:       applyURL,
			ApplyMethod:    applyMethod,
			Emails:         emails,
			Phones:         phones,
			Source:         n.source,
			Description:    description,
			Details:        details,
			IsNew:          !wasSeen,
		})
	}
	return normalized
}
