// Package extract pulls contact information out of free-text posting fields.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Strict Afghan mobile pattern: optional +93/0093 prefix, optional
	// leading zero, then 7 and eight more digits.
	afMobileRe = regexp.MustCompile(`(?:\+?93|0093)?\s*0?7\d{8}\b`)

	// Loose "phone-shaped" chunk; candidates are filtered by digit count
	// and prefix plausibility before being accepted.
	phoneChunkRe = regexp.MustCompile(`(?:\+|00)?\d[\d\s().\-]{6,}\d`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

// Emails returns the lower-cased, deduplicated email addresses found in
// text, in sorted order. Empty input yields an empty result.
func Emails(text string) []string {
	if text == "" {
		return nil
	}
	found := make(map[string]struct{})
	for _, m := range emailRe.FindAllString(text, -1) {
		found[strings.ToLower(m)] = struct{}{}
	}
	return sortedKeys(found)
}

// NormalizePhone canonicalizes a raw phone match. It is a best-effort
// heuristic, not E.164 validation: the 0093 international prefix collapses
// to +93, an explicit leading + is preserved, everything else comes back as
// bare digits. The result may be empty; callers filter those out.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if strings.HasPrefix(digits, "0093") {
		digits = digits[2:]
	}
	if strings.HasPrefix(digits, "93") {
		return "+" + digits
	}
	if strings.HasPrefix(raw, "+") {
		return "+" + digits
	}
	return digits
}

// Phones returns the normalized phone numbers found in text, in sorted
// order. Pass one matches the strict local-mobile pattern; pass two accepts
// generic phone-shaped chunks only when they look plausibly like a number.
func Phones(text string) []string {
	if text == "" {
		return nil
	}
	phones := make(map[string]struct{})
	for _, m := range afMobileRe.FindAllString(text, -1) {
		if p := NormalizePhone(m); p != "" {
			phones[p] = struct{}{}
		}
	}
	for _, m := range phoneChunkRe.FindAllString(text, -1) {
		digits := nonDigitRe.ReplaceAllString(m, "")
		if len(digits) < 7 || len(digits) > 15 {
			continue
		}
		if !strings.HasPrefix(m, "+") && !hasKnownPrefix(digits) {
			continue
		}
		if p := NormalizePhone(m); p != "" {
			phones[p] = struct{}{}
		}
	}
	return sortedKeys(phones)
}

func hasKnownPrefix(digits string) bool {
	return strings.HasPrefix(digits, "0") ||
		strings.HasPrefix(digits, "7") ||
		strings.HasPrefix(digits, "93")
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
