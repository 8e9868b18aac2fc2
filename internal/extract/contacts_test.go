package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Emails_DedupesCaseInsensitivelyAndSorts(t *testing.T) {
	text := "Send CV to HR@Example.COM or jobs@site.af, cc hr@example.com"
	assert.Equal(t, []string{"hr@example.com", "jobs@site.af"}, Emails(text))
}

func Test_Emails_EmptyInput(t *testing.T) {
	assert.Empty(t, Emails(""))
	assert.Empty(t, Emails("no contacts here"))
}

func Test_Emails_RequiresRealTLD(t *testing.T) {
	assert.Empty(t, Emails("broken@host.x"))
	assert.Equal(t, []string{"ok@host.io"}, Emails("ok@host.io"))
}

func Test_NormalizePhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"0093 700 123 456", "+93700123456"},
		{"+93 (700) 123-456", "+93700123456"},
		{"0700123456", "0700123456"},
		{"+1 202 555 0175", "+12025550175"},
		{"700123456", "700123456"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizePhone(c.raw), "raw: %q", c.raw)
	}
}

func Test_Phones_StrictLocalMobilePass(t *testing.T) {
	assert.Equal(t, []string{"0700123456"}, Phones("call 0700123456 today"))
	assert.Equal(t, []string{"+93700123456"}, Phones("call 0093700123456 today"))
}

func Test_Phones_GenericPassFiltersImplausibleChunks(t *testing.T) {
	// Plain digit runs without a recognized prefix or explicit + are noise.
	assert.Empty(t, Phones("order no 1234567"))
	assert.Equal(t, []string{"+12025550175"}, Phones("US office: +1 202 555 0175"))
}

func Test_Phones_DedupesAcrossPasses(t *testing.T) {
	// The same number matched by both passes must appear once.
	got := Phones("0700123456 or 0700123456")
	assert.Equal(t, []string{"0700123456"}, got)
}

func Test_Phones_EmptyInput(t *testing.T) {
	assert.Empty(t, Phones(""))
}
