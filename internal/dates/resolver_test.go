package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_Resolve_ISODate(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve("2024-01-01")
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.January, 1), got)
}

func Test_Resolve_DayFirstConvention(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve("05/04/2025")
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.April, 5), got)
}

func Test_Resolve_MonthName(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve("15 March 2025")
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.March, 15), got)
}

func Test_Resolve_FuzzySurroundingTokens(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve("Closing date: 15 March 2025 (Kabul time)")
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.March, 15), got)
}

func Test_Resolve_OrdinalDay(t *testing.T) {
	r := NewResolver()
	got, ok := r.Resolve("deadline 1st April 2025")
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.April, 1), got)
}

func Test_Resolve_Unresolvable(t *testing.T) {
	r := NewResolver()
	for _, value := range []string{"", "   ", "open until filled", "ASAP"} {
		_, ok := r.Resolve(value)
		assert.False(t, ok, "value: %q", value)
	}
}

func Test_Resolve_MemoizedResultIsStable(t *testing.T) {
	r := NewResolver()
	first, ok1 := r.Resolve("2024-06-30")
	second, ok2 := r.Resolve("2024-06-30")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
