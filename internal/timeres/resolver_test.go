package timeres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return New(loc)
}

func TestResolve_HintWins(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC) // 10:00 WIB

	got := r.Resolve("in 5 minutes", "2025-05-10 12:00:00", now)

	// Hint is local WIB; 12:00 WIB == 05:00 UTC.
	assert.Equal(t, time.Date(2025, 5, 10, 5, 0, 0, 0, time.UTC), got)
}

func TestResolve_MalformedHintFallsThrough(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

	got := r.Resolve("10 minutes", "not-a-date", now)
	assert.Equal(t, now.Add(10*time.Minute), got)
}

func TestResolve_PastHintFallsThrough(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

	got := r.Resolve("2 hours", "2025-05-09 10:00:00", now)
	assert.Equal(t, now.Add(2*time.Hour), got)
}

func TestResolve_TextMinutes(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(5*time.Minute), r.Resolve("remind me in 5 minutes", "", now))
	assert.Equal(t, now.Add(15*time.Minute), r.Resolve("ingetin 15 menit lagi", "", now))
}

func TestResolve_TextHours(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(3*time.Hour), r.Resolve("in 3 hours", "", now))
	assert.Equal(t, now.Add(2*time.Hour), r.Resolve("2 jam lagi meeting", "", now))
}

func TestResolve_Tomorrow(t *testing.T) {
	r := newTestResolver(t)
	// 2025-05-10 20:00 WIB.
	now := time.Date(2025, 5, 10, 13, 0, 0, 0, time.UTC)

	got := r.Resolve("besok olahraga", "", now)

	// Next day 09:00 WIB == 02:00 UTC.
	assert.Equal(t, time.Date(2025, 5, 11, 2, 0, 0, 0, time.UTC), got)
}

func TestResolve_HardDefault(t *testing.T) {
	r := newTestResolver(t)
	now := time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(DefaultOffset), r.Resolve("", "", now))
	assert.Equal(t, now.Add(DefaultOffset), r.Resolve("buy some milk", "", now))
}

func TestResolve_AlwaysFuture(t *testing.T) {
	r := newTestResolver(t)
	now := time.Now()

	inputs := []struct{ raw, hint string }{
		{"", ""},
		{"5 minutes", ""},
		{"besok", ""},
		{"nonsense text", "garbage hint"},
		{"", "1999-01-01 00:00:00"},
	}

	for _, in := range inputs {
		got := r.Resolve(in.raw, in.hint, now)
		assert.True(t, got.After(now), "raw=%q hint=%q", in.raw, in.hint)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestParseAbsolute(t *testing.T) {
	r := newTestResolver(t)

	got, ok := r.ParseAbsolute("2025-09-15 10:00:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 3, 0, 0, 0, time.UTC), got)

	got, ok = r.ParseAbsolute("2025-09-15T10:00:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC), got)

	_, ok = r.ParseAbsolute("next friday")
	assert.False(t, ok)

	_, ok = r.ParseAbsolute("")
	assert.False(t, ok)
}
