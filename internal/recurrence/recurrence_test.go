package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

func intPtr(v int) *int                            { return &v }
func unitPtr(u model.RepeatUnit) *model.RepeatUnit { return &u }

func TestNext_Daily(t *testing.T) {
	prev := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	next, err := Next(prev, model.RepeatDaily, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, prev.Add(24*time.Hour), next)
}

func TestNext_Weekly(t *testing.T) {
	prev := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	next, err := Next(prev, model.RepeatWeekly, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, prev.Add(7*24*time.Hour), next)
}

func TestNext_Monthly(t *testing.T) {
	prev := time.Date(2025, 4, 15, 8, 30, 0, 0, time.UTC)

	next, err := Next(prev, model.RepeatMonthly, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 15, 8, 30, 0, 0, time.UTC), next)
}

func TestNext_MonthlyClampsToLastDay(t *testing.T) {
	cases := []struct {
		name string
		prev time.Time
		want time.Time
	}{
		{
			name: "jan 31 to feb 28",
			prev: time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "jan 31 to feb 29 leap year",
			prev: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "mar 31 to apr 30",
			prev: time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 4, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "dec 31 to jan 31 across year",
			prev: time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Next(tc.prev, model.RepeatMonthly, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, next)
		})
	}
}

func TestNext_Custom(t *testing.T) {
	prev := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	next, err := Next(prev, model.RepeatCustom, intPtr(45), unitPtr(model.UnitMinutes))
	require.NoError(t, err)
	assert.Equal(t, prev.Add(45*time.Minute), next)

	next, err = Next(prev, model.RepeatCustom, intPtr(3), unitPtr(model.UnitHours))
	require.NoError(t, err)
	assert.Equal(t, prev.Add(3*time.Hour), next)

	next, err = Next(prev, model.RepeatCustom, intPtr(2), unitPtr(model.UnitDays))
	require.NoError(t, err)
	assert.Equal(t, prev.Add(48*time.Hour), next)
}

func TestNext_AlwaysAfterPrev(t *testing.T) {
	prev := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	specs := []struct {
		repeat   model.Repeat
		interval *int
		unit     *model.RepeatUnit
	}{
		{model.RepeatDaily, nil, nil},
		{model.RepeatWeekly, nil, nil},
		{model.RepeatMonthly, nil, nil},
		{model.RepeatCustom, intPtr(1), unitPtr(model.UnitMinutes)},
	}

	for _, s := range specs {
		next, err := Next(prev, s.repeat, s.interval, s.unit)
		require.NoError(t, err)
		assert.True(t, next.After(prev), "repeat %s must advance", s.repeat)
	}
}

func TestNext_RejectsNone(t *testing.T) {
	_, err := Next(time.Now(), model.RepeatNone, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRepeat)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(model.RepeatNone, nil, nil))
	assert.NoError(t, Validate(model.RepeatDaily, nil, nil))
	assert.NoError(t, Validate(model.RepeatCustom, intPtr(5), unitPtr(model.UnitHours)))

	assert.ErrorIs(t, Validate(model.RepeatCustom, nil, unitPtr(model.UnitHours)), ErrInvalidInterval)
	assert.ErrorIs(t, Validate(model.RepeatCustom, intPtr(0), unitPtr(model.UnitHours)), ErrInvalidInterval)
	assert.ErrorIs(t, Validate(model.RepeatCustom, intPtr(5), nil), ErrInvalidUnit)
	assert.ErrorIs(t, Validate(model.RepeatCustom, intPtr(5), unitPtr(model.RepeatUnit("weeks"))), ErrInvalidUnit)
	assert.ErrorIs(t, Validate(model.RepeatDaily, intPtr(5), nil), ErrUnexpectedSpec)
	assert.ErrorIs(t, Validate(model.Repeat("yearly"), nil, nil), ErrInvalidRepeat)
}
