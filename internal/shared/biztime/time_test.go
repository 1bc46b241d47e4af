package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDaysBetweenUTC(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same instant",
			from: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same day different hours",
			from: time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "two minutes across midnight counts one day",
			from: time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "two hundred days",
			from: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, 200),
			want: 200,
		},
		{
			name: "from after to clamps to zero",
			from: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "non-UTC inputs are normalized",
			from: time.Date(2025, 3, 10, 22, 0, 0, 0, time.FixedZone("UTC+4", 4*3600)),
			to:   time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalendarDaysBetweenUTC(tt.from, tt.to))
		})
	}
}

func TestMillisRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, now, FromMillis(ToMillis(now)))
}
