package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateWeeks(t *testing.T) {
	weeks := GenerateWeeks(epoch)

	require.Len(t, weeks, WeekCount)
	assert.Equal(t, "Week 1", weeks[0].WeekLabel)
	assert.Equal(t, "1 Oct - 7 Oct", weeks[0].DateRange)
	assert.Equal(t, "8 Oct - 14 Oct", weeks[1].DateRange)

	// Default seed curves each allocate exactly 100%.
	var spend, lead float64
	for _, w := range weeks {
		spend += w.SpendDistribution
		lead += w.LeadDistribution
	}
	assert.InDelta(t, 100, spend, 1e-9)
	assert.InDelta(t, 100, lead, 1e-9)

	// Derived fields start zeroed.
	assert.Zero(t, weeks[5].Leads)
	assert.Zero(t, weeks[5].SpendsBase)
}

func TestWeekIndexForDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"before start", epoch.AddDate(0, 0, -1), -1},
		{"start day", epoch, 0},
		{"end of first week", epoch.AddDate(0, 0, 6), 0},
		{"start of second week", epoch.AddDate(0, 0, 7), 1},
		{"mid campaign", epoch.AddDate(0, 0, 40), 5},
		{"final week", epoch.AddDate(0, 0, 12*7), 12},
		{"past campaign end clamps", epoch.AddDate(0, 6, 0), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekIndexForDate(epoch, tt.date))
		})
	}
}
