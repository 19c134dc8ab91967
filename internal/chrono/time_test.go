package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualTime(t *testing.T) {
	start := time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualTime(start)
	require.Equal(t, start, clock.Now())

	clock.Advance(time.Minute)
	require.Equal(t, start.Add(time.Minute), clock.Now())
}

func TestStandardTime(t *testing.T) {
	before := time.Now()
	now := NewStandardTime().Now()
	require.False(t, now.Before(before))
}
