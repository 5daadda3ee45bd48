package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsToSaoPaulo(t *testing.T) {
	loc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())

	_, err = Load("Mars/Olympus")
	assert.Error(t, err)
}

func TestClockTodayUsesLocation(t *testing.T) {
	loc, err := Load("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC on the 11th is still the 10th in São Paulo (UTC-3).
	utc := time.Date(2024, 5, 11, 1, 30, 0, 0, time.UTC)
	c := Clock{loc: loc, now: func() time.Time { return utc }}
	assert.Equal(t, "2024-05-10", c.Today())

	assert.Equal(t, "2024-05-11", FixedClock(utc).Today())
}

func TestZeroClock(t *testing.T) {
	var c Clock
	assert.Equal(t, time.UTC, c.Now().Location())
}
