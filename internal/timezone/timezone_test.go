package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("19/10/2026", time.UTC)
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 10, 16, 17, 45, 12, 9, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestLocationFallback(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.NotNil(t, Location("Mars/Olympus"))
}
