package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseOptionalDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	valid := "2026-05-15"
	got, err = ParseOptionalDate(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.May, got.Month())
	assert.Equal(t, 15, got.Day())

	bad := "15/05/2026"
	_, err = ParseOptionalDate(&bad)
	assert.Error(t, err)
}
