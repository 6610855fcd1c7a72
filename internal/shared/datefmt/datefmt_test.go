package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFormats(t *testing.T) {
	ts := time.Date(2024, 6, 15, 13, 45, 9, 0, time.UTC)

	assert.Equal(t, "2024-06-15", Date(ts))
	assert.Equal(t, "2024-06-15", DatePtr(&ts))
	assert.Equal(t, "", DatePtr(nil))

	assert.Equal(t, "2024-06-15 13:45:09", DateTime(ts))
	require.NotNil(t, DateTimePtr(&ts))
	assert.Equal(t, "2024-06-15 13:45:09", *DateTimePtr(&ts))
	assert.Nil(t, DateTimePtr(nil))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))

	_, err = ParseDate("15/06/2024")
	assert.Error(t, err)
}
