package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldDiff_String(t *testing.T) {
	var diff FieldDiff
	title := "Park View"
	phone := "+994501234567"

	diff.String("title", &title, "Park View Residence")
	diff.String("phone", &phone, "+994501234567") // unchanged
	diff.String("email", new(string), "")         // blank, skipped
	diff.String("web", new(string), "   ")        // whitespace only, skipped

	assert.Equal(t, "Park View Residence", title)
	assert.Equal(t, []string{"title"}, diff.Changed())
	assert.False(t, diff.Empty())
}

func TestFieldDiff_Date(t *testing.T) {
	stored := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Same date is no change", func(t *testing.T) {
		var diff FieldDiff
		dst := &stored
		same := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		diff.Date("newsTime", &dst, &same)

		assert.True(t, diff.Empty())
	})

	t.Run("Different date is recorded", func(t *testing.T) {
		var diff FieldDiff
		dst := &stored
		next := stored.AddDate(0, 0, 7)

		diff.Date("newsTime", &dst, &next)

		assert.Equal(t, []string{"newsTime"}, diff.Changed())
		assert.True(t, dst.Equal(next))
	})

	t.Run("Nil means not provided", func(t *testing.T) {
		var diff FieldDiff
		dst := &stored

		diff.Date("newsTime", &dst, nil)

		assert.True(t, diff.Empty())
		assert.True(t, dst.Equal(stored))
	})

	t.Run("Fills a previously empty field", func(t *testing.T) {
		var diff FieldDiff
		var dst *time.Time
		first := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		diff.Date("openYear", &dst, &first)

		assert.Equal(t, []string{"openYear"}, diff.Changed())
		assert.NotNil(t, dst)
	})
}

func TestFieldDiff_Empty(t *testing.T) {
	var diff FieldDiff
	assert.True(t, diff.Empty())
	assert.Empty(t, diff.Changed())
}
