package render

import (
	"testing"
	"time"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayTicks(t *testing.T) {
	t.Run("one tick per week", func(t *testing.T) {
		ticks := WeekdayTicks(schema.Window{Start: day(0), End: day(28)}, time.Monday, DefaultDateFormat)
		require.Len(t, ticks, 5)
		assert.Equal(t, "1-1-2024", ticks[0].Label)
		assert.Equal(t, "1-8-2024", ticks[1].Label)
		assert.Equal(t, "1-29-2024", ticks[4].Label)
		for _, tk := range ticks {
			assert.Equal(t, time.Monday, tk.Date.Weekday())
		}
	})

	t.Run("window starting mid week", func(t *testing.T) {
		ticks := WeekdayTicks(schema.Window{Start: day(2), End: day(10)}, time.Monday, DefaultDateFormat)
		require.Len(t, ticks, 1)
		assert.Equal(t, day(7), ticks[0].Date)
	})

	t.Run("fractional start rounds up to the next day", func(t *testing.T) {
		ticks := WeekdayTicks(schema.Window{Start: day(0).Add(time.Hour), End: day(8)}, time.Monday, DefaultDateFormat)
		require.Len(t, ticks, 1)
		assert.Equal(t, day(7), ticks[0].Date)
	})

	t.Run("no occurrence", func(t *testing.T) {
		assert.Empty(t, WeekdayTicks(schema.Window{Start: day(0), End: day(3)}, time.Friday, DefaultDateFormat))
	})

	t.Run("long ranges thin labels", func(t *testing.T) {
		ticks := WeekdayTicks(schema.Window{Start: day(0), End: day(7 * 100)}, time.Monday, DefaultDateFormat)
		require.Len(t, ticks, 101)
		labelled := 0
		for _, tk := range ticks {
			if tk.Label != "" {
				labelled++
			}
		}
		assert.LessOrEqual(t, labelled, MaxDateLabels)
		assert.NotEmpty(t, ticks[0].Label)
	})
}

func TestWeekdayTicker(t *testing.T) {
	ticker := WeekdayTicker{Weekday: time.Monday, Format: DefaultDateFormat}
	ticks := ticker.Ticks(core.DayOrdinal(day(0)), core.DayOrdinal(day(14)))
	require.Len(t, ticks, 3)
	assert.Equal(t, core.DayOrdinal(day(7)), ticks[1].Value)
	assert.Equal(t, "1-8-2024", ticks[1].Label)
}

func TestIntegerTicks(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		expected []float64
	}{
		{"unit range", 5, 6, []float64{5, 6}},
		{"small range", 0, 4, []float64{0, 1, 2, 3, 4}},
		{"wide range", 0, 1000, []float64{0, 200, 400, 600, 800, 1000}},
		{"offset range", 13, 47, []float64{15, 20, 25, 30, 35, 40, 45}},
		{"fraction without integers", 5.2, 5.8, []float64{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntegerTicks(tt.lo, tt.hi)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), MaxIntegerTicks+1)
		})
	}
}

func TestIntegerTicker(t *testing.T) {
	for _, tk := range (IntegerTicker{}).Ticks(0, 37) {
		assert.Equal(t, float64(int64(tk.Value)), tk.Value)
		assert.NotEmpty(t, tk.Label)
	}
}

func TestValueRange(t *testing.T) {
	lo, hi := ValueRange([]float64{7, 7})
	assert.Equal(t, 6.0, lo)
	assert.Equal(t, 8.0, hi)

	lo, hi = ValueRange([]float64{0, 100})
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 105.0, hi)

	lo, hi = ValueRange(nil)
	assert.Less(t, lo, hi)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#2ea44f")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2e), c.R)
	assert.Equal(t, uint8(0xa4), c.G)
	assert.Equal(t, uint8(0x4f), c.B)

	c, err = ParseColor("Gold")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xd7), c.G)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.B)

	for _, bad := range []string{"", "#12345", "#gggggg", "mauve"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}

	for _, spec := range schema.DefaultChartSpecs() {
		for _, mode := range []schema.DisplayMode{schema.LightMode, schema.DarkMode} {
			_, err := seriesColor(spec, mode)
			assert.NoError(t, err, spec.Name)
		}
	}
}
