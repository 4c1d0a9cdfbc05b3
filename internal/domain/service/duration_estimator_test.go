package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationRange(t *testing.T) {
	t.Run("デフォルト倍率", func(t *testing.T) {
		r := DurationRange(1800, 2.0)
		assert.Equal(t, 1800.0, r.LowSeconds)
		assert.Equal(t, 3600.0, r.HighSeconds)
	})

	t.Run("Low <= High が常に成り立つ", func(t *testing.T) {
		durations := []float64{0, 1, 60, 1800, 86400}
		multipliers := []float64{1, 1.5, 2, 3.7}
		for _, d := range durations {
			for _, m := range multipliers {
				r := DurationRange(d, m)
				assert.LessOrEqual(t, r.LowSeconds, r.HighSeconds, "d=%f m=%f", d, m)
			}
		}
	})

	t.Run("1未満の倍率は1に切り上げ", func(t *testing.T) {
		r := DurationRange(1000, 0.5)
		assert.Equal(t, 1000.0, r.LowSeconds)
		assert.Equal(t, 1000.0, r.HighSeconds)
	})
}
