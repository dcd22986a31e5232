package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/splitter/internal/domain/geometry"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v, lo    int
		hi       int
		expected int
	}{
		{"inside", 50, 10, 100, 50},
		{"below", 5, 10, 100, 10},
		{"above", 150, 10, 100, 100},
		{"unbounded max", 5000, 10, 0, 5000},
		{"negative max is unbounded", 5000, 0, -1, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geometry.Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestApportion(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		weights  []int
		expected []int
	}{
		{"exact", 450, []int{350, 250, 300}, []int{175, 125, 150}},
		{"equal weights remainder to lower index", 10, []int{1, 1, 1}, []int{4, 3, 3}},
		{"zero weights mean equal shares", 7, []int{0, 0}, []int{4, 3}},
		{"largest remainder wins", 10, []int{1, 2}, []int{3, 7}},
		{"zero weight entry gets nothing", 9, []int{0, 1, 2}, []int{0, 3, 6}},
		{"non-positive total", 0, []int{1, 2}, []int{0, 0}},
		{"empty", 5, nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geometry.Apportion(tt.total, tt.weights)
			assert.Equal(t, tt.expected, got)
			if tt.total > 0 && len(tt.weights) > 0 {
				assert.Equal(t, tt.total, geometry.Sum(got))
			}
		})
	}
}

func TestApportion_ConservesAcrossManyTotals(t *testing.T) {
	weights := []int{13, 7, 29, 1, 50}
	for total := 1; total < 500; total++ {
		assert.Equal(t, total, geometry.Sum(geometry.Apportion(total, weights)), "total %d", total)
	}
}

func TestEqualShares(t *testing.T) {
	assert.Equal(t, []int{300, 300, 300}, geometry.EqualShares(900, 3))
	assert.Equal(t, []int{34, 33, 33}, geometry.EqualShares(100, 3))
	assert.Nil(t, geometry.EqualShares(100, 0))
}

func TestScaleProportional(t *testing.T) {
	assert.Equal(t, []int{175, 125, 150}, geometry.ScaleProportional([]int{350, 250, 300}, 900, 450))
	assert.Equal(t, []int{700, 500, 600}, geometry.ScaleProportional([]int{350, 250, 300}, 900, 1800))

	// No baseline: fall back to equal shares.
	assert.Equal(t, []int{50, 50}, geometry.ScaleProportional([]int{0, 0}, 0, 100))

	// Sizes not summing to the old total are scaled, not forced to the new total.
	assert.Equal(t, 200, geometry.Sum(geometry.ScaleProportional([]int{100, 100}, 100, 100)))
}

func TestReconcile(t *testing.T) {
	t.Run("already consistent", func(t *testing.T) {
		out, residual := geometry.Reconcile([]int{300, 300, 300}, nil, nil, 900)
		assert.Equal(t, []int{300, 300, 300}, out)
		assert.Zero(t, residual)
	})

	t.Run("clamped overflow moves to panes with slack", func(t *testing.T) {
		// Pane 0 must be at least 200; the 100 it gains comes from the others by slack.
		out, residual := geometry.Reconcile([]int{100, 200, 200}, []int{200, 100, 0}, nil, 500)
		assert.Equal(t, 500, geometry.Sum(out))
		assert.Zero(t, residual)
		assert.Equal(t, 200, out[0])
		assert.GreaterOrEqual(t, out[1], 100)
		// Slack 100 vs 200: the third pane gives twice as much.
		assert.Equal(t, []int{200, 167, 133}, out)
	})

	t.Run("max clamp surplus grows unbounded panes", func(t *testing.T) {
		out, residual := geometry.Reconcile([]int{400, 100, 100}, nil, []int{200, 0, 0}, 600)
		assert.Equal(t, []int{200, 200, 200}, out)
		assert.Zero(t, residual)
	})

	t.Run("all bounded grows by headroom", func(t *testing.T) {
		out, residual := geometry.Reconcile([]int{100, 100}, nil, []int{150, 300}, 300)
		assert.Equal(t, 300, geometry.Sum(out))
		assert.Zero(t, residual)
		assert.LessOrEqual(t, out[0], 150)
	})

	t.Run("minimums exceed target", func(t *testing.T) {
		out, residual := geometry.Reconcile([]int{75, 75}, []int{100, 100}, nil, 150)
		assert.Equal(t, []int{100, 100}, out)
		assert.Equal(t, -50, residual)
	})

	t.Run("maximums below target", func(t *testing.T) {
		out, residual := geometry.Reconcile([]int{100, 100}, nil, []int{100, 100}, 300)
		assert.Equal(t, []int{100, 100}, out)
		assert.Equal(t, 100, residual)
	})
}

func TestDeltaRange(t *testing.T) {
	lead := geometry.Span{Size: 300, Min: 100}
	trail := geometry.Span{Size: 300, Min: 50, Max: 400}

	// Lead could shrink by 200, but trail may only grow to 400.
	lo, hi := geometry.DeltaRange(lead, trail)
	assert.Equal(t, -100, lo)
	assert.Equal(t, 250, hi)

	assert.Equal(t, 250, geometry.ClampDelta(1000, lead, trail))
	assert.Equal(t, -100, geometry.ClampDelta(-1000, lead, trail))
	assert.Equal(t, 20, geometry.ClampDelta(20, lead, trail))

	// Trail max limits how far the divider can move toward the lead.
	lead = geometry.Span{Size: 300}
	trail = geometry.Span{Size: 300, Max: 320}
	lo, _ = geometry.DeltaRange(lead, trail)
	assert.Equal(t, -20, lo)
}

func TestDeltaRange_AlwaysContainsZero(t *testing.T) {
	// Lead is below its minimum (overflowed layout): no forced jump.
	lo, hi := geometry.DeltaRange(geometry.Span{Size: 50, Min: 100}, geometry.Span{Size: 50, Min: 100})
	assert.LessOrEqual(t, lo, 0)
	assert.GreaterOrEqual(t, hi, 0)
	assert.Zero(t, geometry.ClampDelta(30, geometry.Span{Size: 50, Min: 100}, geometry.Span{Size: 50, Min: 100}))
}
