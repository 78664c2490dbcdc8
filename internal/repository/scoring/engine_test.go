package scoring

import (
	"testing"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

func input(stars, forks int, updatedAt time.Time) types.ScoreInput {
	return types.ScoreInput{Stars: stars, Forks: forks, UpdatedAt: updatedAt}
}

func TestEngine_MonotonicInStars(t *testing.T) {
	e := NewDefaultEngine()

	prev := e.Score(input(0, 0, now), now)
	for _, stars := range []int{10, 100, 1000, 10000, 100000} {
		score := e.Score(input(stars, 0, now), now)
		assert.Greater(t, score, prev, "stars=%d", stars)
		prev = score
	}
}

func TestEngine_DecaysWithAge(t *testing.T) {
	e := NewDefaultEngine()

	recent := e.Score(input(100, 10, now), now)
	lastMonth := e.Score(input(100, 10, now.AddDate(0, -1, 0)), now)
	old := e.Score(input(100, 10, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), now)

	assert.Greater(t, recent, lastMonth)
	assert.Greater(t, lastMonth, old)
}

func TestEngine_Bounds(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name  string
		input types.ScoreInput
	}{
		{name: "zero", input: input(0, 0, now.AddDate(-30, 0, 0))},
		{name: "typical", input: input(120, 15, now.AddDate(0, 0, -3))},
		{name: "extreme", input: input(1_000_000, 500_000, now)},
		{name: "negative counts", input: input(-5, -1, now)},
		{name: "zero time", input: input(10, 1, time.Time{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := e.Score(tt.input, now)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestEngine_ClampsAtMax(t *testing.T) {
	e := NewDefaultEngine()
	assert.Equal(t, 100.0, e.Score(input(1_000_000_000, 1_000_000_000, now), now))
}

func TestEngine_KnownValue(t *testing.T) {
	e := NewDefaultEngine()

	// stars: 0.55*log10(100) = 1.1, forks: 0.25*log10(10) = 0.25, recency: 0.2
	// raw 1.55 / 6 * 100 = 25.833...
	score := e.Score(input(99, 9, now), now)
	assert.Equal(t, 25.83, score)
}

func TestEngine_Deterministic(t *testing.T) {
	e := NewDefaultEngine()
	in := input(4321, 87, now.Add(-90*time.Hour))

	first := e.Score(in, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Score(in, now))
	}
}

func TestEngine_Explain(t *testing.T) {
	e := NewDefaultEngine()
	in := input(99, 9, now)

	b := e.Explain(in, now)
	assert.Equal(t, e.Score(in, now), b.Final)
	assert.InDelta(t, 1.55, b.Raw, 1e-9)
	require.Len(t, b.Contributions, 3)
	assert.Equal(t, 1.1, b.Contributions["stars"])
	assert.Equal(t, 0.25, b.Contributions["forks"])
	assert.Equal(t, 0.2, b.Contributions["recency"])
}

func TestEngine_CustomSignals(t *testing.T) {
	constant := Signal{
		Name:   "constant",
		Weight: 1,
		Score: func(types.ScoreInput, time.Time) float64 {
			return 3
		},
	}

	e := NewEngine(constant)
	assert.Equal(t, 50.0, e.Score(input(0, 0, now), now))
	require.Len(t, e.Signals(), 1)
	assert.Equal(t, "constant", e.Signals()[0].Name)
}

func TestNewEngine_CopiesSignals(t *testing.T) {
	signals := DefaultSignals()
	e := NewEngine(signals...)

	signals[0].Weight = 0
	assert.Equal(t, WeightStars, e.Signals()[0].Weight)
}
