package scoring

import (
	"math"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

// Signal is one weighted, independent quality measure
type Signal struct {
	Name   string
	Weight float64
	Score  func(input types.ScoreInput, now time.Time) float64
}

// Default weights. Active weights must sum to 1.
const (
	WeightStars   = 0.55
	WeightForks   = 0.25
	WeightRecency = 0.20
)

// recencyWindowDays is the soft half-life of the recency decay
const recencyWindowDays = 30.0

// StarsSignal rewards popularity with logarithmic damping
var StarsSignal = Signal{
	Name:   "stars",
	Weight: WeightStars,
	Score: func(input types.ScoreInput, _ time.Time) float64 {
		return math.Log10(1 + math.Max(0, float64(input.Stars)))
	},
}

// ForksSignal rewards reuse; weighted below stars
var ForksSignal = Signal{
	Name:   "forks",
	Weight: WeightForks,
	Score: func(input types.ScoreInput, _ time.Time) float64 {
		return math.Log10(1 + math.Max(0, float64(input.Forks)))
	},
}

// RecencySignal is 1.0 for an update at now and decays towards 0.
// Timestamps after now count as now.
var RecencySignal = Signal{
	Name:   "recency",
	Weight: WeightRecency,
	Score: func(input types.ScoreInput, now time.Time) float64 {
		days := now.Sub(input.UpdatedAt).Hours() / 24
		if days < 0 {
			days = 0
		}
		return 1 / (1 + days/recencyWindowDays)
	},
}

// DefaultSignals returns the registered signals in evaluation order
func DefaultSignals() []Signal {
	return []Signal{StarsSignal, ForksSignal, RecencySignal}
}

// TotalWeight sums the weights of signals
func TotalWeight(signals []Signal) float64 {
	total := 0.0
	for _, s := range signals {
		total += s.Weight
	}
	return total
}
