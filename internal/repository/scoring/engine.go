package scoring

import (
	"math"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

// MaxRawScore is the combined signal output that maps to 100. It is an
// expected upper bound, not a hard one; larger raw scores clamp to 100.
const MaxRawScore = 6.0

// MaxScore is the top of the normalized scale
const MaxScore = 100.0

// Breakdown shows how each signal contributed to the final score
type Breakdown struct {
	Contributions map[string]float64 // weight × signal output, per signal name
	Raw           float64
	Final         float64
}

// Engine scores inputs against an ordered list of signals. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	signals []Signal
}

// NewEngine creates an engine over signals, or over DefaultSignals when
// none are given
func NewEngine(signals ...Signal) *Engine {
	if len(signals) == 0 {
		signals = DefaultSignals()
	}
	s := make([]Signal, len(signals))
	copy(s, signals)
	return &Engine{signals: s}
}

// NewDefaultEngine creates an engine over DefaultSignals
func NewDefaultEngine() *Engine {
	return NewEngine()
}

// Signals returns a copy of the registered signals
func (e *Engine) Signals() []Signal {
	s := make([]Signal, len(e.signals))
	copy(s, e.signals)
	return s
}

// Score returns the normalized score of input in [0, 100], rounded to two
// decimals. The same input and now always give the same score.
func (e *Engine) Score(input types.ScoreInput, now time.Time) float64 {
	raw := 0.0
	for _, s := range e.signals {
		raw += s.Weight * s.Score(input, now)
	}
	return normalize(raw)
}

// Explain scores input and reports every signal's weighted contribution
func (e *Engine) Explain(input types.ScoreInput, now time.Time) Breakdown {
	b := Breakdown{Contributions: make(map[string]float64, len(e.signals))}
	for _, s := range e.signals {
		c := s.Weight * s.Score(input, now)
		b.Contributions[s.Name] = round2(c)
		b.Raw += c
	}
	b.Final = normalize(b.Raw)
	return b
}

func normalize(raw float64) float64 {
	return round2(math.Min(MaxScore, raw/MaxRawScore*MaxScore))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
