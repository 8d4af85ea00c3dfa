package haikus

import "errors"

// ErrInvalidConfiguration reports an evaluator list whose weights sum to
// zero, the empty list included. The weighted mean is undefined there
// and the caller must be told rather than handed a NaN or a silent zero.
var ErrInvalidConfiguration = errors.New("haikus: evaluator weights sum to zero")

// Evaluator scores one aesthetic dimension of a haiku. Implementations
// must be pure functions of the haiku's content: no mutation, no state
// shared across evaluators, results in [0, 1].
type Evaluator interface {
	Evaluate(h *Haiku) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(h *Haiku) float64

// Evaluate calls f(h).
func (f EvaluatorFunc) Evaluate(h *Haiku) float64 { return f(h) }

// WeightedEvaluator pairs an evaluator with its non-negative weight in
// the aggregate score.
type WeightedEvaluator struct {
	Evaluator Evaluator
	Weight    float64
}

// CalculateQuality returns the weighted mean of the evaluator scores,
// Σ(score·weight) / Σ(weight), or ErrInvalidConfiguration when the
// weights sum to zero.
func CalculateQuality(h *Haiku, evaluators []WeightedEvaluator) (float64, error) {
	var sum, weight float64
	for _, we := range evaluators {
		sum += we.Evaluator.Evaluate(h) * we.Weight
		weight += we.Weight
	}
	if weight == 0 {
		return 0, ErrInvalidConfiguration
	}
	return sum / weight, nil
}
