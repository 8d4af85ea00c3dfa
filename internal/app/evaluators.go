package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/haikus"
	"github.com/corey/haikus/internal/config"
)

// evaluatorFactories maps configuration names to evaluator constructors.
var evaluatorFactories = map[string]func() haikus.Evaluator{
	"line_ending":       func() haikus.Evaluator { return haikus.LineEndingEvaluator{} },
	"joining_word":      func() haikus.Evaluator { return haikus.JoiningWordEvaluator{} },
	"ends_in_noun":      func() haikus.Evaluator { return haikus.EndsInNounEvaluator{} },
	"preposition_count": func() haikus.Evaluator { return haikus.PrepositionCountEvaluator{} },
	"lexical_diversity": func() haikus.Evaluator { return haikus.LexicalDiversityEvaluator{} },
	"season_word":       func() haikus.Evaluator { return haikus.NewSeasonWordEvaluator() },
}

// EvaluatorNames returns every configurable evaluator name, sorted.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluatorFactories))
	for name := range evaluatorFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvaluatorName returns an evaluator's name, or "custom" for one built
// outside the registry.
func EvaluatorName(ev haikus.Evaluator) string {
	if n, ok := ev.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}

// BuildEvaluators turns configuration entries into weighted evaluators.
// An empty list yields the default set.
func BuildEvaluators(entries []config.EvaluatorWeight) ([]haikus.WeightedEvaluator, error) {
	if len(entries) == 0 {
		return haikus.DefaultEvaluators(), nil
	}
	out := make([]haikus.WeightedEvaluator, 0, len(entries))
	for _, e := range entries {
		factory, ok := evaluatorFactories[e.Name]
		if !ok {
			return nil, fmt.Errorf("unknown evaluator %q (known: %s)", e.Name, strings.Join(EvaluatorNames(), ", "))
		}
		out = append(out, haikus.WeightedEvaluator{Evaluator: factory(), Weight: e.Weight})
	}
	return out, nil
}
