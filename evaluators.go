package haikus

import (
	"math"
	"strings"

	"github.com/corey/haikus/internal/postag"
)

// DefaultEvaluators returns the standard weighted evaluator set: line
// endings on content words, line endings off joining words, a noun-like
// closing word, and a preposition penalty, all weighted equally. The
// slice is fresh on every call, so callers may reweight or extend it
// without affecting anyone else.
func DefaultEvaluators() []WeightedEvaluator {
	return []WeightedEvaluator{
		{LineEndingEvaluator{}, 1},
		{JoiningWordEvaluator{}, 1},
		{EndsInNounEvaluator{}, 1},
		{PrepositionCountEvaluator{}, 1},
	}
}

// LineEndingEvaluator scores the fraction of lines whose final word is a
// noun, verb or adjective. Lines that close on a content word read as
// complete images.
type LineEndingEvaluator struct{}

// Name identifies the evaluator in breakdowns and configuration.
func (LineEndingEvaluator) Name() string { return "line_ending" }

func (LineEndingEvaluator) Evaluate(h *Haiku) float64 {
	hits := 0
	for _, line := range h.lines {
		if postag.Lookup(lastSurface(line)).Content() {
			hits++
		}
	}
	return float64(hits) / 3
}

// JoiningWordEvaluator scores the fraction of lines that do NOT end on a
// joining word (preposition, determiner, conjunction, possessive
// pronoun, wh-word, "to"). A line break after "the" or "of" leaves the
// phrase dangling over the break.
type JoiningWordEvaluator struct{}

func (JoiningWordEvaluator) Name() string { return "joining_word" }

func (JoiningWordEvaluator) Evaluate(h *Haiku) float64 {
	hits := 0
	for _, line := range h.lines {
		if !postag.Lookup(lastSurface(line)).Joining() {
			hits++
		}
	}
	return float64(hits) / 3
}

// EndsInNounEvaluator scores 1 when the haiku's very last word is
// noun-like, 0 otherwise. Classical haiku tend to close on an image.
type EndsInNounEvaluator struct{}

func (EndsInNounEvaluator) Name() string { return "ends_in_noun" }

func (EndsInNounEvaluator) Evaluate(h *Haiku) float64 {
	if postag.Lookup(lastSurface(h.lines[2])).NounLike() {
		return 1
	}
	return 0
}

// PrepositionCountEvaluator penalizes prepositions exponentially:
// max(0, 100-e^n)/100 for n prepositions across the haiku. One
// preposition costs little; five or more zero the score.
type PrepositionCountEvaluator struct{}

func (PrepositionCountEvaluator) Name() string { return "preposition_count" }

func (PrepositionCountEvaluator) Evaluate(h *Haiku) float64 {
	n := 0
	for _, w := range h.Words() {
		if postag.Lookup(w.Surface) == postag.Preposition {
			n++
		}
	}
	score := (100 - math.Exp(float64(n))) / 100
	if score < 0 {
		return 0
	}
	return score
}

// LexicalDiversityEvaluator scores the ratio of distinct words to total
// words, case-insensitive. Repetition can be deliberate in a haiku, but
// more often it is just the source text stuttering.
type LexicalDiversityEvaluator struct{}

func (LexicalDiversityEvaluator) Name() string { return "lexical_diversity" }

func (LexicalDiversityEvaluator) Evaluate(h *Haiku) float64 {
	words := h.Words()
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(w.Surface)] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}

// VocabularyEvaluator scores the fraction of lines containing at least
// one word from a target list. Construct with NewVocabularyEvaluator or
// NewSeasonWordEvaluator.
type VocabularyEvaluator struct {
	label string
	words map[string]struct{}
}

// NewVocabularyEvaluator targets an arbitrary word list,
// case-insensitive.
func NewVocabularyEvaluator(words ...string) VocabularyEvaluator {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return VocabularyEvaluator{label: "vocabulary", words: set}
}

// NewSeasonWordEvaluator targets the built-in season word list, after
// the kigo of classical haiku.
func NewSeasonWordEvaluator() VocabularyEvaluator {
	ev := NewVocabularyEvaluator(seasonWords...)
	ev.label = "season_word"
	return ev
}

func (v VocabularyEvaluator) Name() string { return v.label }

func (v VocabularyEvaluator) Evaluate(h *Haiku) float64 {
	matched := 0
	for _, line := range h.lines {
		for _, w := range line {
			if _, ok := v.words[strings.ToLower(w.Surface)]; ok {
				matched++
				break
			}
		}
	}
	return float64(matched) / 3
}

// seasonWords is a compact kigo list: words that anchor a haiku to a
// season in the English haiku tradition.
var seasonWords = []string{
	"spring", "summer", "autumn", "winter",
	"snow", "snowflake", "frost", "ice", "icicle", "chill",
	"blossom", "cherry", "plum", "petal", "bloom",
	"leaf", "leaves", "maple", "harvest", "moon",
	"rain", "mist", "fog", "dew", "breeze", "thunder",
	"firefly", "cricket", "butterfly", "dragonfly",
	"sparrow", "crow", "crane", "heron", "goose", "frog",
	"twilight", "solstice",
}
