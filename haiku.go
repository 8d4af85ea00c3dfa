package haikus

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Haiku is a contiguous run of words from a scanned text whose syllable
// counts split exactly into lines of 5, 7 and 5. Instances are built by
// Scan and immutable afterwards.
type Haiku struct {
	lines [3][]Word
}

// Lines renders the three lines, each the single-space join of its
// words' surface forms. Punctuation was stripped at tokenization, so
// lines carry none; casing follows the source text.
func (h *Haiku) Lines() [3]string {
	var out [3]string
	for i, line := range h.lines {
		parts := make([]string, len(line))
		for j, w := range line {
			parts[j] = w.Surface
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}

// Words returns the haiku's words in reading order.
func (h *Haiku) Words() []Word {
	var out []Word
	for _, line := range h.lines {
		out = append(out, line...)
	}
	return out
}

// String renders the haiku on a single line for logs and listings.
func (h *Haiku) String() string {
	l := h.Lines()
	return l[0] + " / " + l[1] + " / " + l[2]
}

// Bigram is an ordered pair of adjacent lowercased words.
type Bigram [2]string

// LineEndBigrams returns the word pairs that straddle the haiku's two
// line breaks: (last of line one, first of line two) and (last of line
// two, first of line three).
func (h *Haiku) LineEndBigrams() [2]Bigram {
	return [2]Bigram{
		{lastSurface(h.lines[0]), firstSurface(h.lines[1])},
		{lastSurface(h.lines[1]), firstSurface(h.lines[2])},
	}
}

func firstSurface(line []Word) string { return strings.ToLower(line[0].Surface) }
func lastSurface(line []Word) string  { return strings.ToLower(line[len(line)-1].Surface) }

// Fingerprint returns a stable hex digest of the lowercased lines,
// suitable as a storage key. Two haikus with the same words in the same
// line split share a fingerprint regardless of source casing.
func (h *Haiku) Fingerprint() string {
	l := h.Lines()
	sum := sha1.Sum([]byte(strings.ToLower(l[0] + "\n" + l[1] + "\n" + l[2])))
	return hex.EncodeToString(sum[:])
}

// CalculateQuality scores the haiku with the given weighted evaluators.
// A nil slice means DefaultEvaluators(); an explicit empty slice is an
// invalid configuration and returns ErrInvalidConfiguration.
func (h *Haiku) CalculateQuality(evaluators []WeightedEvaluator) (float64, error) {
	if evaluators == nil {
		evaluators = DefaultEvaluators()
	}
	return CalculateQuality(h, evaluators)
}
