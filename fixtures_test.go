package haikus

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mapCounter serves syllable counts from a fixed table, falling back to
// the heuristic, so fixtures only list the counts they pin.
type mapCounter map[string]int

func (m mapCounter) Count(word string) int {
	if n, ok := m[strings.ToLower(word)]; ok {
		return n
	}
	return EstimateSyllables(word)
}

// oneSentence treats the whole input as a single sentence.
type oneSentence struct{}

func (oneSentence) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []string{text}
}

// lineSentences treats each input line as its own sentence, giving
// fixtures exact control over boundaries.
type lineSentences struct{}

func (lineSentences) Split(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// stream builds a single-sentence word stream with the given syllable
// counts and synthetic surfaces w0, w1, ...
func stream(counts ...int) []Word {
	words := make([]Word, len(counts))
	for i, c := range counts {
		words[i] = Word{Surface: fmt.Sprintf("w%d", i), Syllables: c}
	}
	return words
}

// lincolnCounts pins the dictionary counts the Lincoln fixture relies
// on, so scanner tests hold even if the embedded table changes.
var lincolnCounts = mapCounter{
	"abraham": 3, "lincoln": 2, "was": 1, "a": 1, "president": 3,
	"one": 1, "time": 1, "he": 1, "freed": 1, "many": 2, "slaves": 1,
}

var lincolnText = "abraham lincoln was a president one time he freed many slaves"

var lincolnLines = [3]string{
	"abraham lincoln",
	"was a president one time",
	"he freed many slaves",
}

// frogCounts backs the Basho fixture the same way.
var frogCounts = mapCounter{
	"an": 1, "old": 1, "silent": 2, "pond": 1, "a": 1, "frog": 1,
	"jumps": 1, "into": 2, "the": 1, "splash": 1, "silence": 2, "again": 2,
}

var frogText = "an old silent pond a frog jumps into the pond splash silence again"

var frogLines = [3]string{
	"an old silent pond",
	"a frog jumps into the pond",
	"splash silence again",
}

// scanOne tokenizes text as a single sentence with the given counter and
// requires exactly one haiku.
func scanOne(t *testing.T, text string, counter SyllableCounter) *Haiku {
	t.Helper()
	words := NewTokenizer(oneSentence{}, counter).Tokenize(text)
	found := Scan(words)
	require.Len(t, found, 1)
	return found[0]
}
