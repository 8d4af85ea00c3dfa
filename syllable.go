package haikus

import (
	"strings"
	"sync"
	"unicode"

	"github.com/corey/haikus/cmudict"
)

// SyllableCounter reports the number of syllables in a single word.
// Implementations must be deterministic and safe for concurrent use.
type SyllableCounter interface {
	Count(word string) int
}

// Oracle counts syllables by dictionary lookup, falling back to
// EstimateSyllables for words the dictionary does not know. The fallback
// never fails, so Count is total over all input.
type Oracle struct {
	dict map[string]int
}

// NewOracle returns an Oracle backed by the given word -> count table.
// Keys must be lowercase. The map is used as-is and must not be mutated
// after the call.
func NewOracle(dict map[string]int) *Oracle {
	return &Oracle{dict: dict}
}

var (
	defaultOracleOnce sync.Once
	defaultOracle     *Oracle
)

// DefaultOracle returns the shared Oracle backed by the embedded
// pronunciation dictionary, loading it on first use.
func DefaultOracle() *Oracle {
	defaultOracleOnce.Do(func() {
		dict, err := cmudict.Load()
		if err != nil {
			// The table is compiled in; failing to parse it is a build defect.
			panic("haikus: embedded dictionary: " + err.Error())
		}
		defaultOracle = NewOracle(dict)
	})
	return defaultOracle
}

// Count returns the syllable count for word. Dictionary entries win;
// unknown words fall back to the heuristic. A token with no letters
// counts zero.
func (o *Oracle) Count(word string) int {
	w := normalizeWord(word)
	if n, ok := o.dict[w]; ok {
		return n
	}
	return EstimateSyllables(w)
}

// InDictionary reports whether word would resolve through the dictionary
// rather than the heuristic.
func (o *Oracle) InDictionary(word string) bool {
	_, ok := o.dict[normalizeWord(word)]
	return ok
}

// EstimateSyllables approximates the syllable count of a word without
// consulting a dictionary. It counts maximal runs of vowel letters
// (a e i o u y) in the lowercased word, subtracting one for a silent
// trailing "e" when the "e" follows a consonant and the word has more
// than one vowel group. Any word containing at least one letter counts
// at least one syllable; anything else counts zero.
func EstimateSyllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteByte(byte(r))
		}
	}
	w := b.String()
	if w == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if groups > 1 && w[len(w)-1] == 'e' && !isVowel(w[len(w)-2]) {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// normalizeWord lowercases w and strips everything except letters and
// apostrophes, folding typographic apostrophes to ASCII. The result is
// the dictionary lookup key.
func normalizeWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			b.WriteByte('\'')
		}
	}
	return b.String()
}
