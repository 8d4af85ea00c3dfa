package haikus

import (
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// Word is one token of a scanned stream: the surface form left after
// punctuation stripping, its syllable count, and the ordinal of the
// sentence it came from. Streams are built once and never reordered.
type Word struct {
	Surface   string
	Syllables int
	Sentence  int
}

// SentenceSplitter segments text into sentences in reading order.
type SentenceSplitter interface {
	Split(text string) []string
}

// punktSplitter wraps the Punkt English model, mirroring NLTK's
// sent_tokenize. The scanner's sentence-boundary rule leans on its
// abbreviation handling: "Mr. Frost wrote." is one sentence, not two.
type punktSplitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

var (
	punktOnce sync.Once
	punkt     *punktSplitter
)

// defaultSplitter returns the shared Punkt splitter, loading the English
// training data on first use.
func defaultSplitter() *punktSplitter {
	punktOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			panic("haikus: load english punkt data: " + err.Error())
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			panic("haikus: parse english punkt data: " + err.Error())
		}
		punkt = &punktSplitter{tok: sentences.NewSentenceTokenizer(training)}
	})
	return punkt
}

func (p *punktSplitter) Split(text string) []string {
	raw := p.tok.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Tokenizer turns raw text into the flat word stream the scanner
// consumes: sentences first, then whitespace-delimited words. Each word
// is stripped of punctuation except apostrophes, keeps its casing, and
// carries its syllable count and sentence ordinal. Tokens left empty by
// stripping, and tokens with no countable syllables, are dropped.
type Tokenizer struct {
	splitter SentenceSplitter
	counter  SyllableCounter
}

// NewTokenizer pairs a sentence splitter with a syllable counter.
func NewTokenizer(splitter SentenceSplitter, counter SyllableCounter) *Tokenizer {
	return &Tokenizer{splitter: splitter, counter: counter}
}

// Tokenize produces the word stream for text.
func (t *Tokenizer) Tokenize(text string) []Word {
	var words []Word
	for ord, sentence := range t.splitter.Split(text) {
		for _, field := range strings.Fields(sentence) {
			surface := stripToken(field)
			if surface == "" {
				continue
			}
			n := t.counter.Count(surface)
			if n == 0 {
				continue
			}
			words = append(words, Word{Surface: surface, Syllables: n, Sentence: ord})
		}
	}
	return words
}

// stripToken removes punctuation from a raw token, keeping letters and
// apostrophes. Typographic apostrophes fold to ASCII so surface forms
// match dictionary keys.
func stripToken(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			b.WriteByte('\'')
		}
	}
	return b.String()
}
