// Package haikus finds and scores haikus hiding in ordinary prose.
//
// A HaikuText scans its input for contiguous word runs whose syllable
// counts split exactly into three lines of 5, 7 and 5. A haiku never
// crosses a sentence boundary, and overlapping haikus are all reported.
// Syllable counts come from an embedded pronunciation dictionary with a
// deterministic vowel-group heuristic for unknown words. Each discovered
// Haiku can be scored by a weighted set of evaluators judging how well
// the accidental poem reads.
//
//	text := haikus.NewText("An old silent pond a frog jumps into the pond splash silence again")
//	for _, h := range text.Haikus() {
//		quality, err := h.CalculateQuality(nil)
//		...
//	}
package haikus

import "sync"

// Option configures a HaikuText.
type Option func(*HaikuText)

// WithSyllableCounter replaces the embedded-dictionary oracle.
func WithSyllableCounter(c SyllableCounter) Option {
	return func(t *HaikuText) { t.counter = c }
}

// WithSentenceSplitter replaces the Punkt English sentence splitter.
func WithSentenceSplitter(s SentenceSplitter) Option {
	return func(t *HaikuText) { t.splitter = s }
}

// HaikuText owns one input text and the haikus found in it. The scan
// runs once, on first use, and its result is cached, so repeated calls
// see identical results. Safe for concurrent readers; options must not
// change after construction.
type HaikuText struct {
	text     string
	counter  SyllableCounter
	splitter SentenceSplitter

	once   sync.Once
	words  []Word
	haikus []*Haiku
}

// NewText wraps text for scanning. Tokenization is deferred until the
// first call that needs it.
func NewText(text string, opts ...Option) *HaikuText {
	t := &HaikuText{text: text}
	for _, opt := range opts {
		opt(t)
	}
	if t.counter == nil {
		t.counter = DefaultOracle()
	}
	if t.splitter == nil {
		t.splitter = defaultSplitter()
	}
	return t
}

// Text returns the original input.
func (t *HaikuText) Text() string { return t.text }

func (t *HaikuText) scan() {
	t.once.Do(func() {
		t.words = NewTokenizer(t.splitter, t.counter).Tokenize(t.text)
		t.haikus = Scan(t.words)
	})
}

// Haikus returns every haiku in the text, ordered by position. A text
// with no haikus returns an empty slice, not an error.
func (t *HaikuText) Haikus() []*Haiku {
	t.scan()
	return t.haikus
}

// HasHaiku reports whether the text contains at least one haiku.
func (t *HaikuText) HasHaiku() bool {
	return len(t.Haikus()) > 0
}

// Words returns the tokenized word stream backing the scan.
func (t *HaikuText) Words() []Word {
	t.scan()
	return t.words
}

// SyllableCount returns the total syllables across the text's words.
func (t *HaikuText) SyllableCount() int {
	n := 0
	for _, w := range t.Words() {
		n += w.Syllables
	}
	return n
}
