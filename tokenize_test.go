package haikus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer_StripsPunctuationKeepsApostrophes(t *testing.T) {
	tok := NewTokenizer(oneSentence{}, DefaultOracle())
	words := tok.Tokenize("Don't stop -- it's (really) fine!")

	surfaces := make([]string, len(words))
	for i, w := range words {
		surfaces[i] = w.Surface
	}
	assert.Equal(t, []string{"Don't", "stop", "it's", "really", "fine"}, surfaces)
}

func TestTokenizer_PreservesCasing(t *testing.T) {
	tok := NewTokenizer(oneSentence{}, DefaultOracle())
	words := tok.Tokenize("Abraham Lincoln spoke.")

	require.Len(t, words, 3)
	assert.Equal(t, "Abraham", words[0].Surface)
	assert.Equal(t, "Lincoln", words[1].Surface)
}

func TestTokenizer_DropsUncountableTokens(t *testing.T) {
	tok := NewTokenizer(oneSentence{}, DefaultOracle())
	words := tok.Tokenize("--- 123 '' stones 7")

	require.Len(t, words, 1)
	assert.Equal(t, "stones", words[0].Surface)
}

func TestTokenizer_AttachesSyllableCounts(t *testing.T) {
	tok := NewTokenizer(oneSentence{}, mapCounter{"pond": 1, "silence": 2})
	words := tok.Tokenize("pond silence")

	require.Len(t, words, 2)
	assert.Equal(t, 1, words[0].Syllables)
	assert.Equal(t, 2, words[1].Syllables)
}

func TestTokenizer_SentenceOrdinals(t *testing.T) {
	tok := NewTokenizer(lineSentences{}, DefaultOracle())
	words := tok.Tokenize("one two\nthree")

	require.Len(t, words, 3)
	assert.Equal(t, 0, words[0].Sentence)
	assert.Equal(t, 0, words[1].Sentence)
	assert.Equal(t, 1, words[2].Sentence)
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer(oneSentence{}, DefaultOracle())
	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   \n\t"))
}

func TestPunktSplitter_SplitsSentences(t *testing.T) {
	s := defaultSplitter()

	got := s.Split("It rained today. The pond overflowed.")
	require.Len(t, got, 2)
	assert.Equal(t, "It rained today.", got[0])
	assert.Equal(t, "The pond overflowed.", got[1])
}

func TestPunktSplitter_SingleSentence(t *testing.T) {
	s := defaultSplitter()

	got := s.Split("Hi.")
	require.Len(t, got, 1)
	assert.Equal(t, "Hi.", got[0])
}
