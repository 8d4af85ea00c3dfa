package postag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_ClosedClasses(t *testing.T) {
	tests := []struct {
		word string
		want Tag
	}{
		{"the", Determiner},
		{"An", Determiner},
		{"of", Preposition},
		{"into", Preposition},
		{"because", Preposition},
		{"to", To},
		{"and", Conjunction},
		{"she", Pronoun},
		{"Them", Pronoun},
		{"their", PossessivePronoun},
		{"her", PossessivePronoun},
		{"where", WhWord},
		{"was", Verb},
		{"silent", Adjective},
		{"again", Adverb},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lookup(tt.word), "word %q", tt.word)
	}
}

func TestLookup_SuffixRules(t *testing.T) {
	tests := []struct {
		word string
		want Tag
	}{
		{"softly", Adverb},
		{"walking", Verb},
		{"drifted", Verb},
		{"darkness", Noun},
		{"station", Noun},
		{"movement", Noun},
		{"peaceful", Adjective},
		{"restless", Adjective},
		{"luminous", Adjective},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lookup(tt.word), "word %q", tt.word)
	}
}

func TestLookup_ShortWordsSkipSuffixRules(t *testing.T) {
	// "bed" would match the -ed rule and "sly" the -ly rule without the
	// length guards.
	assert.Equal(t, Noun, Lookup("bed"))
	assert.Equal(t, Noun, Lookup("sly"))
}

func TestLookup_DefaultsToNoun(t *testing.T) {
	assert.Equal(t, Noun, Lookup("pond"))
	assert.Equal(t, Noun, Lookup("lincoln"))
	assert.Equal(t, Noun, Lookup("zzyzx"))
}

func TestLookup_SeasonNounsBeatSuffixRules(t *testing.T) {
	for _, w := range []string{"morning", "evening", "spring", "thing"} {
		assert.Equal(t, Noun, Lookup(w), "word %q", w)
	}
}

func TestTag_Classes(t *testing.T) {
	assert.True(t, Noun.Content())
	assert.True(t, Verb.Content())
	assert.True(t, Adjective.Content())
	assert.False(t, Adverb.Content())
	assert.False(t, Preposition.Content())

	assert.True(t, Preposition.Joining())
	assert.True(t, Determiner.Joining())
	assert.True(t, Conjunction.Joining())
	assert.True(t, PossessivePronoun.Joining())
	assert.True(t, To.Joining())
	assert.True(t, WhWord.Joining())
	assert.False(t, Noun.Joining())
	assert.False(t, Adverb.Joining())

	assert.True(t, Noun.NounLike())
	assert.True(t, Pronoun.NounLike())
	assert.True(t, PossessivePronoun.NounLike())
	assert.False(t, Verb.NounLike())
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "noun", Noun.String())
	assert.Equal(t, "wh-word", WhWord.String())
	assert.Equal(t, "unknown", Tag(99).String())
}
