package haikus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaiku_LinesAndString(t *testing.T) {
	h := scanOne(t, lincolnText, lincolnCounts)

	assert.Equal(t, lincolnLines, h.Lines())
	assert.Equal(t,
		"abraham lincoln / was a president one time / he freed many slaves",
		h.String())
}

func TestHaiku_WordsInReadingOrder(t *testing.T) {
	h := scanOne(t, lincolnText, lincolnCounts)

	words := h.Words()
	require.Len(t, words, 11)
	assert.Equal(t, "abraham", words[0].Surface)
	assert.Equal(t, "slaves", words[10].Surface)
}

func TestHaiku_LineEndBigrams(t *testing.T) {
	h := scanOne(t, frogText, frogCounts)

	assert.Equal(t, [2]Bigram{
		{"pond", "a"},
		{"pond", "splash"},
	}, h.LineEndBigrams())
}

func TestHaiku_FingerprintStable(t *testing.T) {
	h := scanOne(t, lincolnText, lincolnCounts)
	upper := scanOne(t, "ABRAHAM LINCOLN WAS A PRESIDENT ONE TIME HE FREED MANY SLAVES", lincolnCounts)
	other := scanOne(t, frogText, frogCounts)

	assert.Equal(t, h.Fingerprint(), h.Fingerprint())
	assert.Equal(t, h.Fingerprint(), upper.Fingerprint(), "casing does not change identity")
	assert.NotEqual(t, h.Fingerprint(), other.Fingerprint())
	assert.Len(t, h.Fingerprint(), 40)
}

func TestHaiku_FingerprintSensitiveToLineSplit(t *testing.T) {
	// The same five surfaces split differently across the lines must
	// not collide.
	a := Scan([]Word{
		{Surface: "p", Syllables: 2}, {Surface: "q", Syllables: 3},
		{Surface: "r", Syllables: 4}, {Surface: "s", Syllables: 3},
		{Surface: "t", Syllables: 5},
	})
	b := Scan([]Word{
		{Surface: "p", Syllables: 5}, {Surface: "q", Syllables: 4},
		{Surface: "r", Syllables: 3}, {Surface: "s", Syllables: 2},
		{Surface: "t", Syllables: 3},
	})
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, [3]string{"p q", "r s", "t"}, a[0].Lines())
	assert.Equal(t, [3]string{"p", "q r", "s t"}, b[0].Lines())
	assert.NotEqual(t, a[0].Fingerprint(), b[0].Fingerprint())
}

func TestHaiku_CalculateQualityDefaults(t *testing.T) {
	h := scanOne(t, lincolnText, lincolnCounts)

	q, err := h.CalculateQuality(nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, q, 0.0)
	assert.LessOrEqual(t, q, 1.0)

	_, err = h.CalculateQuality([]WeightedEvaluator{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
