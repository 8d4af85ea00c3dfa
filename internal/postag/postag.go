// Package postag assigns coarse part-of-speech classes to English words.
//
// It is a lexicon-plus-suffix tagger, not a statistical model: closed
// classes (pronouns, determiners, prepositions, conjunctions, wh-words)
// are enumerated, open-class words fall through suffix rules and default
// to noun. The noun bias suits the haiku evaluators, which mostly ask
// whether a line ends on a content word.
package postag

import "strings"

// Tag is a coarse part-of-speech class.
type Tag int

const (
	Noun Tag = iota
	Verb
	Adjective
	Adverb
	Pronoun
	PossessivePronoun
	Determiner
	Preposition
	Conjunction
	To
	WhWord
)

var tagNames = [...]string{
	Noun:              "noun",
	Verb:              "verb",
	Adjective:         "adjective",
	Adverb:            "adverb",
	Pronoun:           "pronoun",
	PossessivePronoun: "possessive pronoun",
	Determiner:        "determiner",
	Preposition:       "preposition",
	Conjunction:       "conjunction",
	To:                "to",
	WhWord:            "wh-word",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Content reports whether t marks a content word: noun, verb, adjective.
func (t Tag) Content() bool {
	return t == Noun || t == Verb || t == Adjective
}

// Joining reports whether t marks a word that leaves a phrase dangling
// when it ends one: prepositions, determiners, conjunctions, possessive
// pronouns, wh-words and "to".
func (t Tag) Joining() bool {
	switch t {
	case Preposition, Determiner, Conjunction, PossessivePronoun, To, WhWord:
		return true
	}
	return false
}

// NounLike reports whether t can stand as the closing image of a haiku:
// nouns and pronouns, possessives included.
func (t Tag) NounLike() bool {
	return t == Noun || t == Pronoun || t == PossessivePronoun
}

// Lookup returns the class for a single word, case-insensitive. Words
// outside the lexicon run through suffix rules and default to noun.
func Lookup(word string) Tag {
	w := strings.ToLower(word)
	if t, ok := lexicon[w]; ok {
		return t
	}
	return infer(w)
}

// infer guesses a class from the word's shape. Length guards keep short
// words like "bed" and "sly" away from the suffix rules.
func infer(w string) Tag {
	n := len(w)
	switch {
	case n >= 4 && strings.HasSuffix(w, "ly"):
		return Adverb
	case n >= 5 && (strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "ed")):
		return Verb
	case strings.HasSuffix(w, "ness"), strings.HasSuffix(w, "tion"),
		strings.HasSuffix(w, "sion"), strings.HasSuffix(w, "ment"),
		strings.HasSuffix(w, "ship"), strings.HasSuffix(w, "ity"):
		return Noun
	case strings.HasSuffix(w, "ful"), strings.HasSuffix(w, "less"),
		strings.HasSuffix(w, "ous"), strings.HasSuffix(w, "ive"),
		strings.HasSuffix(w, "able"), strings.HasSuffix(w, "ible"):
		return Adjective
	}
	return Noun
}

var lexicon = buildLexicon()

func buildLexicon() map[string]Tag {
	lex := make(map[string]Tag, 256)
	add := func(tag Tag, words ...string) {
		for _, w := range words {
			lex[w] = tag
		}
	}

	add(Determiner, "the", "a", "an", "this", "that", "these", "those",
		"each", "some", "any", "no", "both", "either", "neither", "another",
		"such", "all", "most", "much", "many", "few")

	add(Preposition, "of", "in", "on", "at", "by", "for", "with", "from",
		"about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "over", "under", "among", "along",
		"around", "behind", "beneath", "beside", "beyond", "near", "upon",
		"within", "without", "across", "toward", "towards", "inside",
		"outside", "throughout", "past", "since", "until", "because",
		"although", "though", "while", "unless", "if")

	add(To, "to")

	add(Conjunction, "and", "but", "or", "nor", "yet", "so")

	add(Pronoun, "i", "you", "he", "she", "it", "we", "they", "me", "him",
		"us", "them", "mine", "yours", "hers", "ours", "theirs", "myself",
		"yourself", "himself", "herself", "itself", "ourselves",
		"themselves", "someone", "anyone", "everyone", "nobody", "somebody",
		"anybody", "everybody")

	add(PossessivePronoun, "my", "your", "his", "her", "its", "our", "their")

	add(WhWord, "who", "whom", "whose", "which", "what", "when", "where",
		"why", "how", "whoever", "whatever", "whenever", "wherever",
		"whether")

	add(Verb, "be", "am", "is", "are", "was", "were", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"done", "can", "could", "will", "would", "shall", "should", "may",
		"might", "must", "go", "goes", "went", "gone", "get", "gets",
		"got", "make", "makes", "made", "come", "comes", "came", "take",
		"takes", "took", "taken", "see", "sees", "saw", "seen", "know",
		"knows", "knew", "known", "think", "thinks", "thought", "say",
		"says", "said", "feel", "feels", "felt", "keep", "keeps", "kept",
		"let", "lets", "run", "runs", "ran", "sit", "sits", "sat",
		"stand", "stands", "stood", "fell", "rise", "rises", "grow",
		"grows", "grew", "sing", "sings", "sang", "bring", "brings",
		"brought", "hold", "holds", "held", "left")

	add(Adjective, "old", "new", "good", "bad", "great", "small", "little",
		"big", "long", "short", "high", "low", "late", "early", "bright",
		"dark", "cold", "warm", "hot", "cool", "wet", "dry", "soft",
		"loud", "quiet", "silent", "deep", "shallow", "sweet", "bitter",
		"fresh", "pale", "ancient", "gentle", "empty", "full", "white",
		"black", "red", "blue", "green", "yellow", "golden", "gray",
		"brown", "young", "wild", "calm", "still", "bare")

	add(Adverb, "not", "never", "always", "often", "sometimes", "soon",
		"here", "there", "now", "then", "very", "too", "quite", "almost",
		"already", "again", "once", "twice", "away", "back", "up", "down",
		"out", "only", "even", "just")

	// Nouns the -ing/-ed suffix rules would misread.
	add(Noun, "morning", "evening", "spring", "thing", "nothing",
		"something", "anything", "everything", "hundred", "thousand")

	return lex
}
