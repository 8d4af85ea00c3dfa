package haikus

// Line syllable targets for the 5-7-5 form.
var lineTargets = [3]int{5, 7, 5}

// Scan finds every haiku in the word stream. Each start position is
// tried independently and starts advance one word at a time whether or
// not a haiku was emitted, so overlapping haikus are all reported,
// ordered by start position. Streams under 17 syllables simply yield
// nothing.
func Scan(words []Word) []*Haiku {
	var found []*Haiku
	for i := range words {
		if h := scanAt(words, i); h != nil {
			found = append(found, h)
		}
	}
	return found
}

// scanAt builds the haiku whose first word is words[i], or returns nil.
// Words accumulate greedily until a line's target is hit exactly;
// overshooting a target, running out of words, or leaving the sentence
// words[i] belongs to abandons the start. Every stream word carries at
// least one syllable, so running sums are strictly increasing and the
// greedy split is the only split there is.
func scanAt(words []Word, i int) *Haiku {
	var lines [3][]Word
	pos := i
	for li, target := range lineTargets {
		sum := 0
		start := pos
		for sum < target {
			if pos >= len(words) || words[pos].Sentence != words[i].Sentence {
				return nil
			}
			sum += words[pos].Syllables
			pos++
		}
		if sum != target {
			return nil
		}
		lines[li] = words[start:pos]
	}
	return &Haiku{lines: lines}
}
