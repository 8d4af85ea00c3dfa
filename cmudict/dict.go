package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load parses the embedded dictionary into a word -> syllable count map.
func Load() (map[string]int, error) {
	f, err := FS.Open("data/cmudict.txt")
	if err != nil {
		return nil, fmt.Errorf("open embedded dictionary: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads syllable-count entries from r, one per line: a word, a
// space, and a positive count. Blank lines and lines starting with '#'
// are skipped. Words are lowercased; a later entry for the same word
// overrides an earlier one, which lets extension files shadow the
// embedded table.
func Parse(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, field, ok := strings.Cut(text, " ")
		if !ok {
			return nil, fmt.Errorf("dictionary line %d: want \"word count\", got %q", line, text)
		}
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("dictionary line %d: bad syllable count %q", line, field)
		}
		counts[strings.ToLower(word)] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return counts, nil
}
