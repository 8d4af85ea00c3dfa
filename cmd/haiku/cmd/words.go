package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/haikus"
)

var wordsCmd = &cobra.Command{
	Use:   "words [text ...]",
	Short: "Show per-word syllable counts",
	Long:  "Counts syllables for each word of the given text (stdin when omitted) and marks whether the count came from the dictionary or the heuristic.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runWords,
}

func runWords(cmd *cobra.Command, args []string) error {
	svc, _, err := loadService()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	t := haikus.NewText(text, haikus.WithSyllableCounter(svc.Oracle()))
	words := t.Words()

	total := 0
	for _, w := range words {
		total += w.Syllables
		source := "heuristic"
		if svc.Oracle().InDictionary(w.Surface) {
			source = "dictionary"
		}
		fmt.Printf("  %-20s %d  %s%s%s\n", w.Surface, w.Syllables, colorGray, source, colorReset)
	}
	fmt.Printf("%s%d syllables%s │ %d words\n", colorBold, total, colorReset, len(words))
	return nil
}
