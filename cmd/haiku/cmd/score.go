package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/haikus/internal/app"
)

var scoreCmd = &cobra.Command{
	Use:   "score [path]",
	Short: "Score haikus with a per-evaluator breakdown",
	Long:  "Scans a file (stdin when omitted) and prints each haiku with every evaluator's score, weight, and the weighted quality.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	svc, _, err := loadService()
	if err != nil {
		return err
	}

	var found []app.ScoredHaiku
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		found, err = svc.ScanText(string(data))
		if err != nil {
			return err
		}
	} else {
		reports, err := svc.ScanFiles(context.Background(), args)
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			return fmt.Errorf("nothing to scan at %s", args[0])
		}
		if reports[0].Err != nil {
			return reports[0].Err
		}
		found = reports[0].Haikus
	}

	if len(found) == 0 {
		fmt.Println("no haikus found")
		return nil
	}

	for i, sh := range found {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s%s%s\n", colorCyan, sh.Haiku.String(), colorReset)
		bg := sh.Haiku.LineEndBigrams()
		fmt.Printf("  %-18s %s%s %s │ %s %s%s\n", "break bigrams",
			colorGray, bg[0][0], bg[0][1], bg[1][0], bg[1][1], colorReset)
		for _, we := range svc.Evaluators() {
			fmt.Printf("  %-18s %.2f  %s×%.1f%s\n",
				app.EvaluatorName(we.Evaluator),
				we.Evaluator.Evaluate(sh.Haiku),
				colorGray, we.Weight, colorReset)
		}
		fmt.Printf("  %s%-18s %.2f%s\n", colorBold, "quality", sh.Score, colorReset)
	}
	return nil
}
