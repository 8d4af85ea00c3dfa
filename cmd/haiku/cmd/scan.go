package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/haikus/internal/app"
)

var scanCountOnly bool

var scanCmd = &cobra.Command{
	Use:   "scan [path ...]",
	Short: "Scan files or stdin for haikus",
	Long:  "Scans the given files and directories (stdin when none are given) and prints every haiku with its quality score.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runScan,
}

func init() {
	f := scanCmd.Flags()
	f.BoolVarP(&scanCountOnly, "count", "c", false, "Print only the number of haikus found")
}

func runScan(cmd *cobra.Command, args []string) error {
	svc, _, err := loadService()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return scanStdin(svc)
	}

	reports, err := svc.ScanFiles(context.Background(), args)
	if err != nil {
		return err
	}

	total := 0
	failed := 0
	for _, r := range reports {
		total += len(r.Haikus)
		if r.Err != nil {
			failed++
		}
	}

	if scanCountOnly {
		fmt.Println(total)
		return nil
	}

	for _, r := range reports {
		// Quiet files stay quiet; only hits and failures print.
		if len(r.Haikus) == 0 && r.Err == nil {
			continue
		}
		fmt.Print(formatFileReport(r))
	}

	fmt.Printf("%s%d haikus%s │ %d files\n", colorBold, total, colorReset, len(reports))
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d files could not be read\n", failed)
	}
	return nil
}

func scanStdin(svc *app.Service) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	found, err := svc.ScanText(string(data))
	if err != nil {
		return err
	}

	if scanCountOnly {
		fmt.Println(len(found))
		return nil
	}
	for _, sh := range found {
		fmt.Print(formatHaiku(sh))
	}
	fmt.Printf("%s%d haikus%s\n", colorBold, len(found), colorReset)
	return nil
}
