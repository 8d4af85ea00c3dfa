package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/corey/haikus/internal/app"
	"github.com/corey/haikus/internal/ports"
)

var (
	rateStars   int
	rateComment string
	rateUser    string
)

var rateCmd = &cobra.Command{
	Use:   "rate <file> <n>",
	Short: "Rate the n-th haiku found in a file",
	Long:  "Scans a file, picks its n-th haiku (1-based, scan order), and stores a star rating for it.",
	Args:  cobra.ExactArgs(2),
	RunE:  runRate,
}

func init() {
	f := rateCmd.Flags()
	f.IntVarP(&rateStars, "stars", "s", 0, "Stars, 1 through 5 (required)")
	f.StringVarP(&rateComment, "comment", "m", "", "Optional comment")
	f.StringVarP(&rateUser, "user", "u", "", "Rating user (default: config user, then $USER)")
	rateCmd.MarkFlagRequired("stars")
}

func runRate(cmd *cobra.Command, args []string) error {
	svc, cfg, err := loadService()
	if err != nil {
		return err
	}

	sh, err := findHaiku(svc, args[0], args[1])
	if err != nil {
		return err
	}

	user := rateUser
	if user == "" {
		user = cfg.User
	}
	if user == "" {
		user = os.Getenv("USER")
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	rating := &ports.Rating{
		Fingerprint: sh.Haiku.Fingerprint(),
		Lines:       sh.Haiku.Lines(),
		Stars:       rateStars,
		Comment:     rateComment,
		User:        user,
	}
	if err := store.SaveRating(rating); err != nil {
		return err
	}

	fmt.Printf("%srated %d/5%s\n%s", colorBold, rateStars, colorReset, formatHaiku(*sh))
	return nil
}

// findHaiku scans path and returns its n-th haiku, counting from 1.
func findHaiku(svc *app.Service, path, ordinal string) (*app.ScoredHaiku, error) {
	n, err := strconv.Atoi(ordinal)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("haiku number must be a positive integer, got %q", ordinal)
	}

	reports, err := svc.ScanFiles(context.Background(), []string{path})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("nothing to scan at %s", path)
	}
	r := reports[0]
	if r.Err != nil {
		return nil, r.Err
	}
	if n > len(r.Haikus) {
		return nil, fmt.Errorf("%s has %d haikus, asked for #%d", path, len(r.Haikus), n)
	}
	return &r.Haikus[n-1], nil
}
