package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/haikus/internal/app"
	"github.com/corey/haikus/internal/config"
	"github.com/corey/haikus/internal/ports"
)

var ratingsCmd = &cobra.Command{
	Use:   "ratings [file n]",
	Short: "List stored ratings",
	Long:  "Lists every stored rating, newest first. With a file and haiku number, lists only that haiku's ratings.",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runRatings,
}

func runRatings(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("ratings takes no arguments, or a file and a haiku number")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var ratings []ports.Rating
	if len(args) == 2 {
		svc, err := app.NewService(cfg)
		if err != nil {
			return err
		}
		sh, err := findHaiku(svc, args[0], args[1])
		if err != nil {
			return err
		}
		ratings, err = store.RatingsFor(sh.Haiku.Fingerprint())
		if err != nil {
			return err
		}
	} else {
		ratings, err = store.Ratings()
		if err != nil {
			return err
		}
	}

	if len(ratings) == 0 {
		fmt.Println("no ratings yet")
		return nil
	}
	for _, r := range ratings {
		fmt.Print(formatRating(r))
	}
	fmt.Printf("%s%d ratings%s\n", colorBold, len(ratings), colorReset)
	return nil
}
