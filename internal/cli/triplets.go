package cli

import (
	"fmt"
	"strings"

	"github.com/quadline/oneaway/internal/engine"
	"github.com/quadline/oneaway/internal/model"
	"github.com/spf13/cobra"
)

// tripletsCmd represents the triplets command
var tripletsCmd = &cobra.Command{
	Use:   "triplets <w1> <w2> <w3> <w4>",
	Short: "Print the 4 candidate triplets of a one-away guess",
	Long: `Triplets enumerates the 4 ways a one-away guess can resolve.

A guess of 4 words with a "one away" result means exactly 3 of them
share a hidden group. Each candidate triplet drops one word; exactly one
candidate is true, but all 4 stay live until contradicted.

Example:
  oneaway triplets BASS FLOUNDER SALMON SOLE`,
	Args: cobra.ExactArgs(4),
	RunE: runTriplets,
}

func init() {
	rootCmd.AddCommand(tripletsCmd)
}

func runTriplets(cmd *cobra.Command, args []string) error {
	g, err := model.NewGuess("guess", args)
	if err != nil {
		return err
	}

	for i, triplet := range engine.Triplets(g) {
		fmt.Printf("%d. %s\n", i+1, strings.Join(triplet, ", "))
	}

	return nil
}
