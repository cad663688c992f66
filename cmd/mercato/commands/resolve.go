package commands

import (
	"fmt"
	"os"
	"strings"

	"mercato-backend/services/mercato"

	"github.com/spf13/cobra"
)

var resolveBest bool

func init() {
	resolveCmd.Flags().BoolVar(
		&resolveBest, "best", false,
		"Exhaust all query variants and pick the best-scoring candidate.",
	)
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [--best] <player name>",
	Short: "Resolves a player name to their canonical profile url.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		player := strings.Join(args, " ")

		var url string
		var err error
		if resolveBest {
			url, err = service.ResolveBest(cmd.Context(), player)
		} else {
			url, err = service.Resolve(cmd.Context(), player)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, mercato.AsError(err).UserMessage)
			os.Exit(1)
		}

		fmt.Println(url)
	},
}
