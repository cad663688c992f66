package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rumorsCmd)
}

var rumorsCmd = &cobra.Command{
	Use:   "rumors <player name> <club name>",
	Short: "Fetches the transfer rumors linking a player to a club.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		result := service.GetTransferData(cmd.Context(), args[0], args[1])
		if result.Err != nil {
			fmt.Fprintln(os.Stderr, result.Err.UserMessage)
			os.Exit(1)
		}

		fmt.Printf("%s (%s)\n", result.Player.Name, result.Player.MarketValue)
		fmt.Println(result.Player.Url)

		t := newTable()
		t.AppendHeader(table.Row{"Date", "Title", "Probability"})
		for _, rumor := range result.Rumors {
			t.AppendRow(table.Row{
				rumor.Date,
				rumor.Title,
				fmt.Sprintf("%.0f%%", rumor.Percentage),
			})
		}
		t.Render()

		fmt.Printf(
			"probability: %.0f%% (max %.0f%%, source: %s)\n",
			result.Assessment.Probability,
			result.MaxProbability(),
			result.Assessment.Source,
		)
	},
}
