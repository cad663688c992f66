package commands

import (
	"strings"

	"mercato-backend/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <player name>",
	Short: "Suggests player names matching free-text input.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		input := strings.Join(args, " ")

		suggestions := service.Suggest(
			cmd.Context(), input, textutil.IsArabic(input),
		)

		t := newTable()
		t.AppendHeader(table.Row{"#", "Suggestion"})
		for i, suggestion := range suggestions {
			t.AppendRow(table.Row{i + 1, suggestion})
		}
		t.Render()
	},
}
