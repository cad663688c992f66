package commands

import (
	"context"
	"fmt"
	"os"

	"mercato-backend/lib/configutil"
	"mercato-backend/lib/restyutil"
	"mercato-backend/lib/scrapers/transfermarkt"
	"mercato-backend/lib/serviceutil"
	"mercato-backend/lib/telemetry"
	"mercato-backend/lib/translate"
	"mercato-backend/services/mercato"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mercato",
	Short: "mercato is a CLI for player suggestions and transfer rumor lookups on transfermarkt.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
		if verbose {
			transfermarkt.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/transfermarkt"),
			)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose logging/instrumentation.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService builds the service from mercato.json5, falling back to
// defaults when no config file exists anywhere up the tree.
func newService() mercato.Service {
	cfg, err := configutil.ReadRecursively[mercato.Config]("mercato.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	service, err := mercato.NewService(cfg, translate.NewGoogleTranslator())
	if err != nil {
		serviceutil.Fatal("failed to initialize service", err)
	}
	return service
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
