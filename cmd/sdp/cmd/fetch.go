package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

func fetchCmd() *cobra.Command {
	var maxRecords int

	cmd := &cobra.Command{
		Use:   "fetch <query>",
		Short: "Read records from a feed",
		Long: "Logs in when needed and reads the feed of a page, user or \"me\" until\n" +
			"--max records are gathered or the feed has no more pages.",
		Example: `  sdp fetch me
  sdp fetch 1234567890 --max 50 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args[0], maxRecords)
		},
	}
	cmd.Flags().IntVar(&maxRecords, "max", provider.DefaultMaxRecords, "maximum number of records")

	return cmd
}

func runFetch(cmd *cobra.Command, query string, maxRecords int) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	records, err := a.provider.Fetch(cmd.Context(), facebook.DataConfig{Query: query}, maxRecords)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}

	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), records)
	}
	return printRecordsTable(cmd.OutOrStdout(), records)
}
