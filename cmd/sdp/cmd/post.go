package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func postCmd() *cobra.Command {
	var title, link, description string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a link post to the configured feed",
		Example: `  sdp post --title "Release notes" --link https://example.com/notes \
    --description "What changed this week"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			posted, err := a.provider.PostToFeed(cmd.Context(), title, link, description)
			if err != nil {
				return fmt.Errorf("posting to feed: %w", err)
			}
			if !posted {
				return errors.New("post was not accepted, see the log for the reason")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "posted to %s\n", a.cfg.Facebook.PostTarget)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&link, "link", "", "link to attach")
	cmd.Flags().StringVar(&description, "description", "", "link description")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))

	return cmd
}
