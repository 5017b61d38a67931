package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var (
		permissions []string
		authURL     bool
		state       string
		code        string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the Graph API",
		Long: "Logs in with the configured credentials and reports the result.\n\n" +
			"--auth-url prints the Facebook login dialog URL instead. After the user\n" +
			"approves, pass the returned code with --code to obtain a user access\n" +
			"token suitable for facebook.access_token.",
		Example: `  sdp login --permission user_posts --permission pages_manage_posts
  sdp login --auth-url --permission user_posts
  sdp login --code AQB...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch {
			case authURL:
				if state == "" {
					state = uuid.NewString()
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.graph.AuthCodeURL(state, permissions))
				return nil

			case code != "":
				if err := a.graph.ExchangeCode(ctx, code); err != nil {
					return err
				}
				tok, err := a.graph.AccessToken()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "access_token: %s\n", tok)
				return nil
			}

			var ok bool
			if len(permissions) > 0 {
				ok, err = a.provider.LoginWithPermissions(ctx, permissions)
			} else {
				ok, err = a.provider.Login(ctx)
			}
			if err != nil {
				return fmt.Errorf("logging in: %w", err)
			}
			if !ok {
				return errors.New("login was rejected, see the log for the reason")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in with %v\n", a.provider.Permissions())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "permission to request (repeatable)")
	cmd.Flags().BoolVar(&authURL, "auth-url", false, "print the login dialog URL")
	cmd.Flags().StringVar(&state, "state", "", "state parameter for --auth-url (default random)")
	cmd.Flags().StringVar(&code, "code", "", "exchange a login dialog code for a user token")
	cmd.MarkFlagsMutuallyExclusive("auth-url", "code")

	return cmd
}
