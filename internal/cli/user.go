package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentUserCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-user",
		Short: "Show the account behind the configured API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.api.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User data:")
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}
