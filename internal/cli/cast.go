package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCastCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cast [eid]",
		Short: "List PDF templates or show one template's field definitions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cast, err := a.api.GetCast(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), cast)
			}

			casts, err := a.api.ListCasts(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range casts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Eid, c.Name)
			}
			return nil
		},
	}
}
