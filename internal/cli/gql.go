package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newGQLQueryCmd(a *App) *cobra.Command {
	var query string
	var variables string

	cmd := &cobra.Command{
		Use:   "gql-query",
		Short: "Run an arbitrary GraphQL query against the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var vars any
			if variables != "" {
				if err := json.Unmarshal([]byte(variables), &vars); err != nil {
					return fmt.Errorf("parsing --variables: %w", err)
				}
			}

			data, err := a.api.Do(cmd.Context(), query, vars)
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, data, "", "  "); err != nil {
				return fmt.Errorf("formatting response: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "GraphQL query or mutation text")
	cmd.Flags().StringVarP(&variables, "variables", "v", "", "query variables as a JSON object")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}
