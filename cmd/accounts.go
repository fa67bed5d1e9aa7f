package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/disgo/api"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Query accounts and their transactions",
}

func init() {
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "get <address>",
		Short: "Fetch an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.NewAccountsController(client).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	})

	accountsCmd.AddCommand(&cobra.Command{
		Use:   "sent <address>",
		Short: "List the transactions sent by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.NewAccountsController(client).ListSent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	})

	accountsCmd.AddCommand(&cobra.Command{
		Use:   "received <address>",
		Short: "List the transactions received by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.NewAccountsController(client).ListReceived(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	})
}
