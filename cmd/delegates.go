package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/disgo/api"
)

var delegatesCmd = &cobra.Command{
	Use:   "delegates",
	Short: "Query the current delegates",
}

func init() {
	delegatesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the current delegates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.NewDelegatesController(client).List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	})
}
