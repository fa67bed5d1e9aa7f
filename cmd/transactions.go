package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/disgo/api"
	"github.com/s0up4200/disgo/filter"
)

var (
	filterExpr string
	preset     string
	page       int
	pageSize   int
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Query transactions and receipts",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally narrowed by a filter expression",
	Long: `List transactions known to the node. A filter expression, a preset from the
config file or the configured default expression narrows the result on the client:

  disgo transactions list --filter 'isTransfer() and Value > 1000'
  disgo transactions list --preset recent-deploys`,
	Args: cobra.NoArgs,
	RunE: runTransactionsList,
}

var transactionsGetCmd = &cobra.Command{
	Use:   "get <hash>",
	Short: "Fetch a transaction by hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := api.NewTransactionsController(client).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var transactionsReceiptCmd = &cobra.Command{
	Use:   "receipt <hash>...",
	Short: "Fetch the receipts of one or more transactions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTransactionsReceipt,
}

func init() {
	transactionsListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	transactionsListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	transactionsListCmd.Flags().IntVar(&page, "page", 0, "page to request")
	transactionsListCmd.Flags().IntVar(&pageSize, "page-size", 0, "transactions per page")

	transactionsCmd.AddCommand(transactionsListCmd)
	transactionsCmd.AddCommand(transactionsGetCmd)
	transactionsCmd.AddCommand(transactionsReceiptCmd)
}

func runTransactionsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	list, err := api.NewTransactionsController(client).List(ctx, api.ListTransactionsParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	manager, name, err := selectFilter()
	if err != nil {
		return err
	}

	if manager != nil {
		total := len(list.Data)
		list.Data, err = manager.Evaluate(ctx, name, list.Data)
		if err != nil {
			logger.Warn().Err(err).Msg("Some transactions could not be evaluated and were skipped")
		}
		logger.Info().
			Str("filter", name).
			Int("matched", len(list.Data)).
			Int("total", total).
			Msg("Applied filter")
	}

	return printJSON(cmd.OutOrStdout(), list)
}

const adHocFilter = "--filter"

// selectFilter registers the configured presets and picks the filter to use.
// Priority: --filter, then --preset, then the default expression. A nil
// manager means no filtering.
func selectFilter() (*filter.Manager, string, error) {
	manager := filter.NewManager()

	presets := make(map[string]string, len(cfg.Filter.Presets))
	for name, p := range cfg.Filter.Presets {
		presets[name] = p.Expression
	}
	if err := manager.RegisterAll(presets); err != nil {
		return nil, "", fmt.Errorf("invalid preset: %w", err)
	}

	switch {
	case filterExpr != "":
		if err := manager.Register(adHocFilter, filterExpr); err != nil {
			return nil, "", fmt.Errorf("invalid filter expression: %w", err)
		}
		return manager, adHocFilter, nil
	case preset != "":
		if _, ok := manager.Get(preset); !ok {
			return nil, "", fmt.Errorf("preset '%s' not found in config", preset)
		}
		return manager, preset, nil
	case cfg.Filter.DefaultExpression != "":
		if err := manager.Register(adHocFilter, cfg.Filter.DefaultExpression); err != nil {
			return nil, "", fmt.Errorf("invalid default filter expression: %w", err)
		}
		return manager, adHocFilter, nil
	}

	return nil, "", nil
}

func runTransactionsReceipt(cmd *cobra.Command, args []string) error {
	type receiptOutput struct {
		Hash    string `json:"hash"`
		Receipt any    `json:"receipt,omitempty"`
		Error   string `json:"error,omitempty"`
	}

	results, err := api.NewTransactionsController(client).GetReceipts(cmd.Context(), args...)
	if err != nil {
		return err
	}

	var failed int
	out := make([]receiptOutput, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn().Err(r.Err).Str("hash", r.Hash).Msg("Failed to fetch receipt")
			out = append(out, receiptOutput{Hash: r.Hash, Error: r.Err.Error()})
			continue
		}
		out = append(out, receiptOutput{Hash: r.Hash, Receipt: r.Receipt})
	}

	if err := printJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d receipts could not be fetched", failed, len(results))
	}
	return nil
}
