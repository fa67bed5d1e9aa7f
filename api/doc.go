// Package api exposes the Disgo endpoints as controllers, one per resource
// group. Every method validates its arguments, builds a dispatch.Request and
// returns the result of dispatch.Execute unchanged.
//
// Controllers are created explicitly from a shared *dispatch.Client; compose
// only the ones you need:
//
//	client, err := dispatch.NewClient(cfg, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	transactions := api.NewTransactionsController(client)
//	delegates := api.NewDelegatesController(client)
//
//	list, err := transactions.List(ctx, api.ListTransactionsParams{Page: 1})
//
// Controllers hold no mutable state and are safe for concurrent use.
package api
