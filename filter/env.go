package filter

import (
	"strings"
	"time"

	"github.com/s0up4200/disgo/models"
)

// newEnvironment exposes a transaction and the helper functions to an
// expression. Every key must be present for the zero transaction too, since
// that environment is what expressions are type-checked against.
func newEnvironment(tx models.Transaction, now time.Time) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env, now)

	env["Hash"] = tx.Hash
	env["Type"] = tx.Type.String()
	env["From"] = tx.From
	env["To"] = tx.To
	env["Value"] = int(tx.Value)
	env["Time"] = tx.Timestamp()
	env["Signature"] = tx.Signature
	env["Hertz"] = int(tx.Hertz.OrElse(0))
	env["Method"] = tx.Method.OrElse("")
	env["FromName"] = tx.FromName.OrElse("")
	env["ToName"] = tx.ToName.OrElse("")
	env["IsContract"] = tx.IsContract()

	env["isTransfer"] = isType(tx, models.TransactionTypeTransfer)
	env["isDeploy"] = isType(tx, models.TransactionTypeDeploy)
	env["isExecute"] = isType(tx, models.TransactionTypeExecute)
	env["from"] = addressMatcher(tx.From)
	env["to"] = addressMatcher(tx.To)
	env["olderThan"] = func(days int) bool {
		return tx.Timestamp().Before(now.AddDate(0, 0, -days))
	}
	env["newerThan"] = func(days int) bool {
		return tx.Timestamp().After(now.AddDate(0, 0, -days))
	}

	return env
}

// addHelperFunctions adds the date helpers. String and time builtins such as
// lower, upper and now come with expr itself and are not shadowed.
func addHelperFunctions(env map[string]any, now time.Time) {
	env["daysAgo"] = func(days int) time.Time {
		return now.AddDate(0, 0, -days)
	}
	env["daysSince"] = func(t time.Time) int {
		return int(now.Sub(t).Hours() / 24)
	}
}

func isType(tx models.Transaction, want models.TransactionType) func() bool {
	return func() bool {
		return tx.Type == want
	}
}

// addresses are hex, compare case-insensitively
func addressMatcher(address string) func(string) bool {
	return func(candidate string) bool {
		return strings.EqualFold(address, candidate)
	}
}
