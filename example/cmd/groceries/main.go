// The groceries command reproduces the basic decorated-member-function demo:
// a basket priced at $1.09 per apple, its cost calculation wrapped in the
// fail-safe, output and log-time decorators, invoked with valid and invalid
// arguments. Nothing escapes as a panic; every outcome shows up on stdout.
package main

import (
	"os"

	"github.com/decoratekit/decorate-go/example/pricing"
)

func main() {
	groceries := pricing.NewBasket(1.09, os.Stdout)

	groceries.CalculateCost.Call(5, 3.34)
	groceries.CalculateCost.Call(0, 3.34)
	groceries.CalculateCost.Call(5, 0)
}
