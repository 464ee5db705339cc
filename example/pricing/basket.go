package pricing

import (
	"errors"
	"fmt"
	"io"

	"github.com/decoratekit/decorate-go/decorate"
)

var (
	// ErrCountTooSmall is returned when the basket holds no apples.
	ErrCountTooSmall = errors.New("must have 1 or more apples")

	// ErrWeightTooSmall is returned when the apples have no weight.
	ErrWeightTooSmall = errors.New("apples must weigh more than 0 ounces")
)

// Basket prices a bag of apples. The cost calculation itself is private;
// callers go through CalculateCost, a slot whose decorator chain is wired
// up once in NewBasket.
type Basket struct {
	costPerApple float64

	// CalculateCost takes the apple count and the weight per apple in
	// ounces, and yields the bag cost as a Result.
	CalculateCost decorate.Slot2[Basket, int, float64, decorate.Result[float64]]
}

// NewBasket creates a Basket with the given unit cost, writing its console
// report and timestamp lines to out. Extra log-time options (a fixed clock,
// a separate writer) are forwarded to the timestamp decorator.
func NewBasket(costPerApple float64, out io.Writer, logTimeOptions ...decorate.LogTimeOption) *Basket {
	b := &Basket{costPerApple: costPerApple}
	b.CalculateCost = decorate.NewSlot2[Basket, int, float64, decorate.Result[float64]](b)

	reporter := decorate.NewConsoleReporter(out, func(value float64) string {
		return fmt.Sprintf("Bag cost $%.2f", value)
	})

	options := append([]decorate.LogTimeOption{decorate.WithLogTimeWriter(out)}, logTimeOptions...)

	b.CalculateCost.Assign(decorate.LogTime3(
		decorate.Output3(
			decorate.FailSafe3((*Basket).calculateCost),
			reporter,
		),
		options...,
	))

	return b
}

// calculateCost is the raw calculation the decorators wrap. It stays
// oblivious to Results, reporting and timestamps.
func (b *Basket) calculateCost(count int, weightOunces float64) (float64, error) {
	if count <= 0 {
		return 0, ErrCountTooSmall
	}

	if weightOunces <= 0 {
		return 0, ErrWeightTooSmall
	}

	return float64(count) * weightOunces * b.costPerApple, nil
}
