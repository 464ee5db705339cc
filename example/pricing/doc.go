// Package pricing is a small worked example for the decorate package: a
// grocery basket whose cost calculation is a private method, published as a
// decorated callable slot. The slot's chain translates errors and panics
// into Results, reports the outcome on the console, and stamps every call
// with a timestamp line.
package pricing
