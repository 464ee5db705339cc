package journalengine

import (
	"slices"
	"time"
)

// Filter defines the criteria for querying call records: operation names
// (OR-ed), an optional status, and an optional occurred-at time range.
// Build it with BuildRecordFilter; a zero Filter matches every record.
type Filter struct {
	operations    []string
	status        string
	occurredFrom  time.Time
	occurredUntil time.Time
}

// Operations returns the operation names the filter matches.
func (f Filter) Operations() []string {
	return f.operations
}

// Status returns the status the filter matches, empty for any.
func (f Filter) Status() string {
	return f.status
}

// OccurredFrom returns the inclusive lower time bound, zero for none.
func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

// OccurredUntil returns the inclusive upper time bound, zero for none.
func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// FilterBuilder assembles a Filter with a fluent interface.
type FilterBuilder struct {
	filter Filter
}

// BuildRecordFilter starts building a call record filter.
func BuildRecordFilter() *FilterBuilder {
	return &FilterBuilder{}
}

// AnyOperationOf adds operation names; records matching any of them pass.
// Duplicates are dropped.
func (b *FilterBuilder) AnyOperationOf(operations ...string) *FilterBuilder {
	for _, operation := range operations {
		if operation == "" || slices.Contains(b.filter.operations, operation) {
			continue
		}

		b.filter.operations = append(b.filter.operations, operation)
	}

	return b
}

// WithStatus restricts the filter to records with the given status.
func (b *FilterBuilder) WithStatus(status string) *FilterBuilder {
	b.filter.status = status
	return b
}

// OccurredFrom sets the inclusive lower bound for the occurred-at time.
func (b *FilterBuilder) OccurredFrom(from time.Time) *FilterBuilder {
	b.filter.occurredFrom = from
	return b
}

// OccurredUntil sets the inclusive upper bound for the occurred-at time.
func (b *FilterBuilder) OccurredUntil(until time.Time) *FilterBuilder {
	b.filter.occurredUntil = until
	return b
}

// Finalize returns the assembled Filter.
func (b *FilterBuilder) Finalize() Filter {
	return b.filter
}
