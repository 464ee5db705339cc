package decorate

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrEmptyOperationSupplied is returned when a call record is built without an operation name.
	ErrEmptyOperationSupplied = errors.New("empty operation supplied")

	// ErrInvalidDetailsJSON is returned when the details are not valid JSON.
	ErrInvalidDetailsJSON = errors.New("details json is not valid")

	// ErrMarshalingDetailsFailed is returned when the details value cannot be serialized.
	ErrMarshalingDetailsFailed = errors.New("marshaling call details failed")
)

// CallRecords is an alias type for a slice of CallRecord.
type CallRecords = []CallRecord

// CallRecord is a DTO describing one invocation of a decorated operation.
//
// It is built on scalars so a journal store stays agnostic of the shapes of
// the decorated callables. While its properties are exported, it should
// only be constructed with the supplied factory methods:
//   - BuildCallRecord
//   - BuildCallRecordWithDetails
type CallRecord struct {
	CallID      string
	Operation   string
	OccurredAt  time.Time
	Status      string
	DetailsJSON []byte
}

// BuildCallRecord is a factory method for CallRecord. It assigns a fresh
// call ID and validates that detailsJSON is valid JSON.
func BuildCallRecord(operation string, occurredAt time.Time, status string, detailsJSON []byte) (CallRecord, error) {
	if operation == "" {
		return CallRecord{}, ErrEmptyOperationSupplied
	}

	if !json.Valid(detailsJSON) {
		return CallRecord{}, ErrInvalidDetailsJSON
	}

	return CallRecord{
		CallID:      uuid.NewString(),
		Operation:   operation,
		OccurredAt:  occurredAt,
		Status:      status,
		DetailsJSON: detailsJSON,
	}, nil
}

// BuildCallRecordWithDetails is a factory method for CallRecord that
// serializes an arbitrary details value to JSON.
func BuildCallRecordWithDetails(operation string, occurredAt time.Time, status string, details any) (CallRecord, error) {
	detailsJSON, err := jsoniter.ConfigFastest.Marshal(details)
	if err != nil {
		return CallRecord{}, errors.Join(ErrMarshalingDetailsFailed, err)
	}

	return BuildCallRecord(operation, occurredAt, status, detailsJSON)
}
