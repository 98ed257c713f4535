package query

import (
	"errors"

	"github.com/google/uuid"
)

// MaxSelections bounds the clause count: the wire stores the originating
// clause index in a single byte.
const MaxSelections = 256

var ErrTooManySelections = errors.New("too many selection clauses")

// ScanQuery describes one scan request: partition routing plus a
// disjunction of conjunction clauses and an optional projection list.
// Not safe for concurrent use.
type ScanQuery struct {
	Uid uuid.UUID

	partitionKey   int32
	partitionValue int32

	selections  []*ConjunctionClause
	projections []int32
}

func NewScanQuery(partitionKey int32, partitionValue int32) *ScanQuery {
	return &ScanQuery{
		Uid: uuid.New(),

		partitionKey:   partitionKey,
		partitionValue: partitionValue,

		selections:  []*ConjunctionClause{},
		projections: []int32{},
	}
}

// AddSelection appends a clause to the disjunction. Fails once the
// clause index would no longer fit the wire's single byte.
func (sq *ScanQuery) AddSelection(clause *ConjunctionClause) error {
	if len(sq.selections) >= MaxSelections {
		return ErrTooManySelections
	}

	sq.selections = append(sq.selections, clause)
	return nil
}

func (sq *ScanQuery) AddProjection(column int32) {
	sq.projections = append(sq.projections, column)
}

func (sq *ScanQuery) PartitionKey() int32 {
	return sq.partitionKey
}

func (sq *ScanQuery) PartitionValue() int32 {
	return sq.partitionValue
}

func (sq *ScanQuery) NumSelections() int {
	return len(sq.selections)
}

func (sq *ScanQuery) Selection(idx int) *ConjunctionClause {
	return sq.selections[idx]
}

// Projections returns a copy, callers cannot reorder the query's own
// list through it.
func (sq *ScanQuery) Projections() []int32 {
	result := make([]int32, len(sq.projections))
	copy(result, sq.projections)
	return result
}
