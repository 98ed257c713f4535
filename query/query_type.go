package query

import "fmt"

// QueryType selects how the engine encodes scan results. The serializer
// here does not consume it, collaborators building the full scan request
// do.
type QueryType byte

const (
	FullQuery QueryType = iota + 1
	ProjectionQuery
	AggregationQuery
)

func (q QueryType) String() string {
	switch q {
	case FullQuery:
		return "FULL"
	case ProjectionQuery:
		return "PROJECTION"
	case AggregationQuery:
		return "AGGREGATION"
	default:
		panic(fmt.Sprintf("unknown query type %d", byte(q)))
	}
}
