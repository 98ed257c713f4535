package query

import (
	"github.com/dot5enko/simple-scan-query/schema"
)

type Predicate struct {
	Cmp    CmpType
	Column uint16
	Value  schema.PredicateValue
}

// ConjunctionClause is an ordered group of predicates combined with
// logical AND. Append only, predicates never change once added.
type ConjunctionClause struct {
	predicates []Predicate
}

func NewConjunctionClause() *ConjunctionClause {
	return &ConjunctionClause{predicates: []Predicate{}}
}

func (c *ConjunctionClause) AddPredicate(cmp CmpType, column uint16, value schema.PredicateValue) {
	c.predicates = append(c.predicates, Predicate{
		Cmp:    cmp,
		Column: column,
		Value:  value,
	})
}

// AddNullCheck appends an IS_NULL or IS_NOT_NULL predicate. Null
// comparisons carry no operand, but the wire record still has a value
// slot, so a bool false keeps it well formed.
func (c *ConjunctionClause) AddNullCheck(cmp CmpType, column uint16) {
	c.AddPredicate(cmp, column, schema.BoolValue(false))
}

func (c *ConjunctionClause) NumPredicates() int {
	return len(c.predicates)
}

func (c *ConjunctionClause) Cmp(idx int) CmpType {
	return c.predicates[idx].Cmp
}

func (c *ConjunctionClause) Column(idx int) uint16 {
	return c.predicates[idx].Column
}

func (c *ConjunctionClause) Value(idx int) schema.PredicateValue {
	return c.predicates[idx].Value
}

func (c *ConjunctionClause) Get(idx int) Predicate {
	return c.predicates[idx]
}
