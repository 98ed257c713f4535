package query

import (
	btree "github.com/tidwall/btree"
)

type (
	// clausePredicate ties a predicate to the 0-based index of the
	// clause it came from, the wire stores that index next to the
	// comparison tag.
	clausePredicate struct {
		pred      Predicate
		clauseIdx uint8
	}

	// columnPredicates holds every predicate referencing one column,
	// ordered by clause then position within the clause.
	columnPredicates struct {
		column uint16
		preds  []clausePredicate
	}
)

func lessByColumn(a, b columnPredicates) bool {
	return a.column < b.column
}

// regroupByColumn turns clause major selections into a column major tree
// sorted by ascending column id. Callers guarantee len(selections) fits
// the single byte clause index.
func regroupByColumn(selections []*ConjunctionClause) *btree.BTreeG[columnPredicates] {

	grouped := btree.NewBTreeG(lessByColumn)

	for clauseIdx, selection := range selections {

		numPreds := selection.NumPredicates()
		for i := 0; i < numPreds; i++ {

			cId := selection.Column(i)

			node, isOk := grouped.Get(columnPredicates{column: cId})
			if !isOk {
				node = columnPredicates{column: cId, preds: []clausePredicate{}}
			}

			node.preds = append(node.preds, clausePredicate{
				pred:      selection.Get(i),
				clauseIdx: uint8(clauseIdx),
			})

			grouped.Set(node)
		}
	}

	return grouped
}
