package query

import (
	"testing"

	"github.com/dot5enko/simple-scan-query/schema"
)

func TestRegroupSortsColumnsAscending(t *testing.T) {

	c1 := NewConjunctionClause()
	c1.AddPredicate(CmpEqual, 42, schema.Int32Value(1))
	c1.AddPredicate(CmpLess, 3, schema.Int32Value(2))

	c2 := NewConjunctionClause()
	c2.AddPredicate(CmpGreater, 17, schema.Int32Value(3))
	c2.AddPredicate(CmpNotEqual, 3, schema.Int32Value(4))

	grouped := regroupByColumn([]*ConjunctionClause{c1, c2})

	if grouped.Len() != 3 {
		t.Errorf("Expected %d but got %d", 3, grouped.Len())
	}

	columns := []uint16{}
	total := 0
	grouped.Scan(func(node columnPredicates) bool {
		columns = append(columns, node.column)
		total += len(node.preds)
		return true
	})

	for i := 1; i < len(columns); i++ {
		if columns[i-1] >= columns[i] {
			t.Errorf("Expected ascending column order but got %v", columns)
		}
	}

	if total != 4 {
		t.Errorf("Expected %d but got %d", 4, total)
	}
}

func TestRegroupPreservesClauseOrderWithinColumn(t *testing.T) {

	c1 := NewConjunctionClause()
	c1.AddPredicate(CmpEqual, 3, schema.Int32Value(10))

	c2 := NewConjunctionClause()
	c2.AddPredicate(CmpGreater, 3, schema.Int64Value(20))
	c2.AddPredicate(CmpLess, 3, schema.Int64Value(30))

	grouped := regroupByColumn([]*ConjunctionClause{c1, c2})

	node, isOk := grouped.Get(columnPredicates{column: 3})
	if !isOk {
		t.Fatalf("column 3 missing from regrouped tree")
	}

	if len(node.preds) != 3 {
		t.Errorf("Expected %d but got %d", 3, len(node.preds))
	}

	if node.preds[0].clauseIdx != 0 || node.preds[0].pred.Cmp != CmpEqual {
		t.Errorf("Expected clause 0 %s first but got clause %d %s", CmpEqual, node.preds[0].clauseIdx, node.preds[0].pred.Cmp)
	}

	if node.preds[1].clauseIdx != 1 || node.preds[1].pred.Cmp != CmpGreater {
		t.Errorf("Expected clause 1 %s second but got clause %d %s", CmpGreater, node.preds[1].clauseIdx, node.preds[1].pred.Cmp)
	}

	if node.preds[2].clauseIdx != 1 || node.preds[2].pred.Cmp != CmpLess {
		t.Errorf("Expected clause 1 %s last but got clause %d %s", CmpLess, node.preds[2].clauseIdx, node.preds[2].pred.Cmp)
	}
}

func TestRegroupEmptySelections(t *testing.T) {

	grouped := regroupByColumn(nil)

	if grouped.Len() != 0 {
		t.Errorf("Expected %d but got %d", 0, grouped.Len())
	}
}
