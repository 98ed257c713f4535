package query

import "fmt"

// CmpType is the predicate comparison kind. Values are the tags the
// scan engine expects on the wire, do not reorder.
type CmpType byte

const (
	CmpEqual CmpType = iota + 1
	CmpNotEqual
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
	CmpLike
	CmpNotLike
	CmpIsNull
	CmpIsNotNull
)

func (c CmpType) String() string {
	switch c {
	case CmpEqual:
		return "EQUAL"
	case CmpNotEqual:
		return "NOT_EQUAL"
	case CmpLess:
		return "LESS"
	case CmpLessEqual:
		return "LESS_EQUAL"
	case CmpGreater:
		return "GREATER"
	case CmpGreaterEqual:
		return "GREATER_EQUAL"
	case CmpLike:
		return "LIKE"
	case CmpNotLike:
		return "NOT_LIKE"
	case CmpIsNull:
		return "IS_NULL"
	case CmpIsNotNull:
		return "IS_NOT_NULL"
	default:
		panic(fmt.Sprintf("unknown comparison %d", byte(c)))
	}
}
