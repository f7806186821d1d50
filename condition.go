package listpager

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm/clause"
)

// Operator is the comparison applied to the identifier column.
type Operator string

const (
	OperatorGT Operator = ">"
)

// tConjunct is a single comparison Operator(Column, Value).
type tConjunct struct {
	Column   string
	Value    any
	Operator Operator
}

// toGORMExpression converts a conjunct of the form Operator(Column, Value)
// into an SQL condition "Column Operator Value" represented as a clause.Expression.
//
// IMPORTANT: The method uses the SQL placeholder "?".
//
// Example:
//
//	tConjunct = { Column: "id", Operator: ">", Value: 123}
//
// Result:
//
//	"id > 123"
func (c tConjunct) toGORMExpression() clause.Expression {
	sqlClause, arg := c.toSQLClause()

	return clause.Expr{
		SQL:  sqlClause,
		Vars: []any{arg},
	}
}

// toSQLClause converts a conjunct to an SQL condition of the form
// "Column Operator ?" with a corresponding value.
//
// Example:
//
//	tConjunct = { Column: "id", Operator: ">", Value: 123}
//
// Result:
//
//	("id > ?", 123)
func (c tConjunct) toSQLClause() (string, driver.Value) {
	return fmt.Sprintf("%s %s ?", c.Column, c.Operator), c.Value
}
