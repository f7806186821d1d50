package listpager

import (
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

func (o Direction) ForOperator() Operator {
	switch o {
	case DirectionASC:
		return OperatorGT
	default:
		panic(fmt.Errorf("cannot map direction '%s' to operator", o))
	}
}

// OrderBy is the single ordering a cursor pager applies to its dataset.
type OrderBy struct {
	Column    string
	Direction Direction
}

// IDOrdering returns the only ordering compatible with resuming from a last
// seen identifier: ascending by the identifier column.
func IDOrdering(column string) OrderBy {
	return OrderBy{Column: column, Direction: DirectionASC}
}

var _availableColumnNameSymbols = append([]rune("_.`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if o.Column == "" {
		return fmt.Errorf("empty ordering column")
	}

	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Any other direction breaks the "resume from last id" contract.
	if o.Direction != DirectionASC {
		return fmt.Errorf("cursor pagination requires ascending order, got '%s'", o.Direction)
	}

	// Guard against SQL injection by restricting allowed characters in column names.
	if !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL converts OrderBy to "<order_column> <order_direction>".
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderBy.ToSQL())
func (o OrderBy) ToSQL() string {
	return fmt.Sprintf("%s %s", o.Column, o.Direction)
}

// Apply applies the ordering to a gorm query.
func (o OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}
