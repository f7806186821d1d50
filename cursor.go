package listpager

import (
	"database/sql/driver"
	"strconv"

	"gorm.io/gorm"
)

// IDCursor is the position of a page within a dataset ordered by its
// identifier column: the identifier of the last row the caller has seen.
// An empty cursor (nil or zero) means the beginning of the dataset.
type IDCursor struct {
	lastID int64
}

func NewIDCursor(lastID int64) *IDCursor {
	return &IDCursor{
		lastID: lastID,
	}
}

// String - implements fmt.Stringer.
func (c *IDCursor) String() string {
	if c.IsEmpty() {
		return ""
	}

	return strconv.FormatInt(c.lastID, 10)
}

// IsEmpty reports whether the cursor points at the beginning of the dataset.
func (c *IDCursor) IsEmpty() bool {
	return c == nil || c.lastID == 0
}

// GetLastID returns the last seen identifier.
func (c *IDCursor) GetLastID() int64 {
	if c != nil {
		return c.lastID
	}

	return 0
}

// WithLastID sets the last seen identifier and returns the cursor.
func (c *IDCursor) WithLastID(lastID int64) *IDCursor {
	if c == nil {
		c = new(IDCursor)
	}

	c.lastID = lastID

	return c
}

// Apply adds "column > lastID" to a gorm query. An empty cursor leaves the
// query untouched.
func (c *IDCursor) Apply(db *gorm.DB, column string) *gorm.DB {
	if c.IsEmpty() {
		return db
	}

	return db.Clauses(c.conjunct(column).toGORMExpression())
}

// ToSQL returns the cursor condition for a raw SQL query.
//
// Usage:
//
//	cond, arg := c.ToSQL("id")
//	query := fmt.Sprintf("SELECT * FROM table WHERE %s", cond)
func (c *IDCursor) ToSQL(column string) (string, driver.Value) {
	if c.IsEmpty() {
		return "TRUE", nil
	}

	return c.conjunct(column).toSQLClause()
}

func (c *IDCursor) conjunct(column string) tConjunct {
	return tConjunct{
		Column:   column,
		Value:    c.GetLastID(),
		Operator: IDOrdering(column).Direction.ForOperator(),
	}
}

func (c *IDCursor) validate() error {
	if c.GetLastID() < 0 {
		return invalidArgumentf("last id must not be negative, got %d", c.GetLastID())
	}

	return nil
}
