package listpager

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// DefaultIDColumn is the identifier column pagers order and filter by.
const DefaultIDColumn = "id"

// CursorPager pages through the rows of one entity by its monotonically
// increasing identifier. It holds no per-call state and is safe for
// concurrent use.
type CursorPager[T any] struct {
	db       *gorm.DB
	scope    Scope
	sort     OrderBy
	maxLimit int
}

// NewCursorPager returns a pager reading T through db with the base query and
// filter support described by scope.
func NewCursorPager[T any](db *gorm.DB, scope Scope) *CursorPager[T] {
	return &CursorPager[T]{
		db:       db,
		scope:    scope,
		sort:     IDOrdering(DefaultIDColumn),
		maxLimit: MaxLimit,
	}
}

// WithIDColumn sets the identifier column. Qualify it ("table.id") when the
// scope joins other tables.
func (c *CursorPager[T]) WithIDColumn(column string) *CursorPager[T] {
	if c == nil {
		c = new(CursorPager[T])
	}

	c.sort = IDOrdering(column)

	return c
}

// WithMaxLimit sets the largest accepted page size. Non-positive values
// restore MaxLimit.
func (c *CursorPager[T]) WithMaxLimit(maxLimit int) *CursorPager[T] {
	if c == nil {
		c = new(CursorPager[T])
	}

	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	c.maxLimit = maxLimit

	return c
}

// GetIDColumn returns the identifier column.
func (c *CursorPager[T]) GetIDColumn() string {
	if c == nil {
		return ""
	}

	return c.sort.Column
}

// GetMaxLimit returns the largest accepted page size.
func (c *CursorPager[T]) GetMaxLimit() int {
	if c == nil {
		return 0
	}

	return c.maxLimit
}

// GetFilteredAfterID returns up to limit rows with an identifier greater than
// lastID that satisfy filter, ascending by identifier. A zero lastID starts
// from the beginning; a nil filter adds no predicates.
//
// Errors:
//   - ErrInvalidArgument: limit outside 1..max, negative lastID.
//   - ErrUnsupportedFilter: the scope does not accept the filter variant.
//   - ErrPersistence: the query failed.
func (c *CursorPager[T]) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter Filter) ([]T, error) {
	return c.find(ctx, PageRequest{LastID: lastID, Limit: limit}, filter)
}

// Count returns the number of rows satisfying filter, regardless of any cursor.
func (c *CursorPager[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	query, err := c.scoped(ctx, filter)
	if err != nil {
		return 0, err
	}

	var total int64
	if err = query.Count(&total).Error; err != nil {
		return 0, persistenceError("count", err)
	}

	return total, nil
}

// Paginate returns the page addressed by req along with the total number of
// filtered rows and the cursor of the following page. One extra row is
// fetched to tell whether the page is the last one, so HasMore is exact.
func (c *CursorPager[T]) Paginate(
	ctx context.Context,
	req PageRequest,
	filter Filter,
	idOf func(T) int64,
) (*PaginationResult[T], error) {
	req = req.WithLookahead()

	items, err := c.find(ctx, req, filter)
	if err != nil {
		return nil, err
	}

	total, err := c.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, next := NextPageCursor(req, items, idOf)

	return &PaginationResult[T]{
		Items:         items,
		Total:         total,
		AppliedLimit:  req.Limit,
		HasMore:       next != nil,
		NextPageToken: next,
	}, nil
}

// PaginateQuery applies the cursor condition, the identifier ordering and the
// limit of req to an arbitrary query. Use it when the query cannot be
// expressed through a Scope.
func (c *CursorPager[T]) PaginateQuery(db *gorm.DB, req PageRequest) (*gorm.DB, error) {
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	if err := req.validate(c.maxLimit); err != nil {
		return nil, err
	}

	db = req.Cursor().Apply(db, c.sort.Column)
	db = c.sort.Apply(db)

	return db.Limit(req.GetDatasetLimit()), nil
}

func (c *CursorPager[T]) find(ctx context.Context, req PageRequest, filter Filter) ([]T, error) {
	query, err := c.scoped(ctx, filter)
	if err != nil {
		return nil, err
	}

	query, err = c.PaginateQuery(query, req)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int64("last_id", req.LastID).
		Int("limit", req.Limit).
		Bool("lookahead", req.IsLookahead()).
		Msg("fetching page")

	items := make([]T, 0, req.GetDatasetLimit())
	if err = query.Find(&items).Error; err != nil {
		return nil, persistenceError("find", err)
	}

	return items, nil
}

// scoped builds the base entity query with filter predicates applied.
func (c *CursorPager[T]) scoped(ctx context.Context, filter Filter) (*gorm.DB, error) {
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	// A typed nil of any variant is no filter at all.
	if lo.IsNil(filter) {
		filter = nil
	}

	if filter != nil && !c.scope.Accepts(filter) {
		return nil, fmt.Errorf("%w %T", ErrUnsupportedFilter, filter)
	}

	query := c.scope.Query(c.db.WithContext(ctx))
	if filter != nil {
		query = filter.Apply(query)
	}

	return query, nil
}

func (c *CursorPager[T]) validate() error {
	if c == nil {
		return fmt.Errorf("cursor pager is nil")
	}

	if c.db == nil {
		return fmt.Errorf("cursor pager has no database")
	}

	if c.scope == nil {
		return fmt.Errorf("cursor pager has no scope")
	}

	if c.maxLimit <= 0 {
		return fmt.Errorf("invalid max limit %d", c.maxLimit)
	}

	return c.sort.validate()
}
