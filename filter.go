package listpager

import "gorm.io/gorm"

// Filter contributes additional predicates to an entity query. There is one
// implementation per entity family; implementations are immutable values and
// must tolerate a nil receiver. Pagers treat a nil filter of any variant,
// typed or not, as no filter.
type Filter interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Scope supplies the base query of an entity and decides which filter
// variants it understands.
type Scope interface {
	// Query returns the entity query with its default visibility rules
	// (model, soft-delete exclusion, owner scoping) already applied.
	Query(db *gorm.DB) *gorm.DB
	// Accepts reports whether the filter variant is supported by the entity.
	Accepts(f Filter) bool
}

// FilterOf reports whether f is of the filter variant F. It is the usual
// building block of Scope.Accepts.
func FilterOf[F Filter](f Filter) bool {
	_, ok := f.(F)
	return ok
}

// ModelScope is a Scope over a single GORM model. Visibility, when set, is
// applied on top of the model query.
type ModelScope struct {
	Model      any
	Visibility func(db *gorm.DB) *gorm.DB
	Filters    func(f Filter) bool
}

// Query - implements Scope.
func (s ModelScope) Query(db *gorm.DB) *gorm.DB {
	db = db.Model(s.Model)
	if s.Visibility != nil {
		db = s.Visibility(db)
	}

	return db
}

// Accepts - implements Scope. A scope without Filters accepts no filter.
func (s ModelScope) Accepts(f Filter) bool {
	return s.Filters != nil && s.Filters(f)
}

var _ Scope = ModelScope{}
