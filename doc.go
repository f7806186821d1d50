// Package listpager provides identifier-based cursor pagination for GORM.
//
// Overview
//
// Rows are paged by a monotonically increasing identifier: a page holds the
// rows whose identifier is greater than the last one the caller has seen,
// ascending, capped by a limit. Unlike LIMIT/OFFSET this never rescans
// skipped rows and never skips or repeats rows when other rows are inserted
// or deleted between calls. Rows inserted behind the cursor after it has
// moved past them are not observed; a sequence of pages is a moving snapshot.
//
// Key concepts
//   - CursorPager: builds and executes page and count queries for one entity.
//   - Scope: base entity query with default visibility rules, and the set of
//     filter variants the entity understands.
//   - Filter: contributes entity-specific predicates.
//   - PageRequest / RawPageRequest: the page address, strict and transport forms.
//   - IDCursor: last seen identifier, applied as "id > ?".
//
// Only ascending order by the identifier is supported; any other ordering
// breaks resuming from a last seen identifier.
package listpager
