package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
)

// EventLogFilter narrows event log entries by page and entry date.
type EventLogFilter struct {
	Page     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Apply - implements listpager.Filter.
func (f *EventLogFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}

	if f.Page != "" {
		db = db.Where("page = ?", f.Page)
	}
	if f.DateFrom != nil {
		db = db.Where("entered >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("entered <= ?", *f.DateTo)
	}

	return db
}

// SubscriberFilter narrows subscribers by list membership, state and email.
type SubscriberFilter struct {
	ListID      int64
	Confirmed   *bool
	Blacklisted *bool
	// Email matches as a case-insensitive substring; % and _ match themselves.
	Email string
}

// Apply - implements listpager.Filter.
func (f *SubscriberFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}

	if f.ListID != 0 {
		db = db.
			Joins("JOIN phplist_listuser ON phplist_listuser.userid = phplist_user_user.id").
			Where("phplist_listuser.listid = ?", f.ListID)
	}
	if f.Confirmed != nil {
		db = db.Where("phplist_user_user.confirmed = ?", *f.Confirmed)
	}
	if f.Blacklisted != nil {
		db = db.Where("phplist_user_user.blacklisted = ?", *f.Blacklisted)
	}
	if f.Email != "" {
		db = db.Where("LOWER(phplist_user_user.email) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(f.Email))+"%")
	}

	return db
}

// likeEscaper quotes LIKE wildcards with '!'. A backslash would need
// different quoting in MySQL string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// SubscriberListFilter narrows lists by owner and visibility.
type SubscriberListFilter struct {
	OwnerID int64
	Public  *bool
}

// Apply - implements listpager.Filter.
func (f *SubscriberListFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}

	if f.OwnerID != 0 {
		db = db.Where("owner = ?", f.OwnerID)
	}
	if f.Public != nil {
		db = db.Where("public = ?", *f.Public)
	}

	return db
}

// MessageFilter narrows campaigns by owner and status.
type MessageFilter struct {
	OwnerID  int64
	Statuses []string
}

// Apply - implements listpager.Filter.
func (f *MessageFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}

	if f.OwnerID != 0 {
		db = db.Where("owner = ?", f.OwnerID)
	}
	if len(f.Statuses) > 0 {
		db = db.Where("status IN ?", f.Statuses)
	}

	return db
}

// AdminAttributeValueFilter selects the attribute values of one administrator.
type AdminAttributeValueFilter struct {
	AdminID int64
}

// Apply - implements listpager.Filter.
func (f *AdminAttributeValueFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}

	return db.Where("adminid = ?", f.AdminID)
}

var (
	_ listpager.Filter = (*EventLogFilter)(nil)
	_ listpager.Filter = (*SubscriberFilter)(nil)
	_ listpager.Filter = (*SubscriberListFilter)(nil)
	_ listpager.Filter = (*MessageFilter)(nil)
	_ listpager.Filter = (*AdminAttributeValueFilter)(nil)
)
