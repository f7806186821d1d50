package listpager

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db.Debug(), mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db.Debug(), mock, nil
}

// tEntry is the row type of the behavioral tests.
type tEntry struct {
	ID      int64 `gorm:"primaryKey"`
	Kind    string
	Deleted bool
	Created time.Time
}

func (tEntry) TableName() string { return "entries" }

func (e tEntry) GetID() int64 { return e.ID }

// tKindFilter narrows entries by kind.
type tKindFilter struct {
	Kind string
}

func (f *tKindFilter) Apply(db *gorm.DB) *gorm.DB {
	if f == nil || f.Kind == "" {
		return db
	}

	return db.Where("kind = ?", f.Kind)
}

// tOtherFilter is a filter variant no test scope accepts.
type tOtherFilter struct{}

func (tOtherFilter) Apply(db *gorm.DB) *gorm.DB { return db }

func tEntryScope() ModelScope {
	return ModelScope{
		Model: &tEntry{},
		Visibility: func(db *gorm.DB) *gorm.DB {
			return db.Where("deleted = ?", false)
		},
		Filters: FilterOf[*tKindFilter],
	}
}

// newSQLiteDB opens an in-memory database seeded with entries. kinds[i] is
// the kind of the entry with id i+1; ids listed in deleted are soft-hidden.
func newSQLiteDB(t *testing.T, kinds []string, deleted ...int64) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err = db.AutoMigrate(&tEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hidden := make(map[int64]bool, len(deleted))
	for _, id := range deleted {
		hidden[id] = true
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, kind := range kinds {
		id := int64(i + 1)
		entry := tEntry{ID: id, Kind: kind, Deleted: hidden[id], Created: base.Add(time.Duration(i) * time.Hour)}
		if err = db.Create(&entry).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	return db
}
