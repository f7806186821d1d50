package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type EventLogRepository struct {
	db    *gorm.DB
	pager *listpager.CursorPager[model.EventLog]
}

func NewEventLogRepository(db *gorm.DB, maxLimit int) *EventLogRepository {
	return &EventLogRepository{
		db:    db,
		pager: listpager.NewCursorPager[model.EventLog](db, eventLogScope).WithMaxLimit(maxLimit),
	}
}

func (r *EventLogRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter *EventLogFilter) ([]model.EventLog, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *EventLogRepository) Count(ctx context.Context, filter *EventLogFilter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *EventLogRepository) Paginate(ctx context.Context, req listpager.PageRequest, filter *EventLogFilter) (*listpager.PaginationResult[model.EventLog], error) {
	return r.pager.Paginate(ctx, req, filter, model.EventLog.GetID)
}

func (r *EventLogRepository) FindByID(ctx context.Context, id int64) (*model.EventLog, error) {
	var entry model.EventLog
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &entry, nil
}

// Create appends an entry to the event log.
func (r *EventLogRepository) Create(ctx context.Context, entry *model.EventLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
