package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type SubscriberRepository struct {
	db    *gorm.DB
	pager *listpager.CursorPager[model.Subscriber]
}

func NewSubscriberRepository(db *gorm.DB, maxLimit int) *SubscriberRepository {
	return &SubscriberRepository{
		db: db,
		// Qualified: SubscriberFilter joins the membership table.
		pager: listpager.NewCursorPager[model.Subscriber](db, subscriberScope).
			WithIDColumn("phplist_user_user.id").
			WithMaxLimit(maxLimit),
	}
}

func (r *SubscriberRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter *SubscriberFilter) ([]model.Subscriber, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *SubscriberRepository) Count(ctx context.Context, filter *SubscriberFilter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *SubscriberRepository) Paginate(ctx context.Context, req listpager.PageRequest, filter *SubscriberFilter) (*listpager.PaginationResult[model.Subscriber], error) {
	return r.pager.Paginate(ctx, req, filter, model.Subscriber.GetID)
}

func (r *SubscriberRepository) FindByID(ctx context.Context, id int64) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	if err := r.db.WithContext(ctx).First(&subscriber, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &subscriber, nil
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&subscriber).Error
	if err != nil {
		return nil, mapError(err)
	}

	return &subscriber, nil
}
