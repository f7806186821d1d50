package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type SubscriberListRepository struct {
	db    *gorm.DB
	pager *listpager.CursorPager[model.SubscriberList]
}

func NewSubscriberListRepository(db *gorm.DB, maxLimit int) *SubscriberListRepository {
	return &SubscriberListRepository{
		db:    db,
		pager: listpager.NewCursorPager[model.SubscriberList](db, subscriberListScope).WithMaxLimit(maxLimit),
	}
}

func (r *SubscriberListRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter *SubscriberListFilter) ([]model.SubscriberList, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *SubscriberListRepository) Count(ctx context.Context, filter *SubscriberListFilter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *SubscriberListRepository) Paginate(ctx context.Context, req listpager.PageRequest, filter *SubscriberListFilter) (*listpager.PaginationResult[model.SubscriberList], error) {
	return r.pager.Paginate(ctx, req, filter, model.SubscriberList.GetID)
}

func (r *SubscriberListRepository) FindByID(ctx context.Context, id int64) (*model.SubscriberList, error) {
	var list model.SubscriberList
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &list, nil
}
