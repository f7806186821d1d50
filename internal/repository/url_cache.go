package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type URLCacheRepository struct {
	db    *gorm.DB
	pager *listpager.CursorPager[model.URLCache]
}

func NewURLCacheRepository(db *gorm.DB, maxLimit int) *URLCacheRepository {
	return &URLCacheRepository{
		db:    db,
		pager: listpager.NewCursorPager[model.URLCache](db, urlCacheScope).WithMaxLimit(maxLimit),
	}
}

func (r *URLCacheRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter listpager.Filter) ([]model.URLCache, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *URLCacheRepository) Count(ctx context.Context, filter listpager.Filter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *URLCacheRepository) Paginate(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.URLCache], error) {
	return r.pager.Paginate(ctx, req, nil, model.URLCache.GetID)
}

// GetByURL returns the cached copies of url, newest first.
func (r *URLCacheRepository) GetByURL(ctx context.Context, url string) ([]model.URLCache, error) {
	var entries []model.URLCache
	err := r.db.WithContext(ctx).
		Where("url = ?", url).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
