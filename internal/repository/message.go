package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type MessageRepository struct {
	db    *gorm.DB
	pager *listpager.CursorPager[model.Message]
}

func NewMessageRepository(db *gorm.DB, maxLimit int) *MessageRepository {
	return &MessageRepository{
		db:    db,
		pager: listpager.NewCursorPager[model.Message](db, messageScope).WithMaxLimit(maxLimit),
	}
}

func (r *MessageRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter *MessageFilter) ([]model.Message, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *MessageRepository) Count(ctx context.Context, filter *MessageFilter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *MessageRepository) Paginate(ctx context.Context, req listpager.PageRequest, filter *MessageFilter) (*listpager.PaginationResult[model.Message], error) {
	return r.pager.Paginate(ctx, req, filter, model.Message.GetID)
}

func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, mapError(err)
	}

	return &message, nil
}
