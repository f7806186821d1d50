package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

type AdminAttributeDefinitionRepository struct {
	pager *listpager.CursorPager[model.AdminAttributeDefinition]
}

func NewAdminAttributeDefinitionRepository(db *gorm.DB, maxLimit int) *AdminAttributeDefinitionRepository {
	return &AdminAttributeDefinitionRepository{
		pager: listpager.NewCursorPager[model.AdminAttributeDefinition](db, adminAttributeDefinitionScope).WithMaxLimit(maxLimit),
	}
}

// GetFilteredAfterID accepts no filter variant; any non-nil filter fails with
// listpager.ErrUnsupportedFilter.
func (r *AdminAttributeDefinitionRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter listpager.Filter) ([]model.AdminAttributeDefinition, error) {
	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *AdminAttributeDefinitionRepository) Count(ctx context.Context, filter listpager.Filter) (int64, error) {
	return r.pager.Count(ctx, filter)
}

func (r *AdminAttributeDefinitionRepository) Paginate(ctx context.Context, req listpager.PageRequest) (*listpager.PaginationResult[model.AdminAttributeDefinition], error) {
	return r.pager.Paginate(ctx, req, nil, model.AdminAttributeDefinition.GetID)
}

// AdminAttributeValueRepository pages the attribute values of a single
// administrator by attribute id. The attribute id is only unique per
// administrator, so a filter with an administrator is mandatory.
type AdminAttributeValueRepository struct {
	pager *listpager.CursorPager[model.AdminAttributeValue]
}

func NewAdminAttributeValueRepository(db *gorm.DB, maxLimit int) *AdminAttributeValueRepository {
	return &AdminAttributeValueRepository{
		pager: listpager.NewCursorPager[model.AdminAttributeValue](db, adminAttributeValueScope).
			WithIDColumn("adminattributeid").
			WithMaxLimit(maxLimit),
	}
}

func (r *AdminAttributeValueRepository) GetFilteredAfterID(ctx context.Context, lastID int64, limit int, filter *AdminAttributeValueFilter) ([]model.AdminAttributeValue, error) {
	if err := validateAdminFilter(filter); err != nil {
		return nil, err
	}

	return r.pager.GetFilteredAfterID(ctx, lastID, limit, filter)
}

func (r *AdminAttributeValueRepository) Count(ctx context.Context, filter *AdminAttributeValueFilter) (int64, error) {
	if err := validateAdminFilter(filter); err != nil {
		return 0, err
	}

	return r.pager.Count(ctx, filter)
}

func (r *AdminAttributeValueRepository) Paginate(ctx context.Context, req listpager.PageRequest, filter *AdminAttributeValueFilter) (*listpager.PaginationResult[model.AdminAttributeValue], error) {
	if err := validateAdminFilter(filter); err != nil {
		return nil, err
	}

	return r.pager.Paginate(ctx, req, filter, model.AdminAttributeValue.GetID)
}

func validateAdminFilter(filter *AdminAttributeValueFilter) error {
	if filter == nil || filter.AdminID <= 0 {
		return fmt.Errorf("%w: administrator id is required", listpager.ErrInvalidArgument)
	}

	return nil
}
