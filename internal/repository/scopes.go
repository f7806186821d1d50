package repository

import (
	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/model"
)

// Entity scopes: the model each repository reads and the filter variants it
// understands. Soft-deleted messages are excluded by GORM through
// model.Message.DeletedAt.
var (
	eventLogScope = listpager.ModelScope{
		Model:   &model.EventLog{},
		Filters: listpager.FilterOf[*EventLogFilter],
	}

	subscriberScope = listpager.ModelScope{
		Model:   &model.Subscriber{},
		Filters: listpager.FilterOf[*SubscriberFilter],
	}

	subscriberListScope = listpager.ModelScope{
		Model:   &model.SubscriberList{},
		Filters: listpager.FilterOf[*SubscriberListFilter],
	}

	messageScope = listpager.ModelScope{
		Model:   &model.Message{},
		Filters: listpager.FilterOf[*MessageFilter],
	}

	adminAttributeValueScope = listpager.ModelScope{
		Model:   &model.AdminAttributeValue{},
		Filters: listpager.FilterOf[*AdminAttributeValueFilter],
	}

	adminAttributeDefinitionScope = listpager.ModelScope{
		Model: &model.AdminAttributeDefinition{},
	}

	urlCacheScope = listpager.ModelScope{
		Model: &model.URLCache{},
	}
)
