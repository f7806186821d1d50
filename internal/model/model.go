// Package model holds the persisted entities of the mailing list domain.
// Table names follow the phplist_ schema so the service can read an existing
// installation.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLog is an entry of the administrative event log.
type EventLog struct {
	ID      int64     `gorm:"primaryKey" json:"id"`
	Entered time.Time `gorm:"index" json:"entered"`
	Page    string    `gorm:"size:100" json:"page"`
	Entry   string    `gorm:"type:text" json:"entry"`
}

func (EventLog) TableName() string { return "phplist_eventlog" }

func (e EventLog) GetID() int64 { return e.ID }

// Subscriber is a recipient of mailing list messages.
type Subscriber struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"size:255;uniqueIndex" json:"email"`
	Confirmed        bool      `json:"confirmed"`
	Blacklisted      bool      `json:"blacklisted"`
	BounceCount      int       `gorm:"column:bouncecount" json:"bounce_count"`
	UniqueID         string    `gorm:"column:uniqid;size:255" json:"unique_id"`
	HTMLEmail        bool      `gorm:"column:htmlemail" json:"html_email"`
	Disabled         bool      `json:"disabled"`
	CreatedAt        time.Time `gorm:"column:entered" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:modified" json:"updated_at"`
	ExtraData        string    `gorm:"column:extradata;type:text" json:"-"`
	ForeignKey       string    `gorm:"column:foreignkey;size:100" json:"-"`
	SubscribePageRef int64     `gorm:"column:subscribepage" json:"-"`
}

func (Subscriber) TableName() string { return "phplist_user_user" }

func (s Subscriber) GetID() int64 { return s.ID }

// SubscriberList is a mailing list owned by an administrator.
type SubscriberList struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Owner        int64     `gorm:"index" json:"owner"`
	Active       bool      `json:"active"`
	Public       bool      `json:"public"`
	ListPosition int       `gorm:"column:listorder" json:"list_position"`
	Category     string    `gorm:"size:255" json:"category"`
	CreatedAt    time.Time `gorm:"column:entered" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:modified" json:"updated_at"`
}

func (SubscriberList) TableName() string { return "phplist_list" }

func (l SubscriberList) GetID() int64 { return l.ID }

// ListSubscription links a subscriber to a list.
type ListSubscription struct {
	SubscriberID int64     `gorm:"column:userid;primaryKey;autoIncrement:false" json:"subscriber_id"`
	ListID       int64     `gorm:"column:listid;primaryKey;autoIncrement:false" json:"list_id"`
	CreatedAt    time.Time `gorm:"column:entered" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:modified" json:"updated_at"`
}

func (ListSubscription) TableName() string { return "phplist_listuser" }

// Message is a campaign. Deleted messages stay in the table and are hidden
// from every default query.
type Message struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	UUID      string         `gorm:"size:36" json:"uuid"`
	Subject   string         `gorm:"size:255" json:"subject"`
	FromField string         `gorm:"column:fromfield;size:255" json:"from"`
	Status    string         `gorm:"size:255;index" json:"status"`
	Owner     int64          `gorm:"index" json:"owner"`
	Processed bool           `json:"processed"`
	SendStart *time.Time     `gorm:"column:sendstart" json:"send_start,omitempty"`
	Embargo   *time.Time     `json:"embargo,omitempty"`
	CreatedAt time.Time      `gorm:"column:entered" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:modified" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Message) TableName() string { return "phplist_message" }

func (m Message) GetID() int64 { return m.ID }

// BeforeCreate assigns the public identifier of a new message.
func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}

	return nil
}

// Message statuses.
const (
	MessageStatusDraft     = "draft"
	MessageStatusSubmitted = "submitted"
	MessageStatusInProcess = "inprocess"
	MessageStatusSent      = "sent"
	MessageStatusSuspended = "suspended"
	MessageStatusPrepared  = "prepared"
)

// Administrator manages lists and campaigns.
type Administrator struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	LoginName string    `gorm:"column:loginname;size:66;uniqueIndex" json:"login_name"`
	Email     string    `gorm:"size:255" json:"email"`
	SuperUser bool      `gorm:"column:superuser" json:"super_user"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `gorm:"column:created" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:modified" json:"updated_at"`
}

func (Administrator) TableName() string { return "phplist_admin" }

// AdminAttributeDefinition describes an attribute administrators can carry.
type AdminAttributeDefinition struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	Type         string `gorm:"size:30" json:"type"`
	ListOrder    int    `gorm:"column:listorder" json:"list_order"`
	DefaultValue string `gorm:"column:default_value;size:255" json:"default_value"`
	Required     bool   `json:"required"`
}

func (AdminAttributeDefinition) TableName() string { return "phplist_adminattribute" }

func (d AdminAttributeDefinition) GetID() int64 { return d.ID }

// AdminAttributeValue is the value of one attribute for one administrator.
// It has no surrogate key; rows of an administrator are identified by the
// attribute definition id.
type AdminAttributeValue struct {
	AttributeID int64  `gorm:"column:adminattributeid;primaryKey;autoIncrement:false" json:"attribute_id"`
	AdminID     int64  `gorm:"column:adminid;primaryKey;autoIncrement:false" json:"admin_id"`
	Value       string `gorm:"type:text" json:"value"`
}

func (AdminAttributeValue) TableName() string { return "phplist_admin_attribute" }

func (v AdminAttributeValue) GetID() int64 { return v.AttributeID }

// URLCache is a cached copy of a remote page used as message content.
type URLCache struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	URL          string     `gorm:"size:255;index" json:"url"`
	LastModified *time.Time `gorm:"column:lastmodified" json:"last_modified,omitempty"`
	Added        time.Time  `json:"added"`
	Content      string     `gorm:"type:text" json:"content"`
}

func (URLCache) TableName() string { return "phplist_urlcache" }

func (u URLCache) GetID() int64 { return u.ID }

// All returns every model, in migration order.
func All() []any {
	return []any{
		&EventLog{},
		&Administrator{},
		&AdminAttributeDefinition{},
		&AdminAttributeValue{},
		&SubscriberList{},
		&Subscriber{},
		&ListSubscription{},
		&Message{},
		&URLCache{},
	}
}
