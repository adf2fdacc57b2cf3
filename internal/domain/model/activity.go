package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityAction names a cart mutation or lifecycle event.
type ActivityAction string

const (
	ActivityAdd         ActivityAction = "add"
	ActivityRemove      ActivityAction = "remove"
	ActivitySetQuantity ActivityAction = "set_quantity"
	ActivityClear       ActivityAction = "clear"
	ActivityCheckout    ActivityAction = "checkout"
	ActivityLogout      ActivityAction = "logout"
)

// ActivityEntry records one thing that happened to a cart session.
// Fields carries action-specific context (e.g. order id on checkout).
type ActivityEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	SessionID  string                 `bson:"session_id" json:"session_id"`
	Action     ActivityAction         `bson:"action" json:"action"`
	ItemID     string                 `bson:"item_id,omitempty" json:"item_id,omitempty"`
	Quantity   int                    `bson:"quantity,omitempty" json:"quantity,omitempty"`
	TotalItems int                    `bson:"total_items" json:"total_items"`
	TotalPrice float64                `bson:"total_price" json:"total_price"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map.
// If Fields is nil, it will be initialized.
func (e *ActivityEntry) WithField(key string, value interface{}) *ActivityEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// ActivityQueryOptions provides options for querying cart activity.
type ActivityQueryOptions struct {
	SessionID string
	Action    ActivityAction
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
