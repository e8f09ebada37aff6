package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity actions recorded in the request journal.
const (
	ActionQuote         = "quote"
	ActionOrderPrepared = "order_prepared"
	ActionOrderRejected = "order_rejected"
)

// LogEntry is one line of the request journal kept in MongoDB.
// Customer contact details are never stored; an order leaves only its
// quantity and region behind.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	DurationMS int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	ClientIP   string             `bson:"client_ip,omitempty" json:"client_ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	Action     string             `bson:"action,omitempty" json:"action,omitempty"`
	Quantity   int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Region     string             `bson:"region,omitempty" json:"region,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField sets one extra field, creating the map on first use.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithFields merges extra fields into the entry.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogFilter narrows a journal query. Zero values match everything.
type LogFilter struct {
	RequestID string
	Level     string
	Action    string
	Region    string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Skip      int
}
