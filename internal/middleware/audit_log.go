package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// Activity describes a storefront action for the journal. Only the
// quantity and region of an order are kept, never the customer's details.
type Activity struct {
	Action   string
	Message  string
	Quantity int
	Region   string
	Err      error
	Fields   map[string]any
}

// RecordActivity journals a storefront action with the request metadata.
// A nil recorder discards it.
func RecordActivity(recorder EntryRecorder, c *gin.Context, a Activity) {
	if recorder == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     "info",
		Message:   a.Message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Action:    a.Action,
		Quantity:  a.Quantity,
		Region:    a.Region,
	}
	if a.Err != nil {
		entry.Level = "warn"
		entry.Error = a.Err.Error()
	}
	if len(a.Fields) > 0 {
		entry.WithFields(a.Fields)
	}

	recorder.Log(entry)
}
