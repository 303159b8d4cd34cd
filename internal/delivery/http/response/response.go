package response

import (
	"ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Created is the body of a successful candidate creation.
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// StatusUpdated is the body of a successful status transition.
type StatusUpdated struct {
	ID      int64  `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorBody is the body of every failed request. ID and Status are echoed
// back only for status updates.
type ErrorBody struct {
	ID        *int64  `json:"id,omitempty"`
	Status    *string `json:"status,omitempty"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	RequestID string  `json:"request_id,omitempty"`
}

// Subject is stored on the context by handlers that echo id and status on failure.
type Subject struct {
	ID     *int64
	Status *string
}

// SetSubject records the id and status to echo if the request fails.
func SetSubject(c *gin.Context, id *int64, status *string) {
	c.Set(string(domain.KeyErrorSubject), Subject{ID: id, Status: status})
}

// Success sends body as is.
func Success(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, detail string) {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion

	body := ErrorBody{
		Error:     detail,
		Message:   message,
		RequestID: idStr,
	}
	if v, ok := c.Get(string(domain.KeyErrorSubject)); ok {
		if s, ok := v.(Subject); ok {
			body.ID = s.ID
			body.Status = s.Status
		}
	}

	c.JSON(code, body)
}
