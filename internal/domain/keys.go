package domain

type CtxKey string

const (
	// KeyRequestID is set on the gin context by the RequestID middleware.
	KeyRequestID CtxKey = "RequestID"
	// KeyErrorSubject carries the id/status echo for failed status updates.
	KeyErrorSubject CtxKey = "ErrorSubject"
)
