package client

// Server-reported subscription statuses.
const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusAlreadySubscribed   = "already_subscribed"
	StatusError               = "error"
)

// TimestampFormat is ISO-8601 with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// SubscribeRequest is the JSON body POSTed to the subscribe endpoint.
//
// Tag is a caller-supplied segmentation label passed through verbatim and
// otherwise uninterpreted. Timestamp is captured at send time.
type SubscribeRequest struct {
	Email       string `json:"email"`
	GdprConsent bool   `json:"gdprConsent"`
	Timestamp   string `json:"timestamp"`
	Tag         string `json:"tag"`
}

// SubscribeResponse is the JSON body of both success and failure responses.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}
