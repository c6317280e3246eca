package ops

//go:generate go run golang.org/x/tools/cmd/stringer -type=SubmitResult
type SubmitResult int

const (
	Invalid SubmitResult = iota
	Subscribed
	AlreadySubscribed
	PendingConfirmation
	Failed
)

// Outcome is the single user-facing result of one submission attempt.
//
// Exactly one Outcome is produced per attempt, no matter which validation,
// transport, or server branch produced it. Message is ready for display as is.
type Outcome struct {
	Result  SubmitResult
	Message string
}
