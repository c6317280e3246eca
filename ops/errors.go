package ops

// SentinelError is type for defining constant error values.
//
// Inspired by: https://dave.cheney.net/2019/06/10/constant-time
type SentinelError string

// Error returns the string value of a SentinelError.
func (e SentinelError) Error() string {
	return string(e)
}

// ErrValidation indicates that the submitted form failed field validation.
//
// No network request is made when this error is returned.
const ErrValidation = SentinelError("validation failed")

// ErrTransport indicates that the request failed before any response was
// received, e.g. connection refused, DNS failure, or a content blocker.
const ErrTransport = SentinelError("transport error")

// ErrConfiguration indicates that a response was received but points at a
// deployment problem rather than a user problem: an unparseable body where
// JSON was expected, or a bare 405 from a mis-pointed API base URL.
const ErrConfiguration = SentinelError("configuration error")

// ErrServerRejected indicates a well-formed server response reporting failure.
const ErrServerRejected = SentinelError("server rejected request")
