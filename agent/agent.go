package agent

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/gridironfc/signup/email"
	"github.com/gridironfc/signup/ops"
)

// DefaultTag segments subscribers that signed up without an explicit tag.
const DefaultTag = "beta"

//go:generate go run golang.org/x/tools/cmd/stringer -type=SubmissionState
type SubmissionState int

const (
	Idle SubmissionState = iota
	Submitting
	Succeeded
	Failed
)

// FormState is the client-local, ephemeral state of one signup form.
//
// Nothing here survives the form instance; there is no durable client state
// for this flow.
type FormState struct {
	Email       string
	GdprConsent bool
	State       SubmissionState
	FieldErrors *email.FieldErrors
	Banner      string
}

// Submitter wraps the Subscribe method of client.Client.
type Submitter interface {
	Subscribe(
		ctx context.Context, address string, gdprConsent bool, tag string,
	) (ops.Outcome, error)
}

// SubscriptionAgent orchestrates one signup form's submission attempts.
//
// Submit returns a nil Outcome with a nil error when the call was ignored
// because a prior submission is still pending. Any non nil error wraps one of
// the ops sentinel errors and duplicates information the Outcome already
// carries for display; callers use it for exit codes and logging, never for
// an additional user message.
type SubscriptionAgent interface {
	Submit(
		ctx context.Context, address string, gdprConsent bool,
	) (*ops.Outcome, error)
	Form() FormState
}

// ProdAgent is the production implementation of SubscriptionAgent.
//
// Tag defaults to DefaultTag when empty. SuccessMessage, when set, replaces
// the server-supplied message on successful outcomes.
type ProdAgent struct {
	Tag            string
	SuccessMessage string
	Validator      email.FormValidator
	Client         Submitter
	Log            *log.Logger

	form     FormState
	inFlight atomic.Bool
}

// Submit validates the form and performs at most one network submission.
//
// Field validation failures return an Invalid outcome without touching the
// network; both field errors are recorded on the form at once. A successful
// submission clears the entered email and consent; any failure preserves the
// email and leaves the form re-submittable.
func (a *ProdAgent) Submit(
	ctx context.Context, address string, gdprConsent bool,
) (*ops.Outcome, error) {
	if errs := a.Validator.Validate(address, gdprConsent); errs != nil {
		a.form.Email = address
		a.form.GdprConsent = gdprConsent
		a.form.FieldErrors = errs
		a.form.Banner = ""
		a.Log.Printf("%s failed validation", address)
		return &ops.Outcome{Result: ops.Invalid}, ops.ErrValidation
	}

	// A second submit while one is pending is a no-op: not queued, not an
	// error.
	if !a.inFlight.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer a.inFlight.Store(false)

	a.form.Email = address
	a.form.GdprConsent = gdprConsent
	a.form.FieldErrors = nil
	a.form.State = Submitting

	outcome, err := a.Client.Subscribe(ctx, address, gdprConsent, a.tag())
	a.applyOutcome(&outcome)
	return &outcome, err
}

func (a *ProdAgent) applyOutcome(outcome *ops.Outcome) {
	switch outcome.Result {
	case ops.Subscribed, ops.AlreadySubscribed, ops.PendingConfirmation:
		if a.SuccessMessage != "" {
			outcome.Message = a.SuccessMessage
		}
		a.form.Email = ""
		a.form.GdprConsent = false
		a.form.State = Succeeded
	default:
		// The entered email survives so the user can correct and resubmit.
		a.form.State = Failed
	}
	a.form.Banner = outcome.Message
}

func (a *ProdAgent) Form() FormState {
	return a.form
}

func (a *ProdAgent) tag() string {
	if a.Tag == "" {
		return DefaultTag
	}
	return a.Tag
}
