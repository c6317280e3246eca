package agent

import (
	"context"
	"log"

	"github.com/gridironfc/signup/email"
	"github.com/gridironfc/signup/ops"
)

const decoySuccessMessage = "Thanks for signing up! (dry run, nothing was sent)"

// DecoyAgent implements SubscriptionAgent without ever touching the network.
//
// It validates the form for real, then reports success. Wired to the CLI's
// --dry-run flag so operators can exercise the pipeline against production
// configuration without creating subscribers.
type DecoyAgent struct {
	Tag            string
	SuccessMessage string
	Validator      email.FormValidator
	Log            *log.Logger

	form FormState
}

func (a *DecoyAgent) Submit(
	_ context.Context, address string, gdprConsent bool,
) (*ops.Outcome, error) {
	if errs := a.Validator.Validate(address, gdprConsent); errs != nil {
		a.form.Email = address
		a.form.GdprConsent = gdprConsent
		a.form.FieldErrors = errs
		a.Log.Printf("%s failed validation", address)
		return &ops.Outcome{Result: ops.Invalid}, ops.ErrValidation
	}

	message := a.SuccessMessage
	if message == "" {
		message = decoySuccessMessage
	}

	a.form = FormState{State: Succeeded, Banner: message}
	a.Log.Printf("dry run: skipped submitting %s", address)
	return &ops.Outcome{Result: ops.Subscribed, Message: message}, nil
}

func (a *DecoyAgent) Form() FormState {
	return a.form
}
