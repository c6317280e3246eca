package testdoubles

import (
	"testing"

	"github.com/gridironfc/signup/email"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

// FormValidator is a test double for email.FormValidator.
//
// It records validated inputs and returns the scripted Errors, nil by default.
type FormValidator struct {
	Addresses []string
	Consents  []bool
	Errors    *email.FieldErrors
}

func NewFormValidator() *FormValidator {
	return &FormValidator{
		Addresses: make([]string, 0, 1),
		Consents:  make([]bool, 0, 1),
	}
}

func (v *FormValidator) Validate(
	address string, gdprConsent bool,
) *email.FieldErrors {
	v.Addresses = append(v.Addresses, address)
	v.Consents = append(v.Consents, gdprConsent)
	return v.Errors
}

func (v *FormValidator) AssertValidated(t *testing.T, address string) {
	t.Helper()
	assert.Assert(t, is.Contains(v.Addresses, address))
}
