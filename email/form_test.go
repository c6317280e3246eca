//go:build small_tests || all_tests

package email

import (
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestProdFormValidator(t *testing.T) {
	validator := ProdFormValidator{}

	t.Run("ReturnsNilWhenBothFieldsValid", func(t *testing.T) {
		errs := validator.Validate("test@example.com", true)

		assert.Assert(t, is.Nil(errs))
	})

	t.Run("ReturnsEmailErrorOnBadAddress", func(t *testing.T) {
		errs := validator.Validate("bad", true)

		assert.Assert(t, errs != nil)
		assert.Equal(t, EmailErrorMessage, errs.EmailError)
		assert.Equal(t, "", errs.ConsentError)
	})

	t.Run("ReturnsConsentErrorWhenConsentMissing", func(t *testing.T) {
		errs := validator.Validate("test@example.com", false)

		assert.Assert(t, errs != nil)
		assert.Equal(t, "", errs.EmailError)
		assert.Equal(t, ConsentErrorMessage, errs.ConsentError)
	})

	t.Run("ReturnsBothErrorsSimultaneously", func(t *testing.T) {
		errs := validator.Validate("bad", false)

		assert.Assert(t, errs != nil)
		assert.Equal(t, EmailErrorMessage, errs.EmailError)
		assert.Equal(t, ConsentErrorMessage, errs.ConsentError)
	})
}
