//go:build small_tests || all_tests

package agent

import (
	"context"
	"testing"

	"github.com/gridironfc/signup/email"
	"github.com/gridironfc/signup/ops"
	tu "github.com/gridironfc/signup/testutils"
	"gotest.tools/assert"
)

func newDecoyAgentTestFixture() (*DecoyAgent, *tu.Logs) {
	logs, logger := tu.NewLogs()
	return &DecoyAgent{Validator: email.ProdFormValidator{}, Log: logger}, logs
}

func TestDecoySubmit(t *testing.T) {
	t.Run("ReportsSuccessWithoutSubmitting", func(t *testing.T) {
		a, logs := newDecoyAgentTestFixture()

		outcome, err := a.Submit(context.Background(), testEmail, true)

		assert.NilError(t, err)
		assert.Equal(t, ops.Subscribed, outcome.Result)
		assert.Equal(t, decoySuccessMessage, outcome.Message)
		assert.Equal(t, Succeeded, a.Form().State)
		logs.AssertContains(t, "dry run: skipped submitting "+testEmail)
	})

	t.Run("StillValidatesForReal", func(t *testing.T) {
		a, _ := newDecoyAgentTestFixture()

		outcome, err := a.Submit(context.Background(), "bad", false)

		assert.Assert(t, tu.ErrorIs(err, ops.ErrValidation))
		assert.Equal(t, ops.Invalid, outcome.Result)
		assert.Assert(t, a.Form().FieldErrors != nil)
	})
}
