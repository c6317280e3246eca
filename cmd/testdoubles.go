//go:build small_tests || all_tests

package cmd

import (
	"context"

	"github.com/gridironfc/signup/agent"
	"github.com/gridironfc/signup/ops"
)

// TestAgent is a scripted agent.SubscriptionAgent for command tests.
type TestAgent struct {
	Addresses []string
	Consents  []bool
	Outcome   *ops.Outcome
	Err       error
	FormState agent.FormState
}

func (ta *TestAgent) Submit(
	_ context.Context, address string, gdprConsent bool,
) (*ops.Outcome, error) {
	ta.Addresses = append(ta.Addresses, address)
	ta.Consents = append(ta.Consents, gdprConsent)
	return ta.Outcome, ta.Err
}

func (ta *TestAgent) Form() agent.FormState {
	return ta.FormState
}
