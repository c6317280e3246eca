// Copyright © 2025 Gridiron FC <dev@gridironfc.com>.
// See LICENSE.txt for details.

package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gridironfc/signup/agent"
	"github.com/gridironfc/signup/client"
	"github.com/gridironfc/signup/config"
	"github.com/gridironfc/signup/email"
	"github.com/gridironfc/signup/ops"
	"github.com/spf13/cobra"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Submit a signup request to the subscription API",
	Long: `Validates the email address and GDPR consent flag, POSTs one
subscription request to the configured endpoint, and prints the classified
outcome. Validation failures never touch the network.

The API base URL comes from SIGNUP_API_URL when set, otherwise from the
SIGNUP_ENV environment fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubscribe(cmd, newSubscribeAgent(cmd))
	},
}

func init() {
	subscribeCmd.Flags().StringP(
		FlagEmail, "e", "", "email address to subscribe",
	)
	subscribeCmd.Flags().BoolP(
		FlagConsent, "c", false, "confirm consent to data processing",
	)
	subscribeCmd.Flags().StringP(
		FlagTag, "t", agent.DefaultTag,
		"segmentation tag passed through verbatim to the backend",
	)
	subscribeCmd.Flags().Bool(
		FlagDryRun, false, "validate and report without sending a request",
	)
	rootCmd.AddCommand(subscribeCmd)
}

func newSubscribeAgent(cmd *cobra.Command) agent.SubscriptionAgent {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	tag := getStringFlag(cmd, FlagTag)

	if getBoolFlag(cmd, FlagDryRun) {
		return &agent.DecoyAgent{
			Tag:       tag,
			Validator: email.ProdFormValidator{},
			Log:       logger,
		}
	}

	subClient := &client.Client{
		Doer:        http.DefaultClient,
		Resolver:    &config.EnvResolver{Getenv: os.Getenv},
		CurrentTime: time.Now,
		Log:         logger,
	}
	return &agent.ProdAgent{
		Tag:       tag,
		Validator: email.ProdFormValidator{},
		Client:    subClient,
		Log:       logger,
	}
}

func runSubscribe(cmd *cobra.Command, a agent.SubscriptionAgent) error {
	address := getStringFlag(cmd, FlagEmail)
	gdprConsent := getBoolFlag(cmd, FlagConsent)

	outcome, err := a.Submit(cmd.Context(), address, gdprConsent)
	if outcome == nil {
		return err
	}

	if outcome.Result == ops.Invalid {
		if errs := a.Form().FieldErrors; errs != nil {
			if errs.EmailError != "" {
				fmt.Fprintln(cmd.OutOrStdout(), errs.EmailError)
			}
			if errs.ConsentError != "" {
				fmt.Fprintln(cmd.OutOrStdout(), errs.ConsentError)
			}
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome.Message)
	return err
}
