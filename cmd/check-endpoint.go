// Copyright © 2025 Gridiron FC <dev@gridironfc.com>.
// See LICENSE.txt for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/gridironfc/signup/config"
	"github.com/gridironfc/signup/ops"
	"github.com/spf13/cobra"
)

var checkEndpointCmd = &cobra.Command{
	Use:   "check-endpoint",
	Short: "Check whether the configured API base URL looks right",
	Long: `Resolves the subscription API base URL the same way subscribe does
and runs it through the front-end-host heuristic. A base URL pointed at the
static web deployment answers every subscribe POST with a bare 405; this
command catches that before users do.

The check is best-effort pattern matching over hosting provider naming
conventions, not proof of a working endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheckEndpoint(cmd, &config.EnvResolver{Getenv: os.Getenv})
	},
}

func init() {
	rootCmd.AddCommand(checkEndpointCmd)
}

func runCheckEndpoint(cmd *cobra.Command, resolver config.UrlResolver) error {
	baseUrl := resolver.BaseUrl()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "subscribe endpoint: %s\n", ops.SubscribeUrl(baseUrl))

	if config.LooksLikeFrontendHost(baseUrl) {
		return fmt.Errorf(
			"%s looks like a front-end deployment host, not the API", baseUrl,
		)
	}
	fmt.Fprintln(out, "base URL does not match any front-end host pattern")
	return nil
}
