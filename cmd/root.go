// Copyright © 2025 Gridiron FC <dev@gridironfc.com>.
// See LICENSE.txt for details.

package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const gridsubDesc = "Signup client for the Gridiron FC subscription API"
const gridsubDescLong = gridsubDesc + "\n\n" +
	`Implements the landing page's email capture pipeline: field validation,
one POST to the subscribe endpoint, and classification of whatever comes
back into a single user-facing outcome.

To submit a signup:
  gridsub subscribe -e fan@example.com -c

To segment the signup into a different list:
  gridsub subscribe -e fan@example.com -c -t newsletter

To exercise validation and configuration without creating a subscriber:
  gridsub subscribe -e fan@example.com -c --dry-run

To check whether SIGNUP_API_URL points at the API or the web deployment:
  gridsub check-endpoint

To poll a simulated match until its result is ready:
  gridsub poll-match <MATCH_ID>
`

var rootCmd = &cobra.Command{
	Use:     "gridsub",
	Version: "v0.1.0",
	Short:   gridsubDesc,
	Long:    gridsubDescLong,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file is optional; ignore its absence.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
