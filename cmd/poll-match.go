// Copyright © 2025 Gridiron FC <dev@gridironfc.com>.
// See LICENSE.txt for details.

package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gridironfc/signup/config"
	"github.com/gridironfc/signup/match"
	"github.com/spf13/cobra"
)

var pollMatchCmd = &cobra.Command{
	Use:   "poll-match <match-id>",
	Short: "Poll a simulated match until its result is ready",
	Long: `Polls the match result endpoint once per second for up to ten
seconds, stopping as soon as the simulation reports a terminal status. Prints
the final score, or the last observed state if the ceiling is reached first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matchId, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid match id: %s: %s", args[0], err)
		}

		logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
		poller := &match.Poller{
			Doer:     http.DefaultClient,
			Resolver: &config.EnvResolver{Getenv: os.Getenv},
			Log:      logger,
		}
		return runPollMatch(cmd, poller, matchId)
	},
}

func init() {
	rootCmd.AddCommand(pollMatchCmd)
}

func runPollMatch(
	cmd *cobra.Command, poller *match.Poller, matchId uuid.UUID,
) error {
	result, err := poller.Poll(cmd.Context(), matchId)

	if result != nil {
		fmt.Fprintf(
			cmd.OutOrStdout(), "%s: home %d - away %d\n",
			result.Status, result.HomeScore, result.AwayScore,
		)
		if result.Message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
	}
	return err
}
