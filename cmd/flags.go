package cmd

import "github.com/spf13/cobra"

const (
	FlagEmail   = "email"
	FlagConsent = "consent"
	FlagTag     = "tag"
	FlagDryRun  = "dry-run"
)

func getStringFlag(cmd *cobra.Command, flagName string) (value string) {
	if f := cmd.Flag(flagName); f != nil {
		value = f.Value.String()
	}
	return
}

func getBoolFlag(cmd *cobra.Command, flagName string) bool {
	return getStringFlag(cmd, flagName) == "true"
}
