// Package cmd holds the civicpulse command line.
package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "civicpulse",
		Short:         "CivicPulse complaint triage API",
		Long:          `CivicPulse serves the citizen, authority, department and CSR portals: complaint triage, SLA tracking, worker recommendation and project funding views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand())
	return root
}
