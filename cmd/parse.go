/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/krobus00/refdata-service/internal/bootstrap"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Normalize fetched documents into the instrument CSV",
	Long: `Reads the previously fetched exchange-info documents, normalizes
every symbol into a canonical instrument record and writes the merged
record set as a single delimited file sorted by instrument id.`,
	Run: bootstrap.StartParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
