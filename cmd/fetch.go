/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/krobus00/refdata-service/internal/bootstrap"
	"github.com/spf13/cobra"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Retrieve raw exchange-info documents",
	Long: `Performs an HTTP GET against every configured venue segment and
writes each raw exchange-info JSON document to its configured file
under the data directory. Any failed request aborts the run.`,
	Run: bootstrap.StartFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
