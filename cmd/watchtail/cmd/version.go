package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	version "github.com/openkube/watchtail/cmd"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Short: "Prints version of watchtail",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("watchtail version: %s\n", version.GetVersion())
	},
}
