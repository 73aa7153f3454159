package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the edudesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("edudesk", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
