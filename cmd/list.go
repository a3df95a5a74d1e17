package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <project>",
	Short: "List the files of a generated project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, aiGenerator, err := loadDependencies()
		if err != nil {
			return err
		}

		files, err := aiGenerator.Store().ListFiles(args[0])
		if err != nil {
			return err
		}

		for _, file := range files {
			fmt.Fprintln(cmd.OutOrStdout(), file)
		}
		return nil
	},
}
