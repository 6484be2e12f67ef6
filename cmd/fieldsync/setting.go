// Setting command: read and write Setting key/value pairs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read and write app settings",
}

var settingGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := queries.SettingValue(args[0])
		if value == "" {
			return fmt.Errorf("setting %q is not set", args[0])
		}
		fmt.Println(value)
		return nil
	},
}

var settingSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return queries.SetSettingValue(args[0], args[1])
	},
}

func init() {
	settingCmd.AddCommand(settingGetCmd)
	settingCmd.AddCommand(settingSetCmd)
}
