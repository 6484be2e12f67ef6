// Tables command: list the schema tables.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zylem/fieldsync/internal/store"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the schema tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range store.TableNames() {
			fmt.Println(name)
		}
		return nil
	},
}
