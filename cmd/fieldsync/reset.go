// Reset command: wipe the image and rebuild an empty schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all local data and rebuild the schema",
	Long: `Close the live engine, delete the persisted image and version
marker, and reopen with a fresh empty schema. Used on logout and when the
local data is beyond repair; the next sync repopulates everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Reset(); err != nil {
			return err
		}
		fmt.Println("Database reset; run sync to repopulate")
		return nil
	},
}
