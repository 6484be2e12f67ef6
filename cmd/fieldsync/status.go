// Status command: database size, sync state and per-table row counts.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zylem/fieldsync/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database size, sync state and table counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := db.SizeBytes()
		if err != nil {
			return err
		}

		lastSync := queries.LastSync()
		if lastSync == "" {
			lastSync = "<never>"
		}
		fmt.Printf("Image size:      %s\n", humanize.Bytes(uint64(size)))
		fmt.Printf("Last sync:       %s\n", lastSync)
		fmt.Printf("Unsynced orders: %d\n", queries.CountUnsyncedOrders())
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Table", "Rows")
		for _, name := range store.TableNames() {
			n, err := db.RowCount(name)
			if err != nil {
				return err
			}
			if n == 0 {
				continue
			}
			table.Append([]string{name, strconv.FormatInt(n, 10)})
		}
		table.Render()
		return nil
	},
}
