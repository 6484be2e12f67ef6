// Sync command: load a snapshot file into the domain tables.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zylem/fieldsync/internal/loader"
	"github.com/zylem/fieldsync/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync <snapshot.json>",
	Short: "Load a sync snapshot into the database",
	Long: `Read a JSON snapshot (domain name to record array) and apply it to
the domain tables using each table's replace strategy. Row failures are
tolerated and reported; the image is persisted once at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap types.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("parse snapshot: %w", err)
		}

		summary, err := loader.New(db).LoadAll(snap)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if err := queries.SetLastSync(time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("record sync time: %w", err)
		}

		tables := make([]string, 0, len(summary))
		for name := range summary {
			tables = append(tables, name)
		}
		sort.Strings(tables)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Table", "Loaded", "Failed")
		for _, name := range tables {
			res := summary[name]
			table.Append([]string{
				name,
				strconv.Itoa(res.Success),
				strconv.Itoa(res.Failed),
			})
		}
		table.Render()

		total := summary.Total()
		fmt.Printf("Loaded %d rows into %d tables (%d failed)\n",
			total.Success, len(summary), total.Failed)
		for _, msg := range total.Errors {
			fmt.Fprintln(os.Stderr, "  "+msg)
		}
		return nil
	},
}
