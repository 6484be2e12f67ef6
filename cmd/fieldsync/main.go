// Package main provides the fieldsync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/zylem/fieldsync/internal/query"
	"github.com/zylem/fieldsync/internal/store"
)

var (
	// db is the shared store instance, opened by PersistentPreRunE.
	db *store.Store

	// queries is the domain query surface over db.
	queries *query.Queries
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
