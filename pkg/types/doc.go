// Package types defines the Config, error taxonomy, row and snapshot types
// shared by the fieldsync store, loader and query layers.
package types
